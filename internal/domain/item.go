package domain

import "time"

type Item struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Type            string    `json:"type" gorm:"type:varchar(50);not null;default:''"`
	UsagePercentage float64   `json:"usagePercentage" gorm:"not null"`
	Active          bool      `json:"active" gorm:"not null;index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Item) TableName() string {
	return "items"
}

// ChampionItem links a champion to an item it is commonly built with. The
// pair is unique; usage is the share of that champion's games using the item.
type ChampionItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	ChampionID      uint    `json:"championId" gorm:"not null;uniqueIndex:idx_champion_items_pair"`
	ItemID          uint    `json:"itemId" gorm:"not null;uniqueIndex:idx_champion_items_pair;index"`
	UsagePercentage float64 `json:"usagePercentage" gorm:"not null"`

	Champion *Champion `json:"-" gorm:"foreignKey:ChampionID"`
	Item     *Item     `json:"item,omitempty" gorm:"foreignKey:ItemID"`
}

func (ChampionItem) TableName() string {
	return "champion_items"
}

// BuildEntry is one line of a champion's recommended build.
type BuildEntry struct {
	Item            *Item   `json:"item"`
	UsagePercentage float64 `json:"usagePercentage"`
}
