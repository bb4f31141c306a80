package domain

import "time"

// DefaultWinRate is the win-rate a champion starts with when none is given.
const DefaultWinRate = 50.0

type Champion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Role      Role      `json:"role" gorm:"type:varchar(30);not null;index"`
	WinRate   float64   `json:"winRate" gorm:"not null"`
	PickRate  float64   `json:"pickRate" gorm:"not null"`
	BanRate   float64   `json:"banRate" gorm:"not null"`
	Active    bool      `json:"active" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Profile *Profile        `json:"profile,omitempty" gorm:"foreignKey:ChampionID"`
	Items   []*ChampionItem `json:"items,omitempty" gorm:"foreignKey:ChampionID"`
}

func (Champion) TableName() string {
	return "champions"
}

// ItemIDs returns the ids of the items currently associated with the champion.
// Items must have been preloaded.
func (c *Champion) ItemIDs() []uint {
	ids := make([]uint, 0, len(c.Items))
	for _, ci := range c.Items {
		ids = append(ids, ci.ItemID)
	}
	return ids
}

// Profile is the descriptive sheet owned by exactly one champion.
type Profile struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ChampionID  uint   `json:"championId" gorm:"not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text;not null;default:''"`
	Lore        string `json:"lore" gorm:"type:text;not null;default:''"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Role is the position a champion is built for. Values are free-form; the
// constants below are the ones used by the seed data.
type Role string

const (
	RoleFighter  Role = "Fighter"
	RoleTank     Role = "Tank"
	RoleMage     Role = "Mage"
	RoleAssassin Role = "Assassin"
	RoleSupport  Role = "Support"
	RoleMarksman Role = "Marksman"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
