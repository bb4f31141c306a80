package domain

import "time"

// UserProfile is a player's public profile with their favorite champions.
type UserProfile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DisplayName string    `json:"displayName" gorm:"type:varchar(100);not null"`
	AccountName string    `json:"accountName" gorm:"type:varchar(100);not null"`
	Region      *string   `json:"region,omitempty" gorm:"type:varchar(20)"`
	PhotoRef    *string   `json:"photoRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Favorites []*FavoriteChampion `json:"favorites,omitempty" gorm:"foreignKey:UserProfileID"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// FavoriteChampionIDs returns the champion ids of the preloaded favorites.
func (p *UserProfile) FavoriteChampionIDs() []uint {
	ids := make([]uint, 0, len(p.Favorites))
	for _, f := range p.Favorites {
		ids = append(ids, f.ChampionID)
	}
	return ids
}

// FavoriteChampion is the link row between a user profile and a champion.
type FavoriteChampion struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserProfileID uint      `json:"userProfileId" gorm:"not null;uniqueIndex:idx_user_profile_favorites_pair"`
	ChampionID    uint      `json:"championId" gorm:"not null;uniqueIndex:idx_user_profile_favorites_pair;index"`
	CreatedAt     time.Time `json:"createdAt"`

	Champion *Champion `json:"champion,omitempty" gorm:"foreignKey:ChampionID"`
}

func (FavoriteChampion) TableName() string {
	return "user_profile_favorites"
}

// FavoritesRollup lists the champions a profile has marked as favorite.
type FavoritesRollup struct {
	UserProfileID uint        `json:"userProfileId"`
	ChampionIDs   []uint      `json:"championIds"`
	Champions     []*Champion `json:"champions"`
}
