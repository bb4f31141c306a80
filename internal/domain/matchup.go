package domain

import "time"

// Matchup is the directed win-rate of ChampionID over OpponentID.
//
// Matchups are created in mirrored pairs: (A, B, w) and (B, A, 100-w). After
// creation each row is addressed on its own and updates or deletes do not
// touch the mirror, so a pair can drift apart through explicit writes.
type Matchup struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ChampionID uint      `json:"championId" gorm:"not null;uniqueIndex:idx_matchups_pair;check:chk_matchups_not_self,champion_id <> opponent_id"`
	OpponentID uint      `json:"opponentId" gorm:"not null;uniqueIndex:idx_matchups_pair;index"`
	WinRate    float64   `json:"winRate" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Champion *Champion `json:"-" gorm:"foreignKey:ChampionID"`
	Opponent *Champion `json:"-" gorm:"foreignKey:OpponentID"`
}

func (Matchup) TableName() string {
	return "champion_vs_champion"
}

// MirrorWinRate returns the opponent's side of a win-rate.
func MirrorWinRate(winRate float64) float64 {
	return 100.0 - winRate
}

// ValidateWinRate checks that a percentage lies in [0, 100].
func ValidateWinRate(winRate float64) error {
	if winRate < 0 || winRate > 100 {
		return ErrWinRateOutOfRange
	}
	return nil
}

// ValidateMatchup checks the arguments of a new matchup pair.
func ValidateMatchup(championID, opponentID uint, winRate float64) error {
	if championID == opponentID {
		return ErrSelfMatchup
	}
	return ValidateWinRate(winRate)
}

// MatchupPair is what creating a matchup yields: the requested row and its mirror.
type MatchupPair struct {
	Direct *Matchup `json:"direct"`
	Mirror *Matchup `json:"mirror"`
}
