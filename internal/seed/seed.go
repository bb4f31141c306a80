// Package seed loads a small sample data set through the service layer.
// Running it again is safe: records that already exist are reused.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
)

type ChampionSeed struct {
	Name     string
	Role     domain.Role
	WinRate  float64
	PickRate float64
	BanRate  float64
}

type ItemSeed struct {
	Name  string
	Type  string
	Usage float64
}

type AssociationSeed struct {
	Champion string
	Item     string
	Usage    float64
}

type MatchupSeed struct {
	Champion string
	Opponent string
	WinRate  float64
}

// Data is a complete seed set, referenced by name.
type Data struct {
	Champions    []ChampionSeed
	Items        []ItemSeed
	Associations []AssociationSeed
	Matchups     []MatchupSeed
}

// Sample is the default data set.
var Sample = Data{
	Champions: []ChampionSeed{
		{Name: "Ahri", Role: domain.RoleMage, WinRate: 51.2, PickRate: 8.3, BanRate: 2.1},
		{Name: "Garen", Role: domain.RoleFighter, WinRate: 49.7, PickRate: 12.5, BanRate: 3.0},
		{Name: "Ezreal", Role: domain.RoleMarksman, WinRate: 50.4, PickRate: 9.1, BanRate: 1.0},
		{Name: "Thresh", Role: domain.RoleSupport, WinRate: 48.9, PickRate: 7.8, BanRate: 0.5},
		{Name: "Zed", Role: domain.RoleAssassin, WinRate: 52.0, PickRate: 6.2, BanRate: 4.0},
	},
	Items: []ItemSeed{
		{Name: "Blade of the Ruined King", Type: "Offensive", Usage: 12.0},
		{Name: "Infinity Edge", Type: "Offensive", Usage: 10.5},
		{Name: "Rylai's Crystal Scepter", Type: "Magic", Usage: 5.2},
		{Name: "Redemption", Type: "Support", Usage: 3.8},
		{Name: "Trinity Force", Type: "Offensive", Usage: 7.0},
	},
	Associations: []AssociationSeed{
		{Champion: "Ahri", Item: "Rylai's Crystal Scepter", Usage: 8.5},
		{Champion: "Zed", Item: "Blade of the Ruined King", Usage: 15.0},
		{Champion: "Ezreal", Item: "Infinity Edge", Usage: 9.7},
	},
	Matchups: []MatchupSeed{
		// The mirror (Zed over Ahri, 53.8) is derived.
		{Champion: "Ahri", Opponent: "Zed", WinRate: 46.2},
	},
}

// Result counts what a run wrote. Reused records are not counted.
type Result struct {
	Champions    int
	Items        int
	Associations int
	Matchups     int
}

type Seeder struct {
	services *service.Services
	log      logging.Logger
}

func NewSeeder(services *service.Services, log logging.Logger) *Seeder {
	return &Seeder{services: services, log: log}
}

func (s *Seeder) Run(ctx context.Context, data Data) (*Result, error) {
	result := &Result{}
	champions := make(map[string]uint, len(data.Champions))
	items := make(map[string]uint, len(data.Items))

	for _, c := range data.Champions {
		champion, err := s.services.Champion.CreateChampion(ctx, service.CreateChampionInput{
			Name:     c.Name,
			Role:     c.Role,
			WinRate:  domain.Some(c.WinRate),
			PickRate: domain.Some(c.PickRate),
			BanRate:  domain.Some(c.BanRate),
			Profile: &service.ProfileInput{
				Description: fmt.Sprintf("Profile of %s", c.Name),
				Lore:        fmt.Sprintf("Short story of %s", c.Name),
			},
		})
		switch {
		case err == nil:
			result.Champions++
		case errors.Is(err, domain.ErrConflict):
			champion, err = s.services.Champion.GetChampionByName(ctx, c.Name)
			if err != nil {
				return nil, fmt.Errorf("load champion %q: %w", c.Name, err)
			}
		default:
			return nil, fmt.Errorf("create champion %q: %w", c.Name, err)
		}
		champions[c.Name] = champion.ID
	}

	for _, it := range data.Items {
		item, err := s.services.Item.CreateItem(ctx, service.CreateItemInput{
			Name:            it.Name,
			Type:            it.Type,
			UsagePercentage: it.Usage,
		})
		switch {
		case err == nil:
			result.Items++
		case errors.Is(err, domain.ErrConflict):
			item, err = s.services.Item.GetItemByName(ctx, it.Name)
			if err != nil {
				return nil, fmt.Errorf("load item %q: %w", it.Name, err)
			}
		default:
			return nil, fmt.Errorf("create item %q: %w", it.Name, err)
		}
		items[it.Name] = item.ID
	}

	for _, a := range data.Associations {
		championID, ok := champions[a.Champion]
		if !ok {
			return nil, fmt.Errorf("association references unknown champion %q", a.Champion)
		}
		itemID, ok := items[a.Item]
		if !ok {
			return nil, fmt.Errorf("association references unknown item %q", a.Item)
		}
		if _, err := s.services.Association.UpsertChampionItem(ctx, championID, itemID, a.Usage); err != nil {
			return nil, fmt.Errorf("associate %q with %q: %w", a.Champion, a.Item, err)
		}
		result.Associations++
	}

	for _, m := range data.Matchups {
		championID, ok := champions[m.Champion]
		if !ok {
			return nil, fmt.Errorf("matchup references unknown champion %q", m.Champion)
		}
		opponentID, ok := champions[m.Opponent]
		if !ok {
			return nil, fmt.Errorf("matchup references unknown champion %q", m.Opponent)
		}
		_, err := s.services.Matchup.CreateMatchup(ctx, service.CreateMatchupInput{
			ChampionID: championID,
			OpponentID: opponentID,
			WinRate:    m.WinRate,
		})
		switch {
		case err == nil:
			result.Matchups++
		case errors.Is(err, domain.ErrConflict):
			s.log.Debug("matchup already present", logging.Fields{"champion": m.Champion, "opponent": m.Opponent})
		default:
			return nil, fmt.Errorf("create matchup %q vs %q: %w", m.Champion, m.Opponent, err)
		}
	}

	s.log.Info("seed complete", logging.Fields{
		"champions":    result.Champions,
		"items":        result.Items,
		"associations": result.Associations,
		"matchups":     result.Matchups,
	})
	return result, nil
}
