package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChampionBuilder creates test champions with a builder pattern. It writes
// straight to the database, bypassing the service layer.
type ChampionBuilder struct {
	name     string
	role     domain.Role
	winRate  float64
	pickRate float64
	banRate  float64
	active   bool
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	return &ChampionBuilder{
		name:    fmt.Sprintf("champion_%s", uuid.New().String()[:8]),
		role:    domain.RoleFighter,
		winRate: domain.DefaultWinRate,
		active:  true,
	}
}

// WithName sets the champion name
func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.name = name
	return b
}

// WithRole sets the role
func (b *ChampionBuilder) WithRole(role domain.Role) *ChampionBuilder {
	b.role = role
	return b
}

// WithRates sets win, pick and ban rates
func (b *ChampionBuilder) WithRates(win, pick, ban float64) *ChampionBuilder {
	b.winRate = win
	b.pickRate = pick
	b.banRate = ban
	return b
}

// Inactive marks the champion soft-deleted
func (b *ChampionBuilder) Inactive() *ChampionBuilder {
	b.active = false
	return b
}

// Build creates the champion in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	champion := &domain.Champion{
		Name:     b.name,
		Role:     b.role,
		WinRate:  b.winRate,
		PickRate: b.pickRate,
		BanRate:  b.banRate,
		Active:   b.active,
	}
	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}
	return champion
}

// ItemBuilder creates test items with a builder pattern
type ItemBuilder struct {
	name   string
	kind   string
	usage  float64
	active bool
}

// NewItemBuilder creates a new ItemBuilder with default values
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		name:   fmt.Sprintf("item_%s", uuid.New().String()[:8]),
		kind:   "Offensive",
		active: true,
	}
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

// WithUsage sets the overall usage percentage
func (b *ItemBuilder) WithUsage(usage float64) *ItemBuilder {
	b.usage = usage
	return b
}

// Inactive marks the item soft-deleted
func (b *ItemBuilder) Inactive() *ItemBuilder {
	b.active = false
	return b
}

// Build creates the item in the database
func (b *ItemBuilder) Build(t *testing.T, db *gorm.DB) *domain.Item {
	t.Helper()

	item := &domain.Item{
		Name:            b.name,
		Type:            b.kind,
		UsagePercentage: b.usage,
		Active:          b.active,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return item
}

// SeedChampions creates N active test champions in the database
func SeedChampions(t *testing.T, db *gorm.DB, count int) []*domain.Champion {
	t.Helper()

	champions := make([]*domain.Champion, count)
	for i := 0; i < count; i++ {
		champions[i] = NewChampionBuilder().
			WithName(fmt.Sprintf("Test Champion %d", i)).
			Build(t, db)
	}
	return champions
}

// SeedItems creates N active test items in the database
func SeedItems(t *testing.T, db *gorm.DB, count int) []*domain.Item {
	t.Helper()

	items := make([]*domain.Item, count)
	for i := 0; i < count; i++ {
		items[i] = NewItemBuilder().
			WithName(fmt.Sprintf("Test Item %d", i)).
			Build(t, db)
	}
	return items
}

// NewJSONRequest creates an HTTP request with a JSON body
func NewJSONRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return req
}

// Do sends a request with the default client and fails the test on transport errors
func Do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", req.Method, req.URL, err)
	}
	t.Cleanup(func() {
		resp.Body.Close()
	})
	return resp
}
