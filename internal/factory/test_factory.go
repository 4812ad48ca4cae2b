package factory

import (
	"time"

	"github.com/partygamehq/partygame-go/internal/dependencies/mocks"
	"github.com/partygamehq/partygame-go/internal/model"
	memorystorage "github.com/partygamehq/partygame-go/internal/storage/memory"
	"github.com/partygamehq/partygame-go/internal/testutil"
)

// TestApp bundles a fully wired App with its mock dependencies so tests
// can control time and randomness directly.
type TestApp struct {
	*App
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an application wired against in-memory storage,
// a mock clock and a mock random source.
func NewTestApp() *TestApp {
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	app := newWithDependencies(memorystorage.New(), clk, rnd, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  clk,
		MockRandom: rnd,
	}
}

// LoadTestWordBank seeds the word bank with a small fixed set of pairs
func (a *TestApp) LoadTestWordBank() error {
	return a.WordBank.LoadBank(&model.WordBank{
		Categories: []model.WordCategory{
			{ID: "food", Name: "Food"},
			{ID: "places", Name: "Places"},
		},
		Pairs: []model.WordPair{
			{Category: "food", Normie: "pizza", Imposters: []string{"calzone", "flatbread"}},
			{Category: "food", Normie: "sushi", Imposters: []string{"sashimi"}},
			{Category: "places", Normie: "beach", Imposters: []string{"pool"}},
		},
	})
}
