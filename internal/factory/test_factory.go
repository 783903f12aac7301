package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/foundry/internal/dependencies/mocks"
	"github.com/mcoot/foundry/internal/services/world"
	"github.com/mcoot/foundry/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and the default world seeded
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, world.DefaultConfig(), logger)
	if err := app.Load(context.Background()); err != nil {
		// Memory storage does not fail
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// Reload builds a second session over the same storage, as another browser
// tab would see it
func (t *TestApp) Reload() *TestApp {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	app := newWithDependencies(t.Memory, t.MockClock, t.MockRandom, world.DefaultConfig(), logger)
	if err := app.Load(context.Background()); err != nil {
		panic(err)
	}
	return &TestApp{
		App:        app,
		MockClock:  t.MockClock,
		MockRandom: t.MockRandom,
		Memory:     t.Memory,
	}
}
