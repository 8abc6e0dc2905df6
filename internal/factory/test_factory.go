package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/teamlineup/lineup/internal/dependencies/mocks"
	"github.com/teamlineup/lineup/internal/services/auth"
	sessionmemory "github.com/teamlineup/lineup/internal/sessions/memory"
	"github.com/teamlineup/lineup/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Photos are written under uploadDir, typically a t.TempDir().
func NewTestApp(uploadDir string) (*TestApp, error) {
	store := memory.New()
	sessionStore := sessionmemory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app, err := newWithDependencies(store, sessionStore, mockClock, mockRandom, uploadDir, auth.DefaultConfig(), logger)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}, nil
}
