package session

import (
	"context"

	"github.com/guildboard/blackboard/internal/models"
)

// Registry owns every in-flight wizard session. Sessions are purely
// in-memory: they do not survive a restart, and starting a new wizard
// for a key replaces the old session.
type Registry interface {
	// Create starts a session for (guild, user), replacing any
	// existing one for the same key
	Create(ctx context.Context, input *CreateInput) (*models.Session, error)

	// Get returns the session for a key
	Get(ctx context.Context, input *GetInput) (*models.Session, error)

	// FindByDM returns the session whose dialogue runs in the given
	// DM channel for the given user
	FindByDM(ctx context.Context, input *FindByDMInput) (*models.Session, error)

	// Delete removes a session; deleting a missing key is not an error
	Delete(ctx context.Context, input *DeleteInput) error

	// Do runs fn with the session for key under the key's lock, so
	// concurrent events for one session serialize instead of racing.
	// The session's LastActivity is bumped before fn runs.
	Do(ctx context.Context, key string, fn func(*models.Session) error) error
}
