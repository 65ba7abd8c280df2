package order

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/guildboard/blackboard/internal/repositories/order Repository

import (
	"context"

	"github.com/guildboard/blackboard/internal/models"
)

// Repository defines the interface for order persistence.
//
// The unit of persistence is the whole per-guild collection: callers
// load the full list, apply their change and write the full list back.
// Concurrent writers to the same guild lose updates (last write wins);
// that is the documented consistency model, not an accident.
type Repository interface {
	// LoadOrders returns every order stored for a guild
	LoadOrders(ctx context.Context, input *LoadOrdersInput) ([]*models.Order, error)

	// SaveOrders replaces the stored collection for a guild
	SaveOrders(ctx context.Context, input *SaveOrdersInput) error
}
