package itemcache

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/guildboard/blackboard/internal/repositories/itemcache Repository

import (
	"context"

	"github.com/guildboard/blackboard/internal/models"
)

// Repository defines the interface for the shared item-metadata cache.
// It is a cache, not a source of truth: misses and errors are expected
// and callers fall through to the catalog API.
type Repository interface {
	// GetItem returns cached metadata for an item id
	GetItem(ctx context.Context, input *GetItemInput) (*models.ItemInfo, error)

	// SetItem caches metadata for an item id with the configured TTL
	SetItem(ctx context.Context, input *SetItemInput) error
}
