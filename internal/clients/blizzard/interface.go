package blizzard

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/guildboard/blackboard/internal/clients/blizzard Client

import (
	"context"

	"github.com/guildboard/blackboard/internal/models"
)

// Client defines the interface to the Battle.net game-data API
type Client interface {
	// GetItem fetches metadata and media for an item id
	GetItem(ctx context.Context, itemID int) (*models.ItemInfo, error)

	// SearchItems searches items by localized name. Results may
	// contain duplicates; callers deduplicate.
	SearchItems(ctx context.Context, query string) ([]*models.ItemCandidate, error)
}
