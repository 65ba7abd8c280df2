package item

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/guildboard/blackboard/internal/services/item Service

import (
	"context"
)

// Service defines the interface for item resolution and metadata
type Service interface {
	// GetItemInfo returns metadata for an item id. It fails soft: on
	// any lookup problem the output carries an "Item #<id>"
	// placeholder instead of an error.
	GetItemInfo(ctx context.Context, input *GetItemInfoInput) (*GetItemInfoOutput, error)

	// Resolve turns free text into an item id, a ranked candidate
	// list, or a not-found result
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}
