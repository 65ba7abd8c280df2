package order

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/guildboard/blackboard/internal/services/order Service
//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/guildboard/blackboard/internal/services/order Publisher
//go:generate mockgen -package=mocks -destination=mocks/mock_moderator.go github.com/guildboard/blackboard/internal/services/order ModeratorChecker

import (
	"context"
)

// Service defines the interface for the order lifecycle
type Service interface {
	// CreateOrder commits a finished draft: assigns the next id for
	// the guild, applies the localized kind prefix to the title,
	// persists the order and publishes its public summary. A failed
	// publish still leaves the order persisted, without a channel
	// reference.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// GetOrder returns a single order by id
	GetOrder(ctx context.Context, input *GetOrderInput) (*GetOrderOutput, error)

	// ListOrders returns a guild's orders, oldest first
	ListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error)

	// ClaimOrder marks the acting user as working the order
	ClaimOrder(ctx context.Context, input *ClaimOrderInput) (*ClaimOrderOutput, error)

	// UnclaimOrder releases the acting user's claim
	UnclaimOrder(ctx context.Context, input *UnclaimOrderInput) (*UnclaimOrderOutput, error)

	// CloseOrder closes an order; owner or moderator only
	CloseOrder(ctx context.Context, input *CloseOrderInput) (*CloseOrderOutput, error)

	// ReopenOrder reopens a closed order; owner or moderator only
	ReopenOrder(ctx context.Context, input *ReopenOrderInput) (*ReopenOrderOutput, error)

	// RemoveOrder deletes an order outright; owner or moderator only
	RemoveOrder(ctx context.Context, input *RemoveOrderInput) error
}

// Publisher posts and maintains the public summary message for an
// order. Implemented by the Discord handler layer.
type Publisher interface {
	// PublishOrder posts the public summary and returns where it landed
	PublishOrder(ctx context.Context, input *PublishOrderInput) (*PublishOrderOutput, error)

	// UpdateOrderMessage re-renders an already-published summary
	UpdateOrderMessage(ctx context.Context, input *UpdateOrderMessageInput) error

	// DeleteOrderMessage removes a published summary
	DeleteOrderMessage(ctx context.Context, input *DeleteOrderMessageInput) error
}

// ModeratorChecker reports whether a guild member holds moderator
// capability per the guild's configuration
type ModeratorChecker interface {
	IsModerator(ctx context.Context, guildID, userID string) (bool, error)
}
