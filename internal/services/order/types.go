package order

import (
	"github.com/guildboard/blackboard/internal/common/clock"
	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	orderRepo "github.com/guildboard/blackboard/internal/repositories/order"
	"go.uber.org/zap"
)

// Config holds configuration for the order service
type Config struct {
	// Repository persists per-guild order collections
	Repository orderRepo.Repository

	// Publisher posts public order summaries
	Publisher Publisher

	// Moderator checks moderator capability for the commit-time
	// scope fallback
	Moderator ModeratorChecker

	// Translator supplies the localized title prefixes
	Translator i18n.Translator

	// Clock
	Clock clock.Clock

	// Logger
	Logger *zap.Logger
}

type CreateOrderInput struct {
	GuildID string

	// Kind is buy or sell
	Kind models.OrderKind

	// Draft must satisfy every relevant field; the wizard guarantees
	// this before confirming
	Draft *models.Draft

	// Lang selects the title prefix and publication language
	Lang string

	// OriginChannelID is where the wizard was started; the publisher
	// may use it as the publication target
	OriginChannelID string
}

type CreateOrderOutput struct {
	Order *models.Order

	// Published is false when the public summary could not be posted;
	// the order is persisted either way
	Published bool
}

type GetOrderInput struct {
	GuildID string
	OrderID int
}

type GetOrderOutput struct {
	Order *models.Order
}

type ListOrdersInput struct {
	GuildID string

	// IncludeClosed keeps closed orders in the result
	IncludeClosed bool

	// OwnerID, when set, restricts to one owner's orders
	OwnerID string
}

type ListOrdersOutput struct {
	Orders []*models.Order
}

type ClaimOrderInput struct {
	GuildID string
	OrderID int
	UserID  string
	Lang    string
}

type ClaimOrderOutput struct {
	Order *models.Order
}

type UnclaimOrderInput struct {
	GuildID string
	OrderID int
	UserID  string
	Lang    string
}

type UnclaimOrderOutput struct {
	Order *models.Order
}

type CloseOrderInput struct {
	GuildID string
	OrderID int
	UserID  string
	Lang    string
}

type CloseOrderOutput struct {
	Order *models.Order
}

type ReopenOrderInput struct {
	GuildID string
	OrderID int
	UserID  string
	Lang    string
}

type ReopenOrderOutput struct {
	Order *models.Order
}

type RemoveOrderInput struct {
	GuildID string
	OrderID int
	UserID  string
}

type PublishOrderInput struct {
	Order *models.Order
	Lang  string

	// OriginChannelID is the channel the wizard was started from
	OriginChannelID string
}

type PublishOrderOutput struct {
	ChannelID string
	MessageID string
}

type UpdateOrderMessageInput struct {
	Order *models.Order
	Lang  string
}

type DeleteOrderMessageInput struct {
	Order *models.Order
}
