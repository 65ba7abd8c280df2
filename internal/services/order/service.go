package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/guildboard/blackboard/internal/common/clock"
	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	orderRepo "github.com/guildboard/blackboard/internal/repositories/order"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	repo       orderRepo.Repository
	publisher  Publisher
	moderator  ModeratorChecker
	translator i18n.Translator
	clock      clock.Clock
	logger     *zap.Logger

	// Per-guild id counters. Seeded from the persisted collection on
	// first use, then strictly increasing for the life of the process
	// so removing the newest order never frees its id.
	idMu    sync.Mutex
	nextIDs map[string]int
}

// New creates a new order service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("repository cannot be nil")
	}

	if cfg.Publisher == nil {
		return nil, errors.New("publisher cannot be nil")
	}

	if cfg.Moderator == nil {
		return nil, errors.New("moderator checker cannot be nil")
	}

	if cfg.Translator == nil {
		return nil, errors.New("translator cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &service{
		repo:       cfg.Repository,
		publisher:  cfg.Publisher,
		moderator:  cfg.Moderator,
		translator: cfg.Translator,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		nextIDs:    make(map[string]int),
	}, nil
}

// allocateID hands out the guild's next order id. The counter starts
// past the highest persisted id and only moves forward.
func (s *service) allocateID(guildID string, orders []*models.Order) int {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	next, ok := s.nextIDs[guildID]
	if !ok {
		next = 1
		for _, o := range orders {
			if o.ID >= next {
				next = o.ID + 1
			}
		}
	}
	s.nextIDs[guildID] = next + 1
	return next
}

func (s *service) CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error) {
	if input == nil || input.GuildID == "" || input.Draft == nil {
		return nil, errors.New("input, guild ID and draft cannot be empty")
	}

	draft := input.Draft.Clone()

	// Last-resort scope enforcement. The wizard already rejects this
	// at answer time, but role changes between answering and
	// confirming must not let a non-moderator post guild-wide.
	if draft.Scope == models.ScopeGuild {
		isMod, err := s.moderator.IsModerator(ctx, input.GuildID, draft.OwnerID)
		if err != nil || !isMod {
			s.logger.Warn("downgrading guild order to personal scope",
				zap.String("guildId", input.GuildID),
				zap.String("ownerId", draft.OwnerID),
				zap.Error(err))
			draft.Scope = models.ScopePersonal
		}
	}

	orders, err := s.repo.LoadOrders(ctx, &orderRepo.LoadOrdersInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	nextID := s.allocateID(input.GuildID, orders)

	quantity := draft.Quantity
	if draft.QuantityMode == models.QuantityModeInfinite {
		quantity = nil
	}

	now := s.clock.Now()
	order := &models.Order{
		ID:             nextID,
		GuildID:        input.GuildID,
		Kind:           input.Kind,
		Title:          s.applyTitlePrefix(input.Kind, input.Lang, draft.Title),
		ItemID:         draft.ItemID,
		QuantityMode:   draft.QuantityMode,
		Quantity:       quantity,
		Mode:           draft.Mode,
		Scope:          draft.Scope,
		RewardType:     draft.RewardType,
		RewardItemID:   draft.RewardItemID,
		RewardQuantity: draft.RewardQuantity,
		RewardPer:      draft.RewardPer,
		OwnerID:        draft.OwnerID,
		OwnerTag:       draft.OwnerTag,
		TakenBy:        []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	orders = append(orders, order)
	if err := s.repo.SaveOrders(ctx, &orderRepo.SaveOrdersInput{
		GuildID: input.GuildID,
		Orders:  orders,
	}); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	published, err := s.publisher.PublishOrder(ctx, &PublishOrderInput{
		Order:           order,
		Lang:            input.Lang,
		OriginChannelID: input.OriginChannelID,
	})
	if err != nil {
		// The order stays persisted without a channel reference
		s.logger.Warn("failed to publish order",
			zap.String("guildId", input.GuildID),
			zap.Int("orderId", order.ID),
			zap.Error(err))
		return &CreateOrderOutput{Order: order}, nil
	}

	order.ChannelID = published.ChannelID
	order.MessageID = published.MessageID
	if err := s.repo.SaveOrders(ctx, &orderRepo.SaveOrdersInput{
		GuildID: input.GuildID,
		Orders:  orders,
	}); err != nil {
		s.logger.Warn("failed to store message reference",
			zap.String("guildId", input.GuildID),
			zap.Int("orderId", order.ID),
			zap.Error(err))
	}

	return &CreateOrderOutput{Order: order, Published: true}, nil
}

func (s *service) GetOrder(ctx context.Context, input *GetOrderInput) (*GetOrderOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	orders, err := s.repo.LoadOrders(ctx, &orderRepo.LoadOrdersInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	order, _ := findOrder(orders, input.OrderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return &GetOrderOutput{Order: order}, nil
}

func (s *service) ListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	orders, err := s.repo.LoadOrders(ctx, &orderRepo.LoadOrdersInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	filtered := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Closed && !input.IncludeClosed {
			continue
		}
		if input.OwnerID != "" && o.OwnerID != input.OwnerID {
			continue
		}
		filtered = append(filtered, o)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	return &ListOrdersOutput{Orders: filtered}, nil
}

func (s *service) ClaimOrder(ctx context.Context, input *ClaimOrderInput) (*ClaimOrderOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	order, err := s.mutate(ctx, input.GuildID, input.OrderID, input.Lang, func(o *models.Order) error {
		if o.Closed {
			return ErrOrderClosed
		}
		if o.OwnerID == input.UserID {
			return ErrOwnOrder
		}
		if o.TakenByUser(input.UserID) {
			return ErrAlreadyTaken
		}
		if o.Mode == models.AssignModeSingle && len(o.TakenBy) > 0 {
			return ErrAlreadyTaken
		}
		o.TakenBy = append(o.TakenBy, input.UserID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ClaimOrderOutput{Order: order}, nil
}

func (s *service) UnclaimOrder(ctx context.Context, input *UnclaimOrderInput) (*UnclaimOrderOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	order, err := s.mutate(ctx, input.GuildID, input.OrderID, input.Lang, func(o *models.Order) error {
		if !o.TakenByUser(input.UserID) {
			return ErrNotTaken
		}
		kept := o.TakenBy[:0]
		for _, id := range o.TakenBy {
			if id != input.UserID {
				kept = append(kept, id)
			}
		}
		o.TakenBy = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &UnclaimOrderOutput{Order: order}, nil
}

func (s *service) CloseOrder(ctx context.Context, input *CloseOrderInput) (*CloseOrderOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	order, err := s.mutate(ctx, input.GuildID, input.OrderID, input.Lang, func(o *models.Order) error {
		if !s.canManage(ctx, o, input.UserID) {
			return ErrNotPermitted
		}
		o.Closed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CloseOrderOutput{Order: order}, nil
}

func (s *service) ReopenOrder(ctx context.Context, input *ReopenOrderInput) (*ReopenOrderOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	order, err := s.mutate(ctx, input.GuildID, input.OrderID, input.Lang, func(o *models.Order) error {
		if !s.canManage(ctx, o, input.UserID) {
			return ErrNotPermitted
		}
		o.Closed = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ReopenOrderOutput{Order: order}, nil
}

func (s *service) RemoveOrder(ctx context.Context, input *RemoveOrderInput) error {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return errors.New("input, guild ID and user ID cannot be empty")
	}

	orders, err := s.repo.LoadOrders(ctx, &orderRepo.LoadOrdersInput{GuildID: input.GuildID})
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	order, idx := findOrder(orders, input.OrderID)
	if order == nil {
		return ErrOrderNotFound
	}
	if !s.canManage(ctx, order, input.UserID) {
		return ErrNotPermitted
	}

	orders = append(orders[:idx], orders[idx+1:]...)
	if err := s.repo.SaveOrders(ctx, &orderRepo.SaveOrdersInput{
		GuildID: input.GuildID,
		Orders:  orders,
	}); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}

	if order.MessageID != "" {
		if err := s.publisher.DeleteOrderMessage(ctx, &DeleteOrderMessageInput{Order: order}); err != nil {
			s.logger.Warn("failed to delete order message",
				zap.String("guildId", input.GuildID),
				zap.Int("orderId", order.ID),
				zap.Error(err))
		}
	}

	return nil
}

// mutate loads the guild's collection, applies fn to the addressed
// order, persists the collection and refreshes the public summary
func (s *service) mutate(ctx context.Context, guildID string, orderID int, lang string, fn func(*models.Order) error) (*models.Order, error) {
	orders, err := s.repo.LoadOrders(ctx, &orderRepo.LoadOrdersInput{GuildID: guildID})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	order, _ := findOrder(orders, orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := fn(order); err != nil {
		return nil, err
	}
	order.UpdatedAt = s.clock.Now()

	if err := s.repo.SaveOrders(ctx, &orderRepo.SaveOrdersInput{
		GuildID: guildID,
		Orders:  orders,
	}); err != nil {
		return nil, fmt.Errorf("failed to save orders: %w", err)
	}

	if order.MessageID != "" {
		if err := s.publisher.UpdateOrderMessage(ctx, &UpdateOrderMessageInput{
			Order: order,
			Lang:  lang,
		}); err != nil {
			s.logger.Warn("failed to refresh order message",
				zap.String("guildId", guildID),
				zap.Int("orderId", order.ID),
				zap.Error(err))
		}
	}

	return order, nil
}

// canManage allows the owner and moderators; a failed moderator check
// counts as not permitted
func (s *service) canManage(ctx context.Context, order *models.Order, userID string) bool {
	if order.OwnerID == userID {
		return true
	}
	isMod, err := s.moderator.IsModerator(ctx, order.GuildID, userID)
	if err != nil {
		s.logger.Warn("moderator check failed",
			zap.String("guildId", order.GuildID),
			zap.String("userId", userID),
			zap.Error(err))
		return false
	}
	return isMod
}

func findOrder(orders []*models.Order, id int) (*models.Order, int) {
	for i, o := range orders {
		if o.ID == id {
			return o, i
		}
	}
	return nil, -1
}
