package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/repositories/session"
	"github.com/guildboard/blackboard/internal/services/item"
	"github.com/guildboard/blackboard/internal/services/order"
	"go.uber.org/zap"
)

// maxTitleLength caps order titles, in runes
const maxTitleLength = 200

// service implements the Service interface
type service struct {
	sessions     session.Registry
	messenger    Messenger
	items        item.Service
	orders       order.Service
	moderator    order.ModeratorChecker
	guildConfigs guildconfig.Repository
	logger       *zap.Logger
}

// New creates a new wizard engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session registry cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	if cfg.Items == nil {
		return nil, errors.New("item service cannot be nil")
	}

	if cfg.Orders == nil {
		return nil, errors.New("order service cannot be nil")
	}

	if cfg.Moderator == nil {
		return nil, errors.New("moderator checker cannot be nil")
	}

	if cfg.GuildConfigs == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &service{
		sessions:     cfg.Sessions,
		messenger:    cfg.Messenger,
		items:        cfg.Items,
		orders:       cfg.Orders,
		moderator:    cfg.Moderator,
		guildConfigs: cfg.GuildConfigs,
		logger:       cfg.Logger,
	}, nil
}

func (s *service) Start(ctx context.Context, input *StartInput) error {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return errors.New("input, guild ID and user ID cannot be empty")
	}

	sess, err := s.sessions.Create(ctx, &session.CreateInput{
		GuildID:         input.GuildID,
		UserID:          input.UserID,
		UserTag:         input.UserTag,
		OriginChannelID: input.OriginChannelID,
		DMChannelID:     input.DMChannelID,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	lang := s.lang(ctx, input.GuildID)
	return s.sessions.Do(ctx, sess.Key(), func(sess *models.Session) error {
		if input.Kind != "" {
			sess.Kind = input.Kind
			return s.presentField(ctx, sess, fieldOrder[0], lang)
		}

		out, err := s.messenger.PresentKindChoice(ctx, &PresentKindChoiceInput{
			Session: sess,
			Lang:    lang,
		})
		if err != nil {
			return fmt.Errorf("failed to present kind choice: %w", err)
		}
		sess.KindMsgID = out.MessageID
		return nil
	})
}

func (s *service) ChooseKind(ctx context.Context, input *ChooseKindInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}
	if input.Kind != models.OrderKindBuy && input.Kind != models.OrderKindSell {
		return nil
	}

	return s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		if sess.Kind != "" {
			return nil
		}
		sess.Kind = input.Kind

		lang := s.lang(ctx, sess.GuildID)
		if sess.KindMsgID != "" {
			if err := s.messenger.FreezeKindChoice(ctx, &FreezeKindChoiceInput{
				Session: sess,
				Lang:    lang,
			}); err != nil {
				s.logger.Warn("failed to freeze kind selector",
					zap.String("key", input.Key),
					zap.Error(err))
			}
		}
		return s.presentField(ctx, sess, fieldOrder[0], lang)
	})
}

func (s *service) HandleText(ctx context.Context, input *HandleTextInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	return s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		if sess.AwaitingSummary || sess.AwaitField == "" {
			return nil
		}

		lang := s.lang(ctx, sess.GuildID)
		field := sess.AwaitField
		switch field {
		case models.FieldTitle:
			title := strings.TrimSpace(input.Text)
			if title == "" {
				return nil
			}
			if len([]rune(title)) > maxTitleLength {
				return s.notify(ctx, sess, lang, "wizard.err.titleTooLong", map[string]string{
					"max": strconv.Itoa(maxTitleLength),
				})
			}
			sess.Draft.Title = title
			return s.advance(ctx, sess, lang)

		case models.FieldItem, models.FieldRewardItem:
			return s.handleItemQuery(ctx, sess, field, input.Text, lang)

		case models.FieldQuantity:
			n, ok := parseNumberFromText(input.Text)
			if !ok {
				return s.notify(ctx, sess, lang, "wizard.err.number", nil)
			}
			if n < 1 {
				return s.notify(ctx, sess, lang, "wizard.err.numberPositive", nil)
			}
			sess.Draft.Quantity = &n
			return s.advance(ctx, sess, lang)

		case models.FieldRewardQuantity:
			n, ok := parseNumberFromText(input.Text)
			if !ok {
				return s.notify(ctx, sess, lang, "wizard.err.number", nil)
			}
			if n < 0 {
				return s.notify(ctx, sess, lang, "wizard.err.numberNegative", nil)
			}
			sess.Draft.RewardQuantity = &n
			return s.advance(ctx, sess, lang)

		default:
			value, ok := matchChoice(field, input.Text)
			if !ok {
				return s.notify(ctx, sess, lang, "wizard.err.choice", nil)
			}
			return s.applyChoice(ctx, sess, field, value, lang)
		}
	})
}

func (s *service) HandleSelect(ctx context.Context, input *HandleSelectInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	return s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		// A selection from an already-frozen card addresses a field
		// that is no longer awaited; drop it.
		if sess.AwaitingSummary || sess.AwaitField != input.Field {
			return nil
		}

		lang := s.lang(ctx, sess.GuildID)
		value, ok := matchChoice(input.Field, input.Value)
		if !ok {
			return s.notify(ctx, sess, lang, "wizard.err.choice", nil)
		}
		return s.applyChoice(ctx, sess, input.Field, value, lang)
	})
}

func (s *service) HandleItemPick(ctx context.Context, input *HandleItemPickInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}
	if input.Field != models.FieldItem && input.Field != models.FieldRewardItem {
		return nil
	}

	return s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		if sess.AwaitField != input.Field || input.ItemID <= 0 {
			return nil
		}

		lang := s.lang(ctx, sess.GuildID)
		s.dropCandidates(ctx, sess)
		s.setItemField(sess.Draft, input.Field, input.ItemID)
		return s.advance(ctx, sess, lang)
	})
}

func (s *service) Navigate(ctx context.Context, input *NavigateInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	return s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		if sess.AwaitingSummary || sess.AwaitField == "" {
			return nil
		}

		lang := s.lang(ctx, sess.GuildID)
		field := sess.AwaitField
		switch input.Action {
		case NavBack:
			s.dropCandidates(ctx, sess)
			s.freezeField(ctx, sess, field, lang)
			return s.presentField(ctx, sess, previousRelevantField(sess.Draft, field), lang)

		case NavReset:
			s.dropCandidates(ctx, sess)
			if err := s.messenger.StripControls(ctx, &StripControlsInput{
				Session: sess,
				Field:   field,
			}); err != nil {
				s.logger.Warn("failed to strip card controls",
					zap.String("key", input.Key),
					zap.Error(err))
			}
			resetField(sess.Draft, field)
			return s.presentField(ctx, sess, field, lang)

		case NavNext:
			if !isSatisfied(sess.Draft, field) {
				return s.notify(ctx, sess, lang, "wizard.err.incomplete", nil)
			}
			return s.advance(ctx, sess, lang)

		default:
			return nil
		}
	})
}

func (s *service) Confirm(ctx context.Context, input *ConfirmInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	committed := false
	err := s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		if !sess.AwaitingSummary {
			return nil
		}

		lang := s.lang(ctx, sess.GuildID)
		out, err := s.orders.CreateOrder(ctx, &order.CreateOrderInput{
			GuildID:         sess.GuildID,
			Kind:            sess.Kind,
			Draft:           sess.Draft,
			Lang:            lang,
			OriginChannelID: sess.OriginChannelID,
		})
		if err != nil {
			s.logger.Error("failed to commit order",
				zap.String("key", input.Key),
				zap.Error(err))
			return s.notify(ctx, sess, lang, "wizard.err.internal", nil)
		}
		committed = true

		if err := s.messenger.FreezeSummary(ctx, &FreezeSummaryInput{
			Session: sess,
			Lang:    lang,
		}); err != nil {
			s.logger.Warn("failed to freeze summary",
				zap.String("key", input.Key),
				zap.Error(err))
		}

		if out.Published {
			link := fmt.Sprintf("https://discord.com/channels/%s/%s/%s",
				sess.GuildID, out.Order.ChannelID, out.Order.MessageID)
			return s.notify(ctx, sess, lang, "wizard.msg.done", map[string]string{"link": link})
		}
		return s.notify(ctx, sess, lang, "wizard.msg.doneNoLink", nil)
	})
	if err != nil {
		return err
	}

	if committed {
		return s.sessions.Delete(ctx, &session.DeleteInput{Key: input.Key})
	}
	return nil
}

func (s *service) Cancel(ctx context.Context, input *CancelInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	err := s.sessions.Do(ctx, input.Key, func(sess *models.Session) error {
		lang := s.lang(ctx, sess.GuildID)
		s.dropCandidates(ctx, sess)

		if sess.AwaitField != "" {
			if err := s.messenger.StripControls(ctx, &StripControlsInput{
				Session: sess,
				Field:   sess.AwaitField,
			}); err != nil {
				s.logger.Warn("failed to strip card controls",
					zap.String("key", input.Key),
					zap.Error(err))
			}
		}
		if sess.AwaitingSummary && sess.SummaryMsgID != "" {
			if err := s.messenger.FreezeSummary(ctx, &FreezeSummaryInput{
				Session: sess,
				Lang:    lang,
			}); err != nil {
				s.logger.Warn("failed to freeze summary",
					zap.String("key", input.Key),
					zap.Error(err))
			}
		}
		return s.notify(ctx, sess, lang, "wizard.msg.cancelled", nil)
	})
	if err != nil {
		return err
	}

	return s.sessions.Delete(ctx, &session.DeleteInput{Key: input.Key})
}

// handleItemQuery routes a typed item answer through the resolver. An
// ambiguous result suspends the question on a candidate selector.
func (s *service) handleItemQuery(ctx context.Context, sess *models.Session, field models.Field, text, lang string) error {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil
	}

	out, err := s.items.Resolve(ctx, &item.ResolveInput{Query: query})
	if err != nil {
		return fmt.Errorf("failed to resolve item: %w", err)
	}

	switch out.Status {
	case item.ResolveStatusResolved:
		s.dropCandidates(ctx, sess)
		s.setItemField(sess.Draft, field, out.ItemID)
		return s.advance(ctx, sess, lang)

	case item.ResolveStatusCandidates:
		s.dropCandidates(ctx, sess)
		pout, err := s.messenger.PresentCandidates(ctx, &PresentCandidatesInput{
			Session:    sess,
			Field:      field,
			Query:      query,
			Candidates: out.Candidates,
			Lang:       lang,
		})
		if err != nil {
			return fmt.Errorf("failed to present candidates: %w", err)
		}
		sess.CandidatesMsgID = pout.MessageID
		return nil

	default:
		return s.notify(ctx, sess, lang, "wizard.candidates.none", map[string]string{"query": query})
	}
}

// applyChoice writes a validated vocabulary value into the draft and
// advances. Typed answers and selector picks both land here, so the
// two input paths cannot drift apart.
func (s *service) applyChoice(ctx context.Context, sess *models.Session, field models.Field, value, lang string) error {
	if field == models.FieldScope && value == string(models.ScopeGuild) {
		isMod, err := s.moderator.IsModerator(ctx, sess.GuildID, sess.UserID)
		if err != nil {
			s.logger.Warn("moderator check failed",
				zap.String("guildId", sess.GuildID),
				zap.String("userId", sess.UserID),
				zap.Error(err))
			isMod = false
		}
		if !isMod {
			if err := s.notify(ctx, sess, lang, "wizard.err.notMod", nil); err != nil {
				return err
			}
			if err := s.messenger.StripControls(ctx, &StripControlsInput{
				Session: sess,
				Field:   field,
			}); err != nil {
				s.logger.Warn("failed to strip card controls",
					zap.String("key", sess.Key()),
					zap.Error(err))
			}
			return s.presentField(ctx, sess, field, lang)
		}
	}

	switch field {
	case models.FieldQuantityMode:
		sess.Draft.QuantityMode = models.QuantityMode(value)
	case models.FieldMode:
		sess.Draft.Mode = models.AssignMode(value)
	case models.FieldScope:
		sess.Draft.Scope = models.Scope(value)
	case models.FieldRewardType:
		sess.Draft.RewardType = models.RewardType(value)
		// A reward item picked under an earlier item choice must not
		// resurface after switching to gold
		if sess.Draft.RewardType == models.RewardTypeGold {
			sess.Draft.RewardItemID = 0
		}
	case models.FieldRewardPer:
		sess.Draft.RewardPer = models.RewardPer(value)
	default:
		return nil
	}
	return s.advance(ctx, sess, lang)
}

// advance freezes the answered card and moves to the next relevant
// question, or to the summary gate when none remains
func (s *service) advance(ctx context.Context, sess *models.Session, lang string) error {
	s.freezeField(ctx, sess, sess.AwaitField, lang)

	next, ok := nextRelevantField(sess.Draft, sess.AwaitField)
	if !ok {
		return s.presentSummary(ctx, sess, lang)
	}
	return s.presentField(ctx, sess, next, lang)
}

func (s *service) presentField(ctx context.Context, sess *models.Session, field models.Field, lang string) error {
	out, err := s.messenger.PresentQuestion(ctx, &PresentQuestionInput{
		Session:     sess,
		Field:       field,
		Lang:        lang,
		Choices:     choiceValues(field),
		NextEnabled: isSatisfied(sess.Draft, field),
	})
	if err != nil {
		return fmt.Errorf("failed to present question: %w", err)
	}

	sess.AwaitField = field
	sess.AwaitingSummary = false
	sess.MsgIDs[field] = out.MessageID
	return nil
}

func (s *service) presentSummary(ctx context.Context, sess *models.Session, lang string) error {
	out, err := s.messenger.PresentSummary(ctx, &PresentSummaryInput{
		Session: sess,
		Lang:    lang,
	})
	if err != nil {
		return fmt.Errorf("failed to present summary: %w", err)
	}

	sess.AwaitField = ""
	sess.AwaitingSummary = true
	sess.SummaryMsgID = out.MessageID
	return nil
}

// freezeField turns an answered card into a transcript entry;
// rendering trouble never blocks the state machine
func (s *service) freezeField(ctx context.Context, sess *models.Session, field models.Field, lang string) {
	if field == "" || sess.MsgIDs[field] == "" {
		return
	}
	if err := s.messenger.FreezeQuestion(ctx, &FreezeQuestionInput{
		Session: sess,
		Field:   field,
		Lang:    lang,
	}); err != nil {
		s.logger.Warn("failed to freeze question card",
			zap.String("key", sess.Key()),
			zap.String("field", string(field)),
			zap.Error(err))
	}
}

// dropCandidates removes a lingering disambiguation selector
func (s *service) dropCandidates(ctx context.Context, sess *models.Session) {
	if sess.CandidatesMsgID == "" {
		return
	}
	if err := s.messenger.RemoveMessage(ctx, &RemoveMessageInput{
		Session:   sess,
		MessageID: sess.CandidatesMsgID,
	}); err != nil {
		s.logger.Warn("failed to remove candidate selector",
			zap.String("key", sess.Key()),
			zap.Error(err))
	}
	sess.CandidatesMsgID = ""
}

func (s *service) setItemField(draft *models.Draft, field models.Field, itemID int) {
	if field == models.FieldRewardItem {
		draft.RewardItemID = itemID
		return
	}
	draft.ItemID = itemID
}

// notify sends a transient notice; delivery failure is logged, not
// propagated, so the state machine never wedges on a lost notice
func (s *service) notify(ctx context.Context, sess *models.Session, lang, key string, vars map[string]string) error {
	if err := s.messenger.Notify(ctx, &NotifyInput{
		Session:    sess,
		Lang:       lang,
		MessageKey: key,
		Vars:       vars,
	}); err != nil {
		s.logger.Warn("failed to send notice",
			zap.String("key", sess.Key()),
			zap.String("messageKey", key),
			zap.Error(err))
	}
	return nil
}

func (s *service) lang(ctx context.Context, guildID string) string {
	cfg, err := s.guildConfigs.GetConfig(ctx, &guildconfig.GetConfigInput{GuildID: guildID})
	if err != nil {
		s.logger.Warn("failed to load guild config",
			zap.String("guildId", guildID),
			zap.Error(err))
		return i18n.DefaultLang
	}
	return cfg.Lang
}
