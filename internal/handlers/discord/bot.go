package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/repositories/session"
	"github.com/guildboard/blackboard/internal/services/order"
	"github.com/guildboard/blackboard/internal/services/wizard"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	config       *Config
	wizard       wizard.Service
	orders       order.Service
	sessions     session.Registry
	guildConfigs guildconfig.Repository
	translator   i18n.Translator
	logger       *zap.Logger

	// commandIDs maps command name to registered command id, for
	// unregistration on shutdown
	commandIDs map[string]string
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the shared Discord session; the bot registers its
	// handlers on it and owns opening and closing the connection
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Wizard engine
	Wizard wizard.Service

	// Order lifecycle service
	Orders order.Service

	// Session registry, for routing DM traffic to sessions
	Sessions session.Registry

	// Guild configuration
	GuildConfigs guildconfig.Repository

	// Translator
	Translator i18n.Translator

	// Logger
	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.Wizard == nil {
		return nil, errors.New("wizard service cannot be nil")
	}

	if cfg.Orders == nil {
		return nil, errors.New("order service cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session registry cannot be nil")
	}

	if cfg.GuildConfigs == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	if cfg.Translator == nil {
		return nil, errors.New("translator cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	dg := cfg.Session

	// DM answers arrive as plain messages, so the message content
	// intent is required alongside the interaction traffic
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:      dg,
		config:       cfg,
		wizard:       cfg.Wizard,
		orders:       cfg.Orders,
		sessions:     cfg.Sessions,
		guildConfigs: cfg.GuildConfigs,
		translator:   cfg.Translator,
		logger:       cfg.Logger,
		commandIDs:   make(map[string]string),
	}

	dg.AddHandler(bot.handleInteraction)
	dg.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the Discord connection and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range CommandDefinitions() {
		if err := b.registerCommand(cmd); err != nil {
			return err
		}
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop unregisters the commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()
	for name, id := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, id); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", name),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

func (b *Bot) registerCommand(cmd *discordgo.ApplicationCommand) error {
	created, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd)
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
	}

	b.commandIDs[cmd.Name] = created.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.Name),
		zap.String("id", created.ID))
	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(ctx, i)
	}
}

func (b *Bot) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case orderCommandName:
		b.handleOrderCommand(ctx, i)
	case setupCommandName:
		b.handleSetupCommand(ctx, i)
	}
}

func (b *Bot) handleComponent(ctx context.Context, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	if wiz, ok := ParseWizardCustomID(customID); ok {
		b.handleWizardComponent(ctx, i, wiz)
		return
	}

	if board, ok := ParseBoardCustomID(customID); ok {
		b.handleBoardComponent(ctx, i, board)
		return
	}

	b.logger.Warn("unknown component id", zap.String("custom_id", customID))
}

// handleWizardComponent routes a DM component press into the engine.
// Wizard components only ever live in DMs, so the acting user is
// i.User rather than i.Member. The component's id names its session;
// the one DM channel carries cards from every guild's wizard, so the
// channel alone cannot.
func (b *Bot) handleWizardComponent(ctx context.Context, i *discordgo.InteractionCreate, id WizardCustomID) {
	if i.User == nil {
		return
	}

	sess, err := b.sessions.Get(ctx, &session.GetInput{Key: id.Key})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			b.respondMessage(i, b.translator.T(i18n.DefaultLang, "wizard.msg.expired", nil))
			return
		}
		b.logger.Error("failed to find session for component",
			zap.String("key", id.Key),
			zap.Error(err))
		return
	}

	// A component only acts for the user it was rendered for
	if sess.UserID != i.User.ID {
		return
	}

	// Acknowledge immediately; the engine answers with its own messages
	b.ack(i)

	key := sess.Key()
	switch id.Action {
	case WizardActionKind:
		err = b.wizard.ChooseKind(ctx, &wizard.ChooseKindInput{
			Key:  key,
			Kind: models.OrderKind(id.Arg),
		})
	case WizardActionSelect:
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		err = b.wizard.HandleSelect(ctx, &wizard.HandleSelectInput{
			Key:   key,
			Field: id.Field(),
			Value: values[0],
		})
	case WizardActionPick:
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		itemID, convErr := strconv.Atoi(values[0])
		if convErr != nil {
			return
		}
		err = b.wizard.HandleItemPick(ctx, &wizard.HandleItemPickInput{
			Key:    key,
			Field:  id.Field(),
			ItemID: itemID,
		})
	case WizardActionNav:
		err = b.wizard.Navigate(ctx, &wizard.NavigateInput{
			Key:    key,
			Action: wizard.NavAction(id.Arg),
		})
	case WizardActionConfirm:
		err = b.wizard.Confirm(ctx, &wizard.ConfirmInput{Key: key})
	case WizardActionCancel:
		err = b.wizard.Cancel(ctx, &wizard.CancelInput{Key: key})
	}

	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		b.logger.Error("wizard component failed",
			zap.String("custom_id", id.String()),
			zap.Error(err))
	}
}

// handleBoardComponent services the claim/release/close buttons on a
// published order
func (b *Bot) handleBoardComponent(ctx context.Context, i *discordgo.InteractionCreate, id BoardCustomID) {
	if i.Member == nil || i.GuildID == "" {
		return
	}

	userID := i.Member.User.ID
	lang := b.lang(ctx, i.GuildID)

	var err error
	var noticeKey string
	switch id.Action {
	case BoardActionClaim:
		_, err = b.orders.ClaimOrder(ctx, &order.ClaimOrderInput{
			GuildID: i.GuildID,
			OrderID: id.OrderID,
			UserID:  userID,
			Lang:    lang,
		})
		noticeKey = "board.msg.claimed"
	case BoardActionUnclaim:
		_, err = b.orders.UnclaimOrder(ctx, &order.UnclaimOrderInput{
			GuildID: i.GuildID,
			OrderID: id.OrderID,
			UserID:  userID,
			Lang:    lang,
		})
		noticeKey = "board.msg.unclaimed"
	case BoardActionClose:
		_, err = b.orders.CloseOrder(ctx, &order.CloseOrderInput{
			GuildID: i.GuildID,
			OrderID: id.OrderID,
			UserID:  userID,
			Lang:    lang,
		})
		noticeKey = "board.msg.closed"
	}

	if err != nil {
		b.respondEphemeral(i, b.translator.T(lang, orderErrorKey(err), nil))
		return
	}

	b.respondEphemeral(i, b.translator.T(lang, noticeKey, map[string]string{
		"user": fmt.Sprintf("<@%s>", userID),
	}))
}

// handleMessageCreate feeds DM text into the wizard. Messages outside
// an active session's DM channel are ignored.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}

	ctx := context.Background()
	sess, err := b.sessions.FindByDM(ctx, &session.FindByDMInput{
		DMChannelID: m.ChannelID,
		UserID:      m.Author.ID,
	})
	if err != nil {
		return
	}

	if err := b.wizard.HandleText(ctx, &wizard.HandleTextInput{
		Key:  sess.Key(),
		Text: m.Content,
	}); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		b.logger.Error("wizard text answer failed",
			zap.String("key", sess.Key()),
			zap.Error(err))
	}
}

// lang resolves the guild's configured language
func (b *Bot) lang(ctx context.Context, guildID string) string {
	cfg, err := b.guildConfigs.GetConfig(ctx, &guildconfig.GetConfigInput{GuildID: guildID})
	if err != nil {
		return i18n.DefaultLang
	}
	return cfg.Lang
}

// orderErrorKey maps order service errors to their locale keys
func orderErrorKey(err error) string {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return "board.msg.notFound"
	case errors.Is(err, order.ErrOrderClosed):
		return "board.msg.closed"
	case errors.Is(err, order.ErrOwnOrder):
		return "board.msg.selfClaim"
	case errors.Is(err, order.ErrAlreadyTaken):
		return "board.msg.alreadyTaken"
	case errors.Is(err, order.ErrNotTaken):
		return "board.msg.notTaken"
	case errors.Is(err, order.ErrNotPermitted):
		return "board.msg.notYours"
	default:
		return "wizard.err.internal"
	}
}

// ack acknowledges a component interaction without a visible response
func (b *Bot) ack(i *discordgo.InteractionCreate) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		b.logger.Warn("failed to acknowledge interaction", zap.Error(err))
	}
}

// respondMessage replies with a plain channel message
func (b *Bot) respondMessage(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		b.logger.Warn("failed to respond to interaction", zap.Error(err))
	}
}

// respondEphemeral replies with a message only the acting user sees
func (b *Bot) respondEphemeral(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Warn("failed to respond to interaction", zap.Error(err))
	}
}
