package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/services/order"
	"github.com/guildboard/blackboard/internal/services/wizard"
	"go.uber.org/zap"
)

const (
	orderCommandName = "order"
	setupCommandName = "setup"
)

var setupPermissions int64 = discordgo.PermissionManageServer

// CommandDefinitions lists the slash commands the bot registers. The
// register/unregister tooling in cmd/bot uses the same list so the two
// can never disagree.
func CommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        orderCommandName,
			Description: "Post and manage orders on the board",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Start a new order over DM",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Buy or sell",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "buy", Value: string(models.OrderKindBuy)},
								{Name: "sell", Value: string(models.OrderKindSell)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List open orders",
				},
				subCommandWithID("claim", "Claim an order"),
				subCommandWithID("unclaim", "Release your claim on an order"),
				subCommandWithID("close", "Close an order"),
				subCommandWithID("reopen", "Reopen a closed order"),
				subCommandWithID("remove", "Remove an order outright"),
			},
		},
		{
			Name:                     setupCommandName,
			Description:              "Configure the order board for this server",
			DefaultMemberPermissions: &setupPermissions,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the current settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lang",
					Description: "Set the board language",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "value",
							Description: "Language",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "English", Value: "en"},
								{Name: "Deutsch", Value: "de"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "modrole",
					Description: "Toggle a moderator role",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role to toggle",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "channel",
					Description: "Toggle an order channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel to toggle",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

func subCommandWithID(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Order number",
				Required:    true,
			},
		},
	}
}

func (b *Bot) handleOrderCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	if i.Member == nil || i.GuildID == "" {
		return
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	lang := b.lang(ctx, i.GuildID)
	userID := i.Member.User.ID

	switch sub.Name {
	case "new":
		b.handleOrderNew(ctx, i, sub, lang)
	case "list":
		b.handleOrderList(ctx, i, lang)
	case "claim":
		_, err := b.orders.ClaimOrder(ctx, &order.ClaimOrderInput{
			GuildID: i.GuildID,
			OrderID: intOption(sub, "id"),
			UserID:  userID,
			Lang:    lang,
		})
		b.respondOrderResult(i, lang, "board.msg.claimed", userID, err)
	case "unclaim":
		_, err := b.orders.UnclaimOrder(ctx, &order.UnclaimOrderInput{
			GuildID: i.GuildID,
			OrderID: intOption(sub, "id"),
			UserID:  userID,
			Lang:    lang,
		})
		b.respondOrderResult(i, lang, "board.msg.unclaimed", userID, err)
	case "close":
		_, err := b.orders.CloseOrder(ctx, &order.CloseOrderInput{
			GuildID: i.GuildID,
			OrderID: intOption(sub, "id"),
			UserID:  userID,
			Lang:    lang,
		})
		b.respondOrderResult(i, lang, "board.msg.closed", userID, err)
	case "reopen":
		_, err := b.orders.ReopenOrder(ctx, &order.ReopenOrderInput{
			GuildID: i.GuildID,
			OrderID: intOption(sub, "id"),
			UserID:  userID,
			Lang:    lang,
		})
		b.respondOrderResult(i, lang, "board.msg.reopened", userID, err)
	case "remove":
		err := b.orders.RemoveOrder(ctx, &order.RemoveOrderInput{
			GuildID: i.GuildID,
			OrderID: intOption(sub, "id"),
			UserID:  userID,
		})
		b.respondOrderResult(i, lang, "board.msg.removed", userID, err)
	}
}

// handleOrderNew opens the DM dialogue and confirms in the channel
func (b *Bot) handleOrderNew(ctx context.Context, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, lang string) {
	cfg, err := b.guildConfigs.GetConfig(ctx, &guildconfig.GetConfigInput{GuildID: i.GuildID})
	if err == nil && !cfg.ChannelAllowed(i.ChannelID) {
		b.respondEphemeral(i, b.translator.T(lang, "board.msg.channelNotAllowed", nil))
		return
	}

	user := i.Member.User
	dm, err := b.session.UserChannelCreate(user.ID)
	if err != nil {
		b.logger.Warn("failed to open DM channel",
			zap.String("user_id", user.ID),
			zap.Error(err))
		b.respondEphemeral(i, b.translator.T(lang, "wizard.msg.dmFail", nil))
		return
	}

	if err := b.wizard.Start(ctx, &wizard.StartInput{
		GuildID:         i.GuildID,
		UserID:          user.ID,
		UserTag:         user.Username,
		OriginChannelID: i.ChannelID,
		DMChannelID:     dm.ID,
		Kind:            models.OrderKind(stringOption(sub, "kind")),
	}); err != nil {
		b.logger.Error("failed to start wizard",
			zap.String("user_id", user.ID),
			zap.Error(err))
		b.respondEphemeral(i, b.translator.T(lang, "wizard.err.internal", nil))
		return
	}

	b.respondEphemeral(i, b.translator.T(lang, "wizard.msg.checkDM", nil))
}

func (b *Bot) handleOrderList(ctx context.Context, i *discordgo.InteractionCreate, lang string) {
	out, err := b.orders.ListOrders(ctx, &order.ListOrdersInput{GuildID: i.GuildID})
	if err != nil {
		b.logger.Error("failed to list orders",
			zap.String("guild_id", i.GuildID),
			zap.Error(err))
		b.respondEphemeral(i, b.translator.T(lang, "wizard.err.internal", nil))
		return
	}

	if len(out.Orders) == 0 {
		b.respondEphemeral(i, b.translator.T(lang, "board.msg.emptyList", nil))
		return
	}

	lines := make([]string, 0, len(out.Orders))
	for _, ord := range out.Orders {
		lines = append(lines, fmt.Sprintf("**#%d** %s | %s | %s",
			ord.ID,
			ord.Title,
			b.format().quantityText(ord, lang),
			b.format().statusText(ord, lang)))
	}
	b.respondEphemeral(i, strings.Join(lines, "\n"))
}

func (b *Bot) handleSetupCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	if i.Member == nil || i.GuildID == "" {
		return
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	cfg, err := b.guildConfigs.GetConfig(ctx, &guildconfig.GetConfigInput{GuildID: i.GuildID})
	if err != nil {
		b.logger.Error("failed to load guild config",
			zap.String("guild_id", i.GuildID),
			zap.Error(err))
		b.respondEphemeral(i, b.translator.T(i18n.DefaultLang, "wizard.err.internal", nil))
		return
	}
	lang := cfg.Lang

	switch sub.Name {
	case "show":
		b.respondEphemeral(i, b.renderSettings(cfg, lang))
		return
	case "lang":
		cfg.Lang = stringOption(sub, "value")
		lang = cfg.Lang
	case "modrole":
		cfg.ModRoleIDs = toggle(cfg.ModRoleIDs, roleOption(sub, "role"))
	case "channel":
		cfg.AllowedChannelIDs = toggle(cfg.AllowedChannelIDs, channelOption(sub, "channel"))
	default:
		return
	}

	if err := b.guildConfigs.SaveConfig(ctx, &guildconfig.SaveConfigInput{
		GuildID: i.GuildID,
		Config:  cfg,
	}); err != nil {
		b.logger.Error("failed to save guild config",
			zap.String("guild_id", i.GuildID),
			zap.Error(err))
		b.respondEphemeral(i, b.translator.T(lang, "wizard.err.internal", nil))
		return
	}

	b.respondEphemeral(i, fmt.Sprintf("%s\n%s",
		b.translator.T(lang, "setup.msg.saved", nil),
		b.renderSettings(cfg, lang)))
}

func (b *Bot) renderSettings(cfg *models.GuildConfig, lang string) string {
	roles := b.translator.T(lang, "setup.field.none", nil)
	if len(cfg.ModRoleIDs) > 0 {
		roles = mentionList(cfg.ModRoleIDs, "<@&%s>")
	}

	channels := b.translator.T(lang, "setup.field.any", nil)
	if len(cfg.AllowedChannelIDs) > 0 {
		channels = mentionList(cfg.AllowedChannelIDs, "<#%s>")
	}

	return fmt.Sprintf("%s\n%s: %s\n%s: %s\n%s: %s",
		b.translator.T(lang, "setup.msg.shown", nil),
		b.translator.T(lang, "setup.field.lang", nil), cfg.Lang,
		b.translator.T(lang, "setup.field.modRoles", nil), roles,
		b.translator.T(lang, "setup.field.channels", nil), channels)
}

func (b *Bot) respondOrderResult(i *discordgo.InteractionCreate, lang, successKey, userID string, err error) {
	if err != nil {
		b.respondEphemeral(i, b.translator.T(lang, orderErrorKey(err), nil))
		return
	}
	b.respondEphemeral(i, b.translator.T(lang, successKey, map[string]string{
		"user": fmt.Sprintf("<@%s>", userID),
	}))
}

// format builds the shared value formatter on demand
func (b *Bot) format() *formatter {
	return &formatter{translator: b.translator}
}

func mentionList(ids []string, pattern string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf(pattern, id))
	}
	return strings.Join(parts, ", ")
}

func toggle(list []string, id string) []string {
	if id == "" {
		return list
	}
	for n, existing := range list {
		if existing == id {
			return append(list[:n], list[n+1:]...)
		}
	}
	return append(list, id)
}

func subOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

func stringOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt := subOption(sub, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

func intOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) int {
	opt := subOption(sub, name)
	if opt == nil {
		return 0
	}
	return int(opt.IntValue())
}

func roleOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt := subOption(sub, name)
	if opt == nil {
		return ""
	}
	return opt.RoleValue(nil, "").ID
}

func channelOption(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt := subOption(sub, name)
	if opt == nil {
		return ""
	}
	return opt.ChannelValue(nil).ID
}
