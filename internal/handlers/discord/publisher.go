package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/render"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/services/item"
	"github.com/guildboard/blackboard/internal/services/order"
	"go.uber.org/zap"
)

const (
	buyColor    = 0x2f855a
	sellColor   = 0xb7791f
	closedColor = 0x718096

	cardFilename = "item.png"
)

// publisher posts and maintains public order summaries. It implements
// order.Publisher.
type publisher struct {
	session    *discordgo.Session
	translator i18n.Translator
	items      item.Service
	configs    guildconfig.Repository
	format     *formatter
	logger     *zap.Logger
}

// PublisherConfig holds configuration for the order publisher
type PublisherConfig struct {
	Session      *discordgo.Session
	Translator   i18n.Translator
	Items        item.Service
	GuildConfigs guildconfig.Repository
	Logger       *zap.Logger
}

// NewPublisher creates the Discord order publisher
func NewPublisher(cfg *PublisherConfig) (*publisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.Translator == nil {
		return nil, errors.New("translator cannot be nil")
	}

	if cfg.Items == nil {
		return nil, errors.New("item service cannot be nil")
	}

	if cfg.GuildConfigs == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &publisher{
		session:    cfg.Session,
		translator: cfg.Translator,
		items:      cfg.Items,
		configs:    cfg.GuildConfigs,
		format:     &formatter{translator: cfg.Translator, items: cfg.Items},
		logger:     cfg.Logger,
	}, nil
}

func (p *publisher) PublishOrder(ctx context.Context, input *order.PublishOrderInput) (*order.PublishOrderOutput, error) {
	ord := input.Order
	channelID := p.targetChannel(ctx, ord.GuildID, input.OriginChannelID)
	if channelID == "" {
		return nil, errors.New("no channel to publish to")
	}

	info := p.itemInfo(ctx, ord.ItemID)
	embed := p.orderEmbed(ctx, ord, input.Lang)
	if info != nil && info.IconURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: info.IconURL}
	}

	send := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: p.boardComponents(ord, input.Lang),
	}

	// The tooltip card rides along as an attachment; rendering failures
	// only cost the picture
	if card := p.renderCard(info); card != nil {
		send.Files = []*discordgo.File{{
			Name:        cardFilename,
			ContentType: "image/png",
			Reader:      bytes.NewReader(card),
		}}
		embed.Image = &discordgo.MessageEmbedImage{
			URL: "attachment://" + cardFilename,
		}
	}

	msg, err := p.session.ChannelMessageSendComplex(channelID, send)
	if err != nil {
		return nil, fmt.Errorf("failed to publish order %d: %w", ord.ID, err)
	}

	return &order.PublishOrderOutput{ChannelID: channelID, MessageID: msg.ID}, nil
}

func (p *publisher) UpdateOrderMessage(ctx context.Context, input *order.UpdateOrderMessageInput) error {
	ord := input.Order
	if ord.ChannelID == "" || ord.MessageID == "" {
		return nil
	}

	embed := p.orderEmbed(ctx, ord, input.Lang)
	if info := p.itemInfo(ctx, ord.ItemID); info != nil && info.IconURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: info.IconURL}
	}
	// Edits keep the originally attached card
	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + cardFilename}

	components := p.boardComponents(ord, input.Lang)
	edit := discordgo.NewMessageEdit(ord.ChannelID, ord.MessageID)
	edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	edit.Components = &components

	_, err := p.session.ChannelMessageEditComplex(edit)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

func (p *publisher) DeleteOrderMessage(ctx context.Context, input *order.DeleteOrderMessageInput) error {
	ord := input.Order
	if ord.ChannelID == "" || ord.MessageID == "" {
		return nil
	}

	err := p.session.ChannelMessageDelete(ord.ChannelID, ord.MessageID)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

// targetChannel picks the board channel: the first configured order
// channel, falling back to where the wizard was started
func (p *publisher) targetChannel(ctx context.Context, guildID, originChannelID string) string {
	cfg, err := p.configs.GetConfig(ctx, &guildconfig.GetConfigInput{GuildID: guildID})
	if err != nil {
		p.logger.Warn("failed to load guild config for publish target",
			zap.String("guild_id", guildID),
			zap.Error(err))
		return originChannelID
	}

	if len(cfg.AllowedChannelIDs) > 0 {
		return cfg.AllowedChannelIDs[0]
	}
	return originChannelID
}

func (p *publisher) orderEmbed(ctx context.Context, ord *models.Order, lang string) *discordgo.MessageEmbed {
	color := buyColor
	switch {
	case ord.Closed:
		color = closedColor
	case ord.Kind == models.OrderKindSell:
		color = sellColor
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   p.translator.T(lang, "wizard.label.item", nil),
			Value:  p.format.itemLabel(ctx, ord.ItemID),
			Inline: true,
		},
		{
			Name:   p.translator.T(lang, "board.field.quantity", nil),
			Value:  p.format.quantityText(ord, lang),
			Inline: true,
		},
		{
			Name:   p.translator.T(lang, "board.field.reward", nil),
			Value:  p.format.rewardText(ctx, ord, lang),
			Inline: true,
		},
		{
			Name:   p.translator.T(lang, "board.field.owner", nil),
			Value:  fmt.Sprintf("<@%s>", ord.OwnerID),
			Inline: true,
		},
		{
			Name:   p.translator.T(lang, "board.field.status", nil),
			Value:  p.format.statusText(ord, lang),
			Inline: true,
		},
	}

	if len(ord.TakenBy) > 0 {
		mentions := make([]string, 0, len(ord.TakenBy))
		for _, id := range ord.TakenBy {
			mentions = append(mentions, fmt.Sprintf("<@%s>", id))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   p.translator.T(lang, "board.field.takenBy", nil),
			Value:  strings.Join(mentions, ", "),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  ord.Title,
		Color:  color,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("#%d", ord.ID),
		},
	}
}

// boardComponents builds the claim/release/close row. Claim controls
// disappear once the order is closed.
func (p *publisher) boardComponents(ord *models.Order, lang string) []discordgo.MessageComponent {
	if ord.Closed {
		return []discordgo.MessageComponent{}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    p.translator.T(lang, "board.button.claim", nil),
				Style:    discordgo.PrimaryButton,
				CustomID: BoardCustomID{Action: BoardActionClaim, OrderID: ord.ID}.String(),
			},
			discordgo.Button{
				Label:    p.translator.T(lang, "board.button.unclaim", nil),
				Style:    discordgo.SecondaryButton,
				CustomID: BoardCustomID{Action: BoardActionUnclaim, OrderID: ord.ID}.String(),
			},
			discordgo.Button{
				Label:    p.translator.T(lang, "board.button.close", nil),
				Style:    discordgo.DangerButton,
				CustomID: BoardCustomID{Action: BoardActionClose, OrderID: ord.ID}.String(),
			},
		}},
	}
}

// itemInfo fetches item metadata, nil when unavailable
func (p *publisher) itemInfo(ctx context.Context, itemID int) *models.ItemInfo {
	if itemID <= 0 {
		return nil
	}

	out, err := p.items.GetItemInfo(ctx, &item.GetItemInfoInput{ItemID: itemID})
	if err != nil || out.Item == nil {
		return nil
	}
	return out.Item
}

// renderCard renders the tooltip card for the fetched metadata
func (p *publisher) renderCard(info *models.ItemInfo) []byte {
	if info == nil {
		return nil
	}

	data, err := render.ItemCard(info)
	if err != nil {
		p.logger.Warn("failed to render item card",
			zap.Int("item_id", info.ID),
			zap.Error(err))
		return nil
	}
	return data
}
