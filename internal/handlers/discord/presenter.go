package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/services/item"
	"github.com/guildboard/blackboard/internal/services/wizard"
	"go.uber.org/zap"
)

const (
	cardColor       = 0x2b6cb0
	frozenCardColor = 0x4a5568
	maxTitleLen     = 200
	maxOptionLabel  = 100
)

// fieldHints maps free-text fields to their usage hint key
var fieldHints = map[models.Field]string{
	models.FieldTitle:          "wizard.hint.title",
	models.FieldItem:           "wizard.hint.item",
	models.FieldQuantity:       "wizard.hint.quantity",
	models.FieldRewardItem:     "wizard.hint.rewardItem",
	models.FieldRewardQuantity: "wizard.hint.rewardQty",
}

// presenter renders the DM dialogue. It implements wizard.Messenger.
type presenter struct {
	session    *discordgo.Session
	translator i18n.Translator
	format     *formatter
	logger     *zap.Logger
}

// PresenterConfig holds configuration for the DM presenter
type PresenterConfig struct {
	Session    *discordgo.Session
	Translator i18n.Translator
	Items      item.Service
	Logger     *zap.Logger
}

// NewPresenter creates the wizard's Discord messenger
func NewPresenter(cfg *PresenterConfig) (*presenter, error) {
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

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &presenter{
		session:    cfg.Session,
		translator: cfg.Translator,
		format:     &formatter{translator: cfg.Translator, items: cfg.Items},
		logger:     cfg.Logger,
	}, nil
}

func (p *presenter) PresentKindChoice(ctx context.Context, input *wizard.PresentKindChoiceInput) (*wizard.PresentOutput, error) {
	sess := input.Session
	msg, err := p.session.ChannelMessageSendComplex(sess.DMChannelID, &discordgo.MessageSend{
		Content: p.translator.T(input.Lang, "wizard.kind.prompt", nil),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    p.translator.T(input.Lang, "wizard.kind.buy", nil),
					Style:    discordgo.PrimaryButton,
					CustomID: WizardCustomID{Action: WizardActionKind, Arg: string(models.OrderKindBuy), Key: sess.Key()}.String(),
				},
				discordgo.Button{
					Label:    p.translator.T(input.Lang, "wizard.kind.sell", nil),
					Style:    discordgo.PrimaryButton,
					CustomID: WizardCustomID{Action: WizardActionKind, Arg: string(models.OrderKindSell), Key: sess.Key()}.String(),
				},
				p.cancelButton(sess.Key(), input.Lang),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send kind selector: %w", err)
	}
	return &wizard.PresentOutput{MessageID: msg.ID}, nil
}

func (p *presenter) FreezeKindChoice(ctx context.Context, input *wizard.FreezeKindChoiceInput) error {
	sess := input.Session
	content := fmt.Sprintf("%s\n**%s**",
		p.translator.T(input.Lang, "wizard.kind.prompt", nil),
		p.format.kindLabel(sess.Kind, input.Lang))

	edit := discordgo.NewMessageEdit(sess.DMChannelID, sess.KindMsgID)
	edit.Content = &content
	edit.Components = &[]discordgo.MessageComponent{}
	_, err := p.session.ChannelMessageEditComplex(edit)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

func (p *presenter) PresentQuestion(ctx context.Context, input *wizard.PresentQuestionInput) (*wizard.PresentOutput, error) {
	sess := input.Session
	embed := &discordgo.MessageEmbed{
		Title:       p.askText(sess, input.Field, input.Lang),
		Description: p.questionBody(ctx, sess, input.Field, input.Lang),
		Color:       cardColor,
	}

	var components []discordgo.MessageComponent
	if len(input.Choices) > 0 {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			p.choiceSelect(sess, input.Field, input.Choices, input.Lang),
		}})
	}
	components = append(components, p.navRow(sess.Key(), input.Lang, input.NextEnabled))

	msg, err := p.session.ChannelMessageSendComplex(sess.DMChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send question card: %w", err)
	}
	return &wizard.PresentOutput{MessageID: msg.ID}, nil
}

func (p *presenter) FreezeQuestion(ctx context.Context, input *wizard.FreezeQuestionInput) error {
	sess := input.Session
	msgID := sess.MsgIDs[input.Field]
	if msgID == "" {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title: p.format.fieldLabel(input.Field, input.Lang),
		Description: fmt.Sprintf("**%s**",
			p.format.fieldValue(ctx, sess.Draft, input.Field, input.Lang)),
		Color: frozenCardColor,
	}

	edit := discordgo.NewMessageEdit(sess.DMChannelID, msgID)
	edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	edit.Components = &[]discordgo.MessageComponent{}
	_, err := p.session.ChannelMessageEditComplex(edit)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

func (p *presenter) StripControls(ctx context.Context, input *wizard.StripControlsInput) error {
	sess := input.Session
	msgID := sess.MsgIDs[input.Field]
	if msgID == "" {
		return nil
	}

	edit := discordgo.NewMessageEdit(sess.DMChannelID, msgID)
	edit.Components = &[]discordgo.MessageComponent{}
	_, err := p.session.ChannelMessageEditComplex(edit)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

func (p *presenter) PresentCandidates(ctx context.Context, input *wizard.PresentCandidatesInput) (*wizard.PresentOutput, error) {
	sess := input.Session

	options := make([]discordgo.SelectMenuOption, 0, len(input.Candidates))
	for _, c := range input.Candidates {
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(c.Name, maxOptionLabel),
			Value:       strconv.Itoa(c.ID),
			Description: fmt.Sprintf("#%d", c.ID),
		})
	}

	msg, err := p.session.ChannelMessageSendComplex(sess.DMChannelID, &discordgo.MessageSend{
		Content: p.translator.T(input.Lang, "wizard.candidates.prompt", map[string]string{
			"query": input.Query,
		}),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType: discordgo.StringSelectMenu,
					CustomID: WizardCustomID{Action: WizardActionPick, Arg: string(input.Field), Key: sess.Key()}.String(),
					Options:  options,
				},
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send candidate selector: %w", err)
	}
	return &wizard.PresentOutput{MessageID: msg.ID}, nil
}

func (p *presenter) RemoveMessage(ctx context.Context, input *wizard.RemoveMessageInput) error {
	err := p.session.ChannelMessageDelete(input.Session.DMChannelID, input.MessageID)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

func (p *presenter) PresentSummary(ctx context.Context, input *wizard.PresentSummaryInput) (*wizard.PresentOutput, error) {
	sess := input.Session

	embed := &discordgo.MessageEmbed{
		Title:  p.translator.T(input.Lang, "wizard.summary.title", nil),
		Fields: p.summaryFields(ctx, sess, input.Lang),
		Color:  cardColor,
	}

	msg, err := p.session.ChannelMessageSendComplex(sess.DMChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    p.translator.T(input.Lang, "wizard.nav.confirm", nil),
					Style:    discordgo.SuccessButton,
					CustomID: WizardCustomID{Action: WizardActionConfirm, Key: sess.Key()}.String(),
				},
				p.cancelButton(sess.Key(), input.Lang),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send summary: %w", err)
	}
	return &wizard.PresentOutput{MessageID: msg.ID}, nil
}

func (p *presenter) FreezeSummary(ctx context.Context, input *wizard.FreezeSummaryInput) error {
	sess := input.Session
	if sess.SummaryMsgID == "" {
		return nil
	}

	edit := discordgo.NewMessageEdit(sess.DMChannelID, sess.SummaryMsgID)
	edit.Components = &[]discordgo.MessageComponent{}
	_, err := p.session.ChannelMessageEditComplex(edit)
	if isUnknownMessage(err) {
		return nil
	}
	return err
}

func (p *presenter) Notify(ctx context.Context, input *wizard.NotifyInput) error {
	_, err := p.session.ChannelMessageSend(input.Session.DMChannelID,
		p.translator.T(input.Lang, input.MessageKey, input.Vars))
	return err
}

// askText renders the question prompt, with the counting unit filled
// in for the amount questions
func (p *presenter) askText(sess *models.Session, field models.Field, lang string) string {
	key := fmt.Sprintf("wizard.ask.%s", field)
	switch field {
	case models.FieldQuantity:
		unitKey := "wizard.unit.items"
		if sess.Draft.QuantityMode == models.QuantityModeStacks {
			unitKey = "wizard.unit.stacks"
		}
		return p.translator.T(lang, key, map[string]string{
			"unit": p.translator.T(lang, unitKey, nil),
		})
	case models.FieldRewardQuantity:
		unitKey := "wizard.unit.gold"
		if sess.Draft.RewardType == models.RewardTypeItem {
			unitKey = "wizard.unit.items"
		}
		return p.translator.T(lang, key, map[string]string{
			"unit": p.translator.T(lang, unitKey, nil),
		})
	default:
		return p.translator.T(lang, key, nil)
	}
}

func (p *presenter) questionBody(ctx context.Context, sess *models.Session, field models.Field, lang string) string {
	body := ""
	if hintKey, ok := fieldHints[field]; ok {
		body = p.translator.T(lang, hintKey, map[string]string{
			"max": strconv.Itoa(maxTitleLen),
		}) + "\n\n"
	}
	return body + fmt.Sprintf("**%s:** %s",
		p.format.fieldLabel(field, lang),
		p.format.fieldValue(ctx, sess.Draft, field, lang))
}

// choiceSelect builds the discrete control for an enumerable field,
// pre-selecting the draft's current value
func (p *presenter) choiceSelect(sess *models.Session, field models.Field, choices []string, lang string) discordgo.SelectMenu {
	current := currentChoice(sess.Draft, field)
	options := make([]discordgo.SelectMenuOption, 0, len(choices))
	for _, choice := range choices {
		options = append(options, discordgo.SelectMenuOption{
			Label:   p.format.choiceLabel(field, choice, lang),
			Value:   choice,
			Default: choice == current,
		})
	}
	return discordgo.SelectMenu{
		MenuType: discordgo.StringSelectMenu,
		CustomID: WizardCustomID{Action: WizardActionSelect, Arg: string(field), Key: sess.Key()}.String(),
		Options:  options,
	}
}

func (p *presenter) navRow(key, lang string, nextEnabled bool) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    p.translator.T(lang, "wizard.nav.back", nil),
			Style:    discordgo.SecondaryButton,
			CustomID: WizardCustomID{Action: WizardActionNav, Arg: string(wizard.NavBack), Key: key}.String(),
		},
		discordgo.Button{
			Label:    p.translator.T(lang, "wizard.nav.reset", nil),
			Style:    discordgo.SecondaryButton,
			CustomID: WizardCustomID{Action: WizardActionNav, Arg: string(wizard.NavReset), Key: key}.String(),
		},
		discordgo.Button{
			Label:    p.translator.T(lang, "wizard.nav.next", nil),
			Style:    discordgo.PrimaryButton,
			CustomID: WizardCustomID{Action: WizardActionNav, Arg: string(wizard.NavNext), Key: key}.String(),
			Disabled: !nextEnabled,
		},
		p.cancelButton(key, lang),
	}}
}

func (p *presenter) cancelButton(key, lang string) discordgo.Button {
	return discordgo.Button{
		Label:    p.translator.T(lang, "wizard.nav.cancel", nil),
		Style:    discordgo.DangerButton,
		CustomID: WizardCustomID{Action: WizardActionCancel, Key: key}.String(),
	}
}

// summaryFields lists every relevant answered field in question order
func (p *presenter) summaryFields(ctx context.Context, sess *models.Session, lang string) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   p.translator.T(lang, "wizard.kind.prompt", nil),
			Value:  p.format.kindLabel(sess.Kind, lang),
			Inline: true,
		},
	}
	for _, field := range wizard.SummaryFields(sess.Draft) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   p.format.fieldLabel(field, lang),
			Value:  p.format.fieldValue(ctx, sess.Draft, field, lang),
			Inline: true,
		})
	}
	return fields
}

func currentChoice(draft *models.Draft, field models.Field) string {
	switch field {
	case models.FieldQuantityMode:
		return string(draft.QuantityMode)
	case models.FieldMode:
		return string(draft.Mode)
	case models.FieldScope:
		return string(draft.Scope)
	case models.FieldRewardType:
		return string(draft.RewardType)
	case models.FieldRewardPer:
		return string(draft.RewardPer)
	default:
		return ""
	}
}

// isUnknownMessage reports whether an error is Discord telling us the
// message is gone; freezing and cleanup tolerate that
func isUnknownMessage(err error) bool {
	if err == nil {
		return false
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeUnknownMessage
	}
	return false
}
