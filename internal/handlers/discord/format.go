package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/services/item"
)

const unansweredValue = "…"

// formatter turns draft and order values into localized display text.
// Shared by the DM presenter and the public publisher so the two
// surfaces never disagree about how a value reads.
type formatter struct {
	translator i18n.Translator
	items      item.Service
}

// fieldValue renders the draft's current value for a field, or a
// placeholder while unanswered
func (f *formatter) fieldValue(ctx context.Context, draft *models.Draft, field models.Field, lang string) string {
	switch field {
	case models.FieldTitle:
		if draft.Title == "" {
			return unansweredValue
		}
		return draft.Title
	case models.FieldItem:
		if draft.ItemID == 0 {
			return unansweredValue
		}
		return f.itemLabel(ctx, draft.ItemID)
	case models.FieldQuantityMode:
		return f.choiceLabel(field, string(draft.QuantityMode), lang)
	case models.FieldQuantity:
		if draft.QuantityMode == models.QuantityModeInfinite {
			return "∞"
		}
		if draft.Quantity == nil {
			return unansweredValue
		}
		return strconv.Itoa(*draft.Quantity)
	case models.FieldMode:
		return f.choiceLabel(field, string(draft.Mode), lang)
	case models.FieldScope:
		return f.choiceLabel(field, string(draft.Scope), lang)
	case models.FieldRewardType:
		return f.choiceLabel(field, string(draft.RewardType), lang)
	case models.FieldRewardItem:
		if draft.RewardItemID == 0 {
			return unansweredValue
		}
		return f.itemLabel(ctx, draft.RewardItemID)
	case models.FieldRewardQuantity:
		if draft.RewardQuantity == nil {
			return unansweredValue
		}
		return strconv.Itoa(*draft.RewardQuantity)
	case models.FieldRewardPer:
		return f.choiceLabel(field, string(draft.RewardPer), lang)
	default:
		return unansweredValue
	}
}

// choiceLabel renders a vocabulary value through its locale entry
func (f *formatter) choiceLabel(field models.Field, value, lang string) string {
	if value == "" {
		return unansweredValue
	}
	return f.translator.T(lang, fmt.Sprintf("wizard.choice.%s.%s", field, value), nil)
}

// fieldLabel renders the transcript label for a field
func (f *formatter) fieldLabel(field models.Field, lang string) string {
	return f.translator.T(lang, fmt.Sprintf("wizard.label.%s", field), nil)
}

// itemLabel renders "Name (#id)"; lookups fail soft to a placeholder
func (f *formatter) itemLabel(ctx context.Context, itemID int) string {
	out, err := f.items.GetItemInfo(ctx, &item.GetItemInfoInput{ItemID: itemID})
	if err != nil || out.Item == nil {
		return fmt.Sprintf("Item #%d", itemID)
	}
	return fmt.Sprintf("%s (#%d)", out.Item.Name, itemID)
}

// quantityText renders an order's quantity for the public summary
func (f *formatter) quantityText(order *models.Order, lang string) string {
	if order.QuantityMode == models.QuantityModeInfinite || order.Quantity == nil {
		return f.translator.T(lang, "board.quantity.infinite", nil)
	}

	key := "board.quantity.items"
	if order.QuantityMode == models.QuantityModeStacks {
		key = "board.quantity.stacks"
	}
	return f.translator.T(lang, key, map[string]string{"n": strconv.Itoa(*order.Quantity)})
}

// rewardText renders an order's reward for the public summary
func (f *formatter) rewardText(ctx context.Context, order *models.Order, lang string) string {
	if order.RewardQuantity == nil {
		return f.translator.T(lang, "board.reward.none", nil)
	}

	amount := strconv.Itoa(*order.RewardQuantity)
	var reward string
	if order.RewardType == models.RewardTypeItem && order.RewardItemID > 0 {
		reward = f.translator.T(lang, "board.reward.item", map[string]string{
			"n":    amount,
			"item": f.itemLabel(ctx, order.RewardItemID),
		})
	} else {
		reward = f.translator.T(lang, "board.reward.gold", map[string]string{"n": amount})
	}

	perKey := "board.reward.per_item"
	if order.RewardPer == models.RewardPerStack {
		perKey = "board.reward.per_stack"
	}
	return f.translator.T(lang, perKey, map[string]string{"reward": reward})
}

// statusText renders an order's lifecycle state
func (f *formatter) statusText(order *models.Order, lang string) string {
	switch {
	case order.Closed:
		return f.translator.T(lang, "board.status.closed", nil)
	case len(order.TakenBy) > 0:
		return f.translator.T(lang, "board.status.taken", nil)
	default:
		return f.translator.T(lang, "board.status.open", nil)
	}
}

// kindLabel renders buy/sell
func (f *formatter) kindLabel(kind models.OrderKind, lang string) string {
	if kind == models.OrderKindSell {
		return f.translator.T(lang, "wizard.kind.sell", nil)
	}
	return f.translator.T(lang, "wizard.kind.buy", nil)
}

// truncate caps display strings at Discord's component label limits
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
