package wizard

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/guildboard/blackboard/internal/models"
)

// fieldOrder is the fixed question sequence. Relevance predicates
// decide which entries are actually asked for a given draft.
var fieldOrder = []models.Field{
	models.FieldTitle,
	models.FieldItem,
	models.FieldQuantityMode,
	models.FieldQuantity,
	models.FieldMode,
	models.FieldScope,
	models.FieldRewardType,
	models.FieldRewardItem,
	models.FieldRewardQuantity,
	models.FieldRewardPer,
}

// fieldChoices holds the closed vocabularies for the enumerable
// fields. Fields absent from this map take free-text answers.
var fieldChoices = map[models.Field][]string{
	models.FieldQuantityMode: {
		string(models.QuantityModeItems),
		string(models.QuantityModeStacks),
		string(models.QuantityModeInfinite),
	},
	models.FieldMode: {
		string(models.AssignModeSingle),
		string(models.AssignModeMulti),
	},
	models.FieldScope: {
		string(models.ScopePersonal),
		string(models.ScopeGuild),
	},
	models.FieldRewardType: {
		string(models.RewardTypeGold),
		string(models.RewardTypeItem),
	},
	models.FieldRewardPer: {
		string(models.RewardPerItem),
		string(models.RewardPerStack),
	},
}

func fieldIndex(field models.Field) int {
	for i, f := range fieldOrder {
		if f == field {
			return i
		}
	}
	return -1
}

// choiceValues returns the closed vocabulary for field, or nil for
// free-text fields
func choiceValues(field models.Field) []string {
	return fieldChoices[field]
}

// matchChoice resolves a typed answer against a field's vocabulary,
// case-insensitively
func matchChoice(field models.Field, text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, v := range choiceValues(field) {
		if strings.EqualFold(v, text) {
			return v, true
		}
	}
	return "", false
}

// isRelevant reports whether field must be answered given the rest of
// the draft. Quantity drops out for unlimited orders, the reward item
// drops out when the reward is gold.
func isRelevant(draft *models.Draft, field models.Field) bool {
	switch field {
	case models.FieldQuantity:
		return draft.QuantityMode != models.QuantityModeInfinite
	case models.FieldRewardItem:
		return draft.RewardType == models.RewardTypeItem
	default:
		return true
	}
}

// nextRelevantField scans forward from field; ok is false when the
// scan runs past the end, meaning the questionnaire is complete
func nextRelevantField(draft *models.Draft, field models.Field) (models.Field, bool) {
	for i := fieldIndex(field) + 1; i < len(fieldOrder); i++ {
		if isRelevant(draft, fieldOrder[i]) {
			return fieldOrder[i], true
		}
	}
	return "", false
}

// previousRelevantField scans backward from field; back navigation is
// capped at the first question
func previousRelevantField(draft *models.Draft, field models.Field) models.Field {
	for i := fieldIndex(field) - 1; i > 0; i-- {
		if isRelevant(draft, fieldOrder[i]) {
			return fieldOrder[i]
		}
	}
	return fieldOrder[0]
}

// isSatisfied reports whether field holds an acceptable value
func isSatisfied(draft *models.Draft, field models.Field) bool {
	switch field {
	case models.FieldTitle:
		return strings.TrimSpace(draft.Title) != ""
	case models.FieldItem:
		return draft.ItemID > 0
	case models.FieldQuantityMode:
		_, ok := matchChoice(field, string(draft.QuantityMode))
		return ok
	case models.FieldQuantity:
		if !isRelevant(draft, field) {
			return true
		}
		return draft.Quantity != nil && *draft.Quantity >= 1
	case models.FieldMode:
		_, ok := matchChoice(field, string(draft.Mode))
		return ok
	case models.FieldScope:
		_, ok := matchChoice(field, string(draft.Scope))
		return ok
	case models.FieldRewardType:
		_, ok := matchChoice(field, string(draft.RewardType))
		return ok
	case models.FieldRewardItem:
		if !isRelevant(draft, field) {
			return true
		}
		return draft.RewardItemID > 0
	case models.FieldRewardQuantity:
		return draft.RewardQuantity != nil && *draft.RewardQuantity >= 0
	case models.FieldRewardPer:
		_, ok := matchChoice(field, string(draft.RewardPer))
		return ok
	default:
		return false
	}
}

// resetField clears field back to unset. Fields whose validity depends
// on the cleared value are cleared along with it.
func resetField(draft *models.Draft, field models.Field) {
	switch field {
	case models.FieldTitle:
		draft.Title = ""
	case models.FieldItem:
		draft.ItemID = 0
	case models.FieldQuantityMode:
		draft.QuantityMode = ""
		draft.Quantity = nil
	case models.FieldQuantity:
		draft.Quantity = nil
	case models.FieldMode:
		draft.Mode = ""
	case models.FieldScope:
		draft.Scope = ""
	case models.FieldRewardType:
		draft.RewardType = ""
		draft.RewardItemID = 0
		draft.RewardQuantity = nil
		draft.RewardPer = ""
	case models.FieldRewardItem:
		draft.RewardItemID = 0
	case models.FieldRewardQuantity:
		draft.RewardQuantity = nil
	case models.FieldRewardPer:
		draft.RewardPer = ""
	}
}

// SummaryFields lists the draft's fields in question order, for
// rendering the summary card. Quantity is always included: unlimited
// drafts show it as ∞ rather than omitting the row.
func SummaryFields(draft *models.Draft) []models.Field {
	fields := make([]models.Field, 0, len(fieldOrder))
	for _, field := range fieldOrder {
		if field == models.FieldQuantity || isRelevant(draft, field) {
			fields = append(fields, field)
		}
	}
	return fields
}

var numberToken = regexp.MustCompile(`[+-]?\d+(\.\d+)?`)

// parseNumberFromText extracts the first integer or decimal token from
// free text, truncating decimals toward zero. A bare fraction like
// ".9" is not a token.
func parseNumberFromText(text string) (int, bool) {
	for _, loc := range numberToken.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && text[loc[0]-1] == '.' {
			continue
		}
		f, err := strconv.ParseFloat(text[loc[0]:loc[1]], 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}
