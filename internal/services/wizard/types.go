package wizard

import (
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/repositories/session"
	"github.com/guildboard/blackboard/internal/services/item"
	"github.com/guildboard/blackboard/internal/services/order"
	"go.uber.org/zap"
)

// NavAction is one of the card navigation controls
type NavAction string

const (
	// NavBack returns to the previous relevant question
	NavBack NavAction = "back"

	// NavReset clears the current field
	NavReset NavAction = "reset"

	// NavNext advances when the current field is satisfied
	NavNext NavAction = "next"
)

// Config holds configuration for the wizard engine
type Config struct {
	// Sessions owns the in-flight sessions
	Sessions session.Registry

	// Messenger renders the dialogue
	Messenger Messenger

	// Items resolves item queries
	Items item.Service

	// Orders commits confirmed drafts
	Orders order.Service

	// Moderator gates guild-wide scope at answer time
	Moderator order.ModeratorChecker

	// GuildConfigs supplies the guild language
	GuildConfigs guildconfig.Repository

	// Logger
	Logger *zap.Logger
}

type StartInput struct {
	GuildID         string
	UserID          string
	UserTag         string
	OriginChannelID string
	DMChannelID     string

	// Kind skips the kind selector when already chosen; optional
	Kind models.OrderKind
}

type ChooseKindInput struct {
	Key  string
	Kind models.OrderKind
}

type HandleTextInput struct {
	Key  string
	Text string
}

type HandleSelectInput struct {
	Key   string
	Field models.Field
	Value string
}

type HandleItemPickInput struct {
	Key    string
	Field  models.Field
	ItemID int
}

type NavigateInput struct {
	Key    string
	Action NavAction
}

type ConfirmInput struct {
	Key string
}

type CancelInput struct {
	Key string
}

// PresentOutput carries the id of a message the Messenger just sent
type PresentOutput struct {
	MessageID string
}

type PresentKindChoiceInput struct {
	Session *models.Session
	Lang    string
}

type FreezeKindChoiceInput struct {
	Session *models.Session
	Lang    string
}

type PresentQuestionInput struct {
	Session *models.Session
	Field   models.Field
	Lang    string

	// Choices is the closed vocabulary for enumerable fields, nil for
	// free-text fields
	Choices []string

	// NextEnabled mirrors the field's satisfaction; the Next control
	// is disabled otherwise
	NextEnabled bool
}

type FreezeQuestionInput struct {
	Session *models.Session
	Field   models.Field
	Lang    string
}

type StripControlsInput struct {
	Session *models.Session
	Field   models.Field
}

type PresentCandidatesInput struct {
	Session    *models.Session
	Field      models.Field
	Query      string
	Candidates []*models.ItemCandidate
	Lang       string
}

type RemoveMessageInput struct {
	Session   *models.Session
	MessageID string
}

type PresentSummaryInput struct {
	Session *models.Session
	Lang    string
}

type FreezeSummaryInput struct {
	Session *models.Session
	Lang    string
}

type NotifyInput struct {
	Session *models.Session
	Lang    string

	// MessageKey is a locale key; Vars fills its placeholders
	MessageKey string
	Vars       map[string]string
}
