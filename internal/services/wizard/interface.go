package wizard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/guildboard/blackboard/internal/services/wizard Service
//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/guildboard/blackboard/internal/services/wizard Messenger

import (
	"context"
)

// Service is the wizard engine: a per-session state machine that walks
// the user through the order questionnaire over DM.
//
// Every method addresses a session by its registry key and runs under
// the registry's per-key lock, so concurrent events for one session
// (a text answer racing a button press) serialize.
type Service interface {
	// Start opens a session and presents the kind selector, or the
	// first question when the kind was already chosen via command
	// option. An existing session for the same (guild, user) is
	// replaced.
	Start(ctx context.Context, input *StartInput) error

	// ChooseKind handles the buy/sell selection
	ChooseKind(ctx context.Context, input *ChooseKindInput) error

	// HandleText handles a free-text DM answer for the current field
	HandleText(ctx context.Context, input *HandleTextInput) error

	// HandleSelect handles a discrete-choice selection. It validates
	// and applies exactly like the equivalent typed answer.
	HandleSelect(ctx context.Context, input *HandleSelectInput) error

	// HandleItemPick resumes a suspended item question with the
	// candidate the user picked
	HandleItemPick(ctx context.Context, input *HandleItemPickInput) error

	// Navigate handles the Back/Reset/Next controls
	Navigate(ctx context.Context, input *NavigateInput) error

	// Confirm commits the draft at the summary gate and ends the session
	Confirm(ctx context.Context, input *ConfirmInput) error

	// Cancel abandons the session without persisting anything
	Cancel(ctx context.Context, input *CancelInput) error
}

// Messenger renders the wizard's dialogue. Implemented by the Discord
// handler layer; the engine only ever sees message identifiers.
type Messenger interface {
	// PresentKindChoice shows the buy/sell selector
	PresentKindChoice(ctx context.Context, input *PresentKindChoiceInput) (*PresentOutput, error)

	// FreezeKindChoice strips the selector and shows the chosen kind
	FreezeKindChoice(ctx context.Context, input *FreezeKindChoiceInput) error

	// PresentQuestion shows a new card for a field and returns its
	// message id
	PresentQuestion(ctx context.Context, input *PresentQuestionInput) (*PresentOutput, error)

	// FreezeQuestion rewrites a field's card into a read-only
	// transcript entry showing the committed answer. Idempotent; a
	// deleted message is tolerated.
	FreezeQuestion(ctx context.Context, input *FreezeQuestionInput) error

	// StripControls removes a card's interactive controls without
	// changing the displayed value
	StripControls(ctx context.Context, input *StripControlsInput) error

	// PresentCandidates shows the item-disambiguation selector
	PresentCandidates(ctx context.Context, input *PresentCandidatesInput) (*PresentOutput, error)

	// RemoveMessage deletes a transient message; missing is tolerated
	RemoveMessage(ctx context.Context, input *RemoveMessageInput) error

	// PresentSummary shows the read-only draft summary with the
	// confirm/cancel gate
	PresentSummary(ctx context.Context, input *PresentSummaryInput) (*PresentOutput, error)

	// FreezeSummary strips the summary's controls
	FreezeSummary(ctx context.Context, input *FreezeSummaryInput) error

	// Notify sends a transient localized notice into the dialogue
	Notify(ctx context.Context, input *NotifyInput) error
}
