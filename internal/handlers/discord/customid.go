package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guildboard/blackboard/internal/models"
)

// Custom ids are the only state a component interaction carries, so
// they encode which part of the dialogue was touched and which session
// it belongs to. A user runs one wizard per guild but all of them share
// the one DM channel, so the session key rides in the id:
//
//	wiz:kind:<buy|sell>:<key>   kind selector button
//	wiz:sel:<field>:<key>       choice select for a question (value = choice)
//	wiz:pick:<field>:<key>      item candidate select (value = item id)
//	wiz:nav:<action>:<key>      Back/Reset/Next buttons
//	wiz:confirm::<key>          summary confirm button
//	wiz:cancel::<key>           cancel button
//	board:<action>:<id>         claim/unclaim/close buttons on a public order

const (
	wizPrefix   = "wiz"
	boardPrefix = "board"
)

// WizardAction names the component kinds of the DM dialogue
type WizardAction string

const (
	WizardActionKind    WizardAction = "kind"
	WizardActionSelect  WizardAction = "sel"
	WizardActionPick    WizardAction = "pick"
	WizardActionNav     WizardAction = "nav"
	WizardActionConfirm WizardAction = "confirm"
	WizardActionCancel  WizardAction = "cancel"
)

// WizardCustomID addresses one wizard component
type WizardCustomID struct {
	Action WizardAction

	// Arg is the kind for kind buttons, the field for selects and the
	// nav action for nav buttons; empty for confirm/cancel
	Arg string

	// Key is the session key the component was rendered for
	Key string
}

func (c WizardCustomID) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", wizPrefix, c.Action, c.Arg, c.Key)
}

// Field returns the Arg as a wizard field
func (c WizardCustomID) Field() models.Field {
	return models.Field(c.Arg)
}

// ParseWizardCustomID decodes a wizard component id; ok is false for
// ids that belong to other surfaces
func ParseWizardCustomID(id string) (WizardCustomID, bool) {
	parts := strings.SplitN(id, ":", 4)
	if len(parts) != 4 || parts[0] != wizPrefix {
		return WizardCustomID{}, false
	}

	out := WizardCustomID{
		Action: WizardAction(parts[1]),
		Arg:    parts[2],
		Key:    parts[3],
	}
	if out.Key == "" {
		return WizardCustomID{}, false
	}

	switch out.Action {
	case WizardActionKind, WizardActionSelect, WizardActionPick, WizardActionNav:
		if out.Arg == "" {
			return WizardCustomID{}, false
		}
	case WizardActionConfirm, WizardActionCancel:
		if out.Arg != "" {
			return WizardCustomID{}, false
		}
	default:
		return WizardCustomID{}, false
	}
	return out, true
}

// BoardAction names the buttons on a published order
type BoardAction string

const (
	BoardActionClaim   BoardAction = "claim"
	BoardActionUnclaim BoardAction = "unclaim"
	BoardActionClose   BoardAction = "close"
)

// BoardCustomID addresses one order button
type BoardCustomID struct {
	Action  BoardAction
	OrderID int
}

func (c BoardCustomID) String() string {
	return fmt.Sprintf("%s:%s:%d", boardPrefix, c.Action, c.OrderID)
}

// ParseBoardCustomID decodes an order button id
func ParseBoardCustomID(id string) (BoardCustomID, bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != boardPrefix {
		return BoardCustomID{}, false
	}

	action := BoardAction(parts[1])
	switch action {
	case BoardActionClaim, BoardActionUnclaim, BoardActionClose:
	default:
		return BoardCustomID{}, false
	}

	orderID, err := strconv.Atoi(parts[2])
	if err != nil || orderID <= 0 {
		return BoardCustomID{}, false
	}
	return BoardCustomID{Action: action, OrderID: orderID}, true
}
