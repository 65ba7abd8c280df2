package models

import (
	"time"
)

// OrderKind distinguishes buy orders from sell orders
type OrderKind string

const (
	// OrderKindBuy is a request to acquire items
	OrderKindBuy OrderKind = "buy"

	// OrderKindSell is an offer to sell items
	OrderKindSell OrderKind = "sell"
)

// QuantityMode describes how the requested quantity is counted
type QuantityMode string

const (
	// QuantityModeItems counts individual items
	QuantityModeItems QuantityMode = "items"

	// QuantityModeStacks counts full stacks
	QuantityModeStacks QuantityMode = "stacks"

	// QuantityModeInfinite means the order has no quantity limit
	QuantityModeInfinite QuantityMode = "infinite"
)

// AssignMode describes how many members may work the order at once
type AssignMode string

const (
	// AssignModeSingle allows a single claimant
	AssignModeSingle AssignMode = "single"

	// AssignModeMulti allows multiple claimants
	AssignModeMulti AssignMode = "multi"
)

// Scope describes who the order is visible to
type Scope string

const (
	// ScopePersonal is a personal order
	ScopePersonal Scope = "personal"

	// ScopeGuild is a guild-wide order (moderators only)
	ScopeGuild Scope = "guild"
)

// RewardType describes what the owner pays with
type RewardType string

const (
	// RewardTypeGold pays in gold
	RewardTypeGold RewardType = "gold"

	// RewardTypeItem pays in another item
	RewardTypeItem RewardType = "item"
)

// RewardPer describes the unit the reward is paid per
type RewardPer string

const (
	// RewardPerItem pays the reward per item
	RewardPerItem RewardPer = "per_item"

	// RewardPerStack pays the reward per stack
	RewardPerStack RewardPer = "per_stack"
)

// Draft is the order under construction by the wizard. Unset numeric
// fields are nil pointers so a legitimate zero (reward quantity) can be
// told apart from "not answered yet".
type Draft struct {
	// Title is the free-text order title, without the kind prefix
	Title string `json:"title"`

	// ItemID is the resolved game item id (0 = unresolved)
	ItemID int `json:"wowItemId"`

	// QuantityMode is one of items/stacks/infinite
	QuantityMode QuantityMode `json:"quantityMode"`

	// Quantity is the requested amount; ignored when QuantityMode is infinite
	Quantity *int `json:"quantity"`

	// Mode is single or multi claimant
	Mode AssignMode `json:"mode"`

	// Scope is personal or guild
	Scope Scope `json:"scope"`

	// RewardType is gold or item
	RewardType RewardType `json:"rewardType"`

	// RewardItemID is the reward item id; only meaningful when RewardType is item
	RewardItemID int `json:"rewardItemId"`

	// RewardQuantity is the reward amount (>= 0)
	RewardQuantity *int `json:"rewardQuantity"`

	// RewardPer is per_item or per_stack
	RewardPer RewardPer `json:"rewardPer"`

	// OwnerID is the Discord user id of the order owner
	OwnerID string `json:"ownerId"`

	// OwnerTag is the owner's display tag at creation time
	OwnerTag string `json:"ownerTag"`
}

// Clone returns a deep copy of the draft
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	out := *d
	if d.Quantity != nil {
		q := *d.Quantity
		out.Quantity = &q
	}
	if d.RewardQuantity != nil {
		q := *d.RewardQuantity
		out.RewardQuantity = &q
	}
	return &out
}

// Order is a committed, persisted order
type Order struct {
	// ID is the guild-scoped sequential order id
	ID int `json:"id"`

	// GuildID is the Discord guild the order belongs to
	GuildID string `json:"guildId"`

	// Kind is buy or sell
	Kind OrderKind `json:"type"`

	// Title is the full title including the kind prefix
	Title string `json:"title"`

	// ItemID is the resolved game item id
	ItemID int `json:"wowItemId"`

	// QuantityMode is one of items/stacks/infinite
	QuantityMode QuantityMode `json:"quantityMode"`

	// Quantity is the requested amount; nil when QuantityMode is infinite
	Quantity *int `json:"quantity"`

	// Mode is single or multi claimant
	Mode AssignMode `json:"mode"`

	// Scope is personal or guild
	Scope Scope `json:"scope"`

	// RewardType is gold or item
	RewardType RewardType `json:"rewardType"`

	// RewardItemID is the reward item id; only meaningful when RewardType is item
	RewardItemID int `json:"rewardItemId"`

	// RewardQuantity is the reward amount
	RewardQuantity *int `json:"rewardQuantity"`

	// RewardPer is per_item or per_stack
	RewardPer RewardPer `json:"rewardPer"`

	// OwnerID is the Discord user id of the order owner
	OwnerID string `json:"ownerId"`

	// OwnerTag is the owner's display tag at creation time
	OwnerTag string `json:"ownerTag"`

	// TakenBy lists the user ids currently claiming the order
	TakenBy []string `json:"takenBy"`

	// Closed marks a completed or withdrawn order
	Closed bool `json:"closed"`

	// ChannelID is the channel of the public summary message, if published
	ChannelID string `json:"channelId,omitempty"`

	// MessageID is the public summary message, if published
	MessageID string `json:"messageId,omitempty"`

	// CreatedAt is when the order was committed
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the order was last mutated
	UpdatedAt time.Time `json:"updatedAt"`
}

// TakenByUser reports whether the given user currently claims the order
func (o *Order) TakenByUser(userID string) bool {
	for _, id := range o.TakenBy {
		if id == userID {
			return true
		}
	}
	return false
}
