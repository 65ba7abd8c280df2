package models

import "fmt"

// ItemCandidate is one hit from a name search, shown in the
// disambiguation select menu
type ItemCandidate struct {
	// ID is the game item id
	ID int `json:"id"`

	// Name is the localized item name
	Name string `json:"name"`
}

// ItemInfo is the metadata the lookup service knows about an item.
// Every field except ID may be absent; renderers must tolerate that.
type ItemInfo struct {
	// ID is the game item id
	ID int `json:"id"`

	// Name is the localized item name, or an "Item #<id>" placeholder
	Name string `json:"name"`

	// IconURL points at the item icon asset
	IconURL string `json:"iconUrl,omitempty"`

	// Quality is the quality tier 0..7, or -1 when unknown
	Quality int `json:"quality"`

	// QualityName is the localized quality label
	QualityName string `json:"qualityName,omitempty"`

	// ItemLevel is the item level
	ItemLevel int `json:"itemLevel,omitempty"`

	// ReqLevel is the required character level
	ReqLevel int `json:"reqLevel,omitempty"`

	// Class is the item class name
	Class string `json:"class,omitempty"`

	// Subclass is the item subclass name
	Subclass string `json:"subclass,omitempty"`

	// InventoryType is the equip slot name
	InventoryType string `json:"inventoryType,omitempty"`

	// Stats are preformatted stat display lines
	Stats []string `json:"stats,omitempty"`

	// DamageText is the weapon damage display line
	DamageText string `json:"damageText,omitempty"`

	// SpeedText is the weapon speed display line
	SpeedText string `json:"speedText,omitempty"`

	// ArmorText is the armor display line
	ArmorText string `json:"armorText,omitempty"`

	// EquipText is the on-equip effect line
	EquipText string `json:"equipText,omitempty"`

	// UseText is the on-use effect line
	UseText string `json:"useText,omitempty"`

	// Binding is the binding label
	Binding string `json:"binding,omitempty"`

	// DurabilityText is the durability display line
	DurabilityText string `json:"durabilityText,omitempty"`

	// MaxStack is the stack size, 0 when the item does not stack
	MaxStack int `json:"maxStack,omitempty"`

	// VendorSellPrice is the vendor sell price in copper
	VendorSellPrice int64 `json:"vendorSellPrice,omitempty"`
}

// PlaceholderItemInfo returns the fail-soft stand-in used whenever the
// lookup service cannot provide real metadata
func PlaceholderItemInfo(itemID int) *ItemInfo {
	return &ItemInfo{
		ID:      itemID,
		Name:    fmt.Sprintf("Item #%d", itemID),
		Quality: -1,
	}
}
