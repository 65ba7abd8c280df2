package item

import (
	"github.com/guildboard/blackboard/internal/clients/blizzard"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/itemcache"
	"go.uber.org/zap"
)

// ResolveStatus classifies the outcome of a Resolve call
type ResolveStatus string

const (
	// ResolveStatusResolved means the text resolved to a single item
	ResolveStatusResolved ResolveStatus = "resolved"

	// ResolveStatusCandidates means the user must pick from a list
	ResolveStatusCandidates ResolveStatus = "candidates"

	// ResolveStatusNotFound means the search turned up nothing
	ResolveStatusNotFound ResolveStatus = "not_found"
)

// MaxCandidates caps the candidate list at Discord's select menu limit
const MaxCandidates = 25

// Config holds configuration for the item service
type Config struct {
	// Client is the catalog API client
	Client blizzard.Client

	// Cache is the shared item-metadata cache; optional
	Cache itemcache.Repository

	// L1Size is the in-process LRU size; defaults to 512
	L1Size int

	// Logger
	Logger *zap.Logger
}

type GetItemInfoInput struct {
	ItemID int
}

type GetItemInfoOutput struct {
	// Item is never nil; a placeholder stands in when lookups fail
	Item *models.ItemInfo
}

type ResolveInput struct {
	Query string
}

type ResolveOutput struct {
	Status ResolveStatus

	// ItemID is set when Status is resolved
	ItemID int

	// Candidates is set when Status is candidates, capped at
	// MaxCandidates and deduplicated in first-seen order
	Candidates []*models.ItemCandidate
}
