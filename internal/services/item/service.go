package item

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/guildboard/blackboard/internal/clients/blizzard"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/itemcache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultL1Size = 512

var numericPattern = regexp.MustCompile(`^\d+$`)

// service implements the Service interface
type service struct {
	client blizzard.Client
	cache  itemcache.Repository
	l1     *lru.Cache[int, *models.ItemInfo]
	group  singleflight.Group
	logger *zap.Logger
}

// New creates a new item service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("catalog client cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	size := cfg.L1Size
	if size <= 0 {
		size = defaultL1Size
	}

	l1, err := lru.New[int, *models.ItemInfo](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create item cache: %w", err)
	}

	return &service{
		client: cfg.Client,
		cache:  cfg.Cache,
		l1:     l1,
		logger: cfg.Logger,
	}, nil
}

// GetItemInfo returns metadata for an item, consulting the in-process
// LRU, then the shared cache, then the catalog API. Concurrent lookups
// of the same id collapse into one API call.
func (s *service) GetItemInfo(ctx context.Context, input *GetItemInfoInput) (*GetItemInfoOutput, error) {
	if input == nil || input.ItemID <= 0 {
		return nil, errors.New("input and item ID cannot be empty")
	}

	if info, ok := s.l1.Get(input.ItemID); ok {
		return &GetItemInfoOutput{Item: info}, nil
	}

	v, err, _ := s.group.Do(strconv.Itoa(input.ItemID), func() (any, error) {
		return s.lookup(ctx, input.ItemID), nil
	})
	if err != nil {
		// The lookup closure never errors; fail soft anyway.
		return &GetItemInfoOutput{Item: models.PlaceholderItemInfo(input.ItemID)}, nil
	}

	return &GetItemInfoOutput{Item: v.(*models.ItemInfo)}, nil
}

// lookup resolves metadata from the shared cache or the API; it always
// returns a usable ItemInfo
func (s *service) lookup(ctx context.Context, itemID int) *models.ItemInfo {
	if s.cache != nil {
		cached, err := s.cache.GetItem(ctx, &itemcache.GetItemInput{ItemID: itemID})
		if err == nil {
			s.l1.Add(itemID, cached)
			return cached
		}
		if !errors.Is(err, itemcache.ErrItemNotCached) {
			s.logger.Warn("item cache read failed",
				zap.Int("itemId", itemID),
				zap.Error(err))
		}
	}

	info, err := s.client.GetItem(ctx, itemID)
	if err != nil {
		s.logger.Warn("item lookup failed, using placeholder",
			zap.Int("itemId", itemID),
			zap.Error(err))
		return models.PlaceholderItemInfo(itemID)
	}

	s.l1.Add(itemID, info)
	if s.cache != nil {
		if err := s.cache.SetItem(ctx, &itemcache.SetItemInput{Item: info}); err != nil {
			s.logger.Warn("item cache write failed",
				zap.Int("itemId", itemID),
				zap.Error(err))
		}
	}

	return info
}

// Resolve turns free text into an item id or a candidate list
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &ResolveOutput{Status: ResolveStatusNotFound}, nil
	}

	// Well-formed ids skip the remote search entirely
	if numericPattern.MatchString(query) {
		id, err := strconv.Atoi(query)
		if err != nil || id <= 0 {
			return &ResolveOutput{Status: ResolveStatusNotFound}, nil
		}
		return &ResolveOutput{Status: ResolveStatusResolved, ItemID: id}, nil
	}

	hits, err := s.client.SearchItems(ctx, query)
	if err != nil {
		// A flaky catalog must never abort the wizard
		s.logger.Warn("item search failed",
			zap.String("query", query),
			zap.Error(err))
		return &ResolveOutput{Status: ResolveStatusNotFound}, nil
	}

	candidates := dedupeCandidates(hits)
	switch len(candidates) {
	case 0:
		return &ResolveOutput{Status: ResolveStatusNotFound}, nil
	case 1:
		return &ResolveOutput{Status: ResolveStatusResolved, ItemID: candidates[0].ID}, nil
	default:
		if len(candidates) > MaxCandidates {
			candidates = candidates[:MaxCandidates]
		}
		return &ResolveOutput{Status: ResolveStatusCandidates, Candidates: candidates}, nil
	}
}

// dedupeCandidates removes duplicate ids, keeping first-seen order
func dedupeCandidates(hits []*models.ItemCandidate) []*models.ItemCandidate {
	seen := make(map[int]struct{}, len(hits))
	out := make([]*models.ItemCandidate, 0, len(hits))
	for _, hit := range hits {
		if hit == nil || hit.ID <= 0 {
			continue
		}
		if _, ok := seen[hit.ID]; ok {
			continue
		}
		seen[hit.ID] = struct{}{}
		out = append(out, hit)
	}
	return out
}
