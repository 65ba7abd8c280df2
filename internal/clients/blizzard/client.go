package blizzard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/guildboard/blackboard/internal/common/clock"
	"github.com/guildboard/blackboard/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultOAuthURL = "https://oauth.battle.net/token"
	defaultTimeout  = 10 * time.Second

	// tokenSlack refreshes the token a little before it expires
	tokenSlack = 30 * time.Second
)

// ErrNoCredentials is returned when the client has no API credentials
var ErrNoCredentials = errors.New("no Battle.net credentials configured")

// qualityTiers maps API quality types to the 0..7 tier used for colors
var qualityTiers = map[string]int{
	"POOR":      0,
	"COMMON":    1,
	"UNCOMMON":  2,
	"RARE":      3,
	"EPIC":      4,
	"LEGENDARY": 5,
	"ARTIFACT":  6,
	"HEIRLOOM":  7,
}

// Config holds configuration for the Battle.net client
type Config struct {
	// ClientID and ClientSecret are the OAuth client credentials
	ClientID     string
	ClientSecret string

	// Region, e.g. "eu" or "us"
	Region string

	// Locale, e.g. "de_DE"
	Locale string

	// StaticNamespace overrides the default static-classic-<region>
	StaticNamespace string

	// OAuthURL and APIBaseURL override the Battle.net endpoints,
	// mainly for tests
	OAuthURL   string
	APIBaseURL string

	// HTTPClient defaults to one with a 10s timeout
	HTTPClient *http.Client

	// Clock for token expiry tracking
	Clock clock.Clock

	// Logger
	Logger *zap.Logger
}

// client implements the Client interface against the Battle.net API
type client struct {
	clientID     string
	clientSecret string
	region       string
	locale       string
	staticNS     string
	oauthURL     string
	apiBaseURL   string
	httpClient   *http.Client
	clock        clock.Clock
	logger       *zap.Logger

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

// New creates a new Battle.net client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	region := cfg.Region
	if region == "" {
		region = "eu"
	}

	locale := cfg.Locale
	if locale == "" {
		locale = "en_US"
	}

	staticNS := cfg.StaticNamespace
	if staticNS == "" {
		staticNS = fmt.Sprintf("static-classic-%s", region)
	}

	oauthURL := cfg.OAuthURL
	if oauthURL == "" {
		oauthURL = defaultOAuthURL
	}

	apiBaseURL := cfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = fmt.Sprintf("https://%s.api.blizzard.com", region)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		region:       region,
		locale:       locale,
		staticNS:     staticNS,
		oauthURL:     oauthURL,
		apiBaseURL:   apiBaseURL,
		httpClient:   httpClient,
		clock:        cfg.Clock,
		logger:       cfg.Logger,
	}, nil
}

// getToken returns a cached OAuth token, refreshing it when close to
// expiry
func (c *client) getToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrNoCredentials
	}

	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	now := c.clock.Now()
	if c.token != "" && now.Before(c.tokenExpiry.Add(-tokenSlack)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.token = tok.AccessToken
	c.tokenExpiry = now.Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.token, nil
}

func (c *client) getJSON(ctx context.Context, token, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetItem fetches item metadata and media in parallel
func (c *client) GetItem(ctx context.Context, itemID int) (*models.ItemInfo, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	itemURL := fmt.Sprintf("%s/data/wow/item/%d?namespace=%s&locale=%s",
		c.apiBaseURL, itemID, url.QueryEscape(c.staticNS), url.QueryEscape(c.locale))
	mediaURL := fmt.Sprintf("%s/data/wow/media/item/%d?namespace=%s&locale=%s",
		c.apiBaseURL, itemID, url.QueryEscape(c.staticNS), url.QueryEscape(c.locale))

	var item itemResponse
	var media mediaResponse
	var mediaErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, token, itemURL, &item)
	})
	g.Go(func() error {
		// Missing media only costs the icon
		mediaErr = c.getJSON(gctx, token, mediaURL, &media)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("item lookup failed: %w", err)
	}
	if mediaErr != nil {
		c.logger.Debug("item media lookup failed",
			zap.Int("itemId", itemID),
			zap.Error(mediaErr))
	}

	return c.buildItemInfo(itemID, &item, &media), nil
}

func (c *client) buildItemInfo(itemID int, item *itemResponse, media *mediaResponse) *models.ItemInfo {
	info := &models.ItemInfo{
		ID:              itemID,
		Name:            item.Name,
		Quality:         -1,
		ItemLevel:       item.Level,
		ReqLevel:        item.RequiredLevel,
		MaxStack:        item.MaxStackSize,
		VendorSellPrice: item.SellPrice,
	}
	if info.Name == "" {
		info.Name = fmt.Sprintf("Item #%d", itemID)
	}

	quality := item.Quality
	if quality == nil && item.PreviewItem != nil {
		quality = item.PreviewItem.Quality
	}
	if quality != nil {
		info.QualityName = quality.Name
		if tier, ok := qualityTiers[quality.Type]; ok {
			info.Quality = tier
		}
	}

	if item.ItemClass != nil {
		info.Class = item.ItemClass.Name
	}
	if item.ItemSubclass != nil {
		info.Subclass = item.ItemSubclass.Name
	}
	if item.InventoryType != nil {
		info.InventoryType = item.InventoryType.Name
	}

	for _, asset := range media.Assets {
		if asset.Key == "icon" {
			info.IconURL = asset.Value
			break
		}
	}

	preview := item.PreviewItem
	if preview == nil {
		return info
	}

	if preview.Binding != nil {
		info.Binding = preview.Binding.Name
	}
	if preview.Durability != nil {
		info.DurabilityText = preview.Durability.DisplayString
	}
	if preview.Requirements != nil && preview.Requirements.Level != nil {
		info.ReqLevel = preview.Requirements.Level.Value
	}
	if preview.Weapon != nil {
		if preview.Weapon.Damage != nil {
			info.DamageText = preview.Weapon.Damage.DisplayString
		}
		if preview.Weapon.AttackSpeed != nil {
			info.SpeedText = preview.Weapon.AttackSpeed.DisplayString
		}
	}
	if preview.Armor != nil && preview.Armor.Display != nil {
		info.ArmorText = preview.Armor.Display.DisplayString
	}

	for _, stat := range preview.Stats {
		if stat.Display != nil && stat.Display.DisplayString != "" {
			info.Stats = append(info.Stats, stat.Display.DisplayString)
		}
	}

	for _, spell := range preview.Spells {
		switch {
		case strings.HasPrefix(spell.Description, "Equip:"), strings.HasPrefix(spell.Description, "Anlegen:"):
			if info.EquipText == "" {
				info.EquipText = spell.Description
			}
		case strings.HasPrefix(spell.Description, "Use:"), strings.HasPrefix(spell.Description, "Benutzen:"):
			if info.UseText == "" {
				info.UseText = spell.Description
			}
		}
	}

	return info
}

// SearchItems searches the catalog by localized item name
func (c *client) SearchItems(ctx context.Context, query string) ([]*models.ItemCandidate, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	// Classic namespace first, retail second; the first namespace
	// with hits wins.
	namespaces := []string{c.staticNS, fmt.Sprintf("static-%s", c.region)}

	for _, ns := range namespaces {
		searchURL := fmt.Sprintf("%s/data/wow/search/item?namespace=%s&name.%s=%s&_page=1&_pageSize=10&orderby=id",
			c.apiBaseURL, url.QueryEscape(ns), url.QueryEscape(c.locale), url.QueryEscape(query))

		var sr searchResponse
		if err := c.getJSON(ctx, token, searchURL, &sr); err != nil {
			c.logger.Debug("item search failed for namespace",
				zap.String("namespace", ns),
				zap.Error(err))
			continue
		}

		if len(sr.Results) == 0 {
			continue
		}

		candidates := make([]*models.ItemCandidate, 0, len(sr.Results))
		for _, hit := range sr.Results {
			if hit.Data.ID <= 0 {
				continue
			}
			name := fmt.Sprintf("Item #%d", hit.Data.ID)
			if info, err := c.GetItem(ctx, hit.Data.ID); err == nil {
				name = info.Name
			}
			candidates = append(candidates, &models.ItemCandidate{
				ID:   hit.Data.ID,
				Name: name,
			})
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	return []*models.ItemCandidate{}, nil
}
