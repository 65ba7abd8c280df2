package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guildboard/blackboard/internal/models"
)

// Config holds configuration for the file-backed order repository
type Config struct {
	// DataDir is the directory holding orders-<guild>.json files
	DataDir string
}

// fileRepository implements the Repository interface using one JSON
// file per guild
type fileRepository struct {
	dataDir string
}

// NewFile creates a new file-backed order repository, creating the data
// directory if needed
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data dir cannot be empty")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &fileRepository{
		dataDir: cfg.DataDir,
	}, nil
}

func (r *fileRepository) fileFor(guildID string) string {
	return filepath.Join(r.dataDir, fmt.Sprintf("orders-%s.json", guildID))
}

// LoadOrders reads the full order collection for a guild. A missing or
// unreadable file yields an empty collection rather than an error.
func (r *fileRepository) LoadOrders(ctx context.Context, input *LoadOrdersInput) ([]*models.Order, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	raw, err := os.ReadFile(r.fileFor(input.GuildID))
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.Order{}, nil
		}
		return nil, fmt.Errorf("failed to read orders file: %w", err)
	}

	var orders []*models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		// Corrupt files behave like missing ones; the next save
		// replaces them wholesale.
		return []*models.Order{}, nil
	}

	for _, o := range orders {
		normalizeOrder(o)
	}

	return orders, nil
}

// SaveOrders writes the full order collection for a guild atomically
// (write to a temp file, then rename over the old one)
func (r *fileRepository) SaveOrders(ctx context.Context, input *SaveOrdersInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	orders := input.Orders
	if orders == nil {
		orders = []*models.Order{}
	}

	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}

	fp := r.fileFor(input.GuildID)
	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write orders file: %w", err)
	}

	if err := os.Rename(tmp, fp); err != nil {
		return fmt.Errorf("failed to replace orders file: %w", err)
	}

	return nil
}

// normalizeOrder fills in fields older file versions did not carry
func normalizeOrder(o *models.Order) {
	if o.TakenBy == nil {
		o.TakenBy = []string{}
	}
}
