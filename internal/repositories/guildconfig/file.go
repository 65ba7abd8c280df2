package guildconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guildboard/blackboard/internal/models"
)

// Config holds configuration for the file-backed guild config repository
type Config struct {
	// DataDir is the directory holding config_<guild>.json files
	DataDir string
}

// fileRepository implements the Repository interface using one JSON
// file per guild
type fileRepository struct {
	dataDir string
}

// NewFile creates a new file-backed guild config repository
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
	return filepath.Join(r.dataDir, fmt.Sprintf("config_%s.json", guildID))
}

// GetConfig reads a guild's config, merging defaults over missing or
// unreadable files
func (r *fileRepository) GetConfig(ctx context.Context, input *GetConfigInput) (*models.GuildConfig, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	cfg := models.DefaultGuildConfig()

	raw, err := os.ReadFile(r.fileFor(input.GuildID))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(raw, cfg); err != nil {
		return models.DefaultGuildConfig(), nil
	}

	if cfg.Lang != "de" && cfg.Lang != "en" {
		cfg.Lang = "en"
	}
	if cfg.ModRoleIDs == nil {
		cfg.ModRoleIDs = []string{}
	}
	if cfg.AllowedChannelIDs == nil {
		cfg.AllowedChannelIDs = []string{}
	}

	return cfg, nil
}

// SaveConfig writes a guild's config atomically
func (r *fileRepository) SaveConfig(ctx context.Context, input *SaveConfigInput) error {
	if input == nil || input.GuildID == "" || input.Config == nil {
		return errors.New("input, guild ID and config cannot be empty")
	}

	raw, err := json.MarshalIndent(input.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fp := r.fileFor(input.GuildID)
	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := os.Rename(tmp, fp); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}
