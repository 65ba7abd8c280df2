package guildconfig

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/guildboard/blackboard/internal/repositories/guildconfig Repository

import (
	"context"

	"github.com/guildboard/blackboard/internal/models"
)

// Repository defines the interface for per-guild configuration
type Repository interface {
	// GetConfig returns the guild's configuration, with defaults
	// merged in for anything missing
	GetConfig(ctx context.Context, input *GetConfigInput) (*models.GuildConfig, error)

	// SaveConfig persists the guild's configuration
	SaveConfig(ctx context.Context, input *SaveConfigInput) error
}
