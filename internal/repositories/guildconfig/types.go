package guildconfig

import "github.com/guildboard/blackboard/internal/models"

type GetConfigInput struct {
	GuildID string
}

type SaveConfigInput struct {
	GuildID string
	Config  *models.GuildConfig
}
