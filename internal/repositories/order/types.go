package order

import "github.com/guildboard/blackboard/internal/models"

type LoadOrdersInput struct {
	GuildID string
}

type SaveOrdersInput struct {
	GuildID string
	Orders  []*models.Order
}
