package itemcache

import "github.com/guildboard/blackboard/internal/models"

type GetItemInput struct {
	ItemID int
}

type SetItemInput struct {
	Item *models.ItemInfo
}
