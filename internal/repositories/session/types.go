package session

type CreateInput struct {
	GuildID         string
	UserID          string
	UserTag         string
	OriginChannelID string
	DMChannelID     string
}

type GetInput struct {
	Key string
}

type FindByDMInput struct {
	DMChannelID string
	UserID      string
}

type DeleteInput struct {
	Key string
}
