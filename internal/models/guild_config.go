package models

// GuildConfig is the per-guild configuration
type GuildConfig struct {
	// Lang is the guild language, "en" or "de"
	Lang string `json:"lang"`

	// ModRoleIDs are role ids granting moderator capability
	ModRoleIDs []string `json:"modRoleIds"`

	// AllowedChannelIDs restricts where board commands may be used;
	// empty means everywhere
	AllowedChannelIDs []string `json:"allowedChannelIds"`
}

// DefaultGuildConfig returns the configuration used before a guild has
// run setup
func DefaultGuildConfig() *GuildConfig {
	return &GuildConfig{
		Lang:              "en",
		ModRoleIDs:        []string{},
		AllowedChannelIDs: []string{},
	}
}

// HasModRole reports whether any of the given role ids is configured as
// a moderator role
func (c *GuildConfig) HasModRole(roleIDs []string) bool {
	for _, configured := range c.ModRoleIDs {
		for _, id := range roleIDs {
			if id == configured {
				return true
			}
		}
	}
	return false
}

// ChannelAllowed reports whether board commands may be used in the
// given channel
func (c *GuildConfig) ChannelAllowed(channelID string) bool {
	if len(c.AllowedChannelIDs) == 0 {
		return true
	}
	for _, id := range c.AllowedChannelIDs {
		if id == channelID {
			return true
		}
	}
	return false
}
