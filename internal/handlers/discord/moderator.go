package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"go.uber.org/zap"
)

// moderator decides moderator capability from guild state: the guild
// owner, members with the administrator permission, and members holding
// a configured moderator role all qualify. Implements
// order.ModeratorChecker.
type moderator struct {
	session *discordgo.Session
	configs guildconfig.Repository
	logger  *zap.Logger
}

// ModeratorConfig holds configuration for the moderator checker
type ModeratorConfig struct {
	Session      *discordgo.Session
	GuildConfigs guildconfig.Repository
	Logger       *zap.Logger
}

// NewModerator creates the Discord moderator checker
func NewModerator(cfg *ModeratorConfig) (*moderator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.GuildConfigs == nil {
		return nil, errors.New("guild config repository cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &moderator{
		session: cfg.Session,
		configs: cfg.GuildConfigs,
		logger:  cfg.Logger,
	}, nil
}

func (m *moderator) IsModerator(ctx context.Context, guildID, userID string) (bool, error) {
	guild, err := m.guild(guildID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}

	if guild.OwnerID == userID {
		return true, nil
	}

	member, err := m.member(guildID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}

	if m.hasManagePerm(guild, member) {
		return true, nil
	}

	cfg, err := m.configs.GetConfig(ctx, &guildconfig.GetConfigInput{GuildID: guildID})
	if err != nil {
		return false, fmt.Errorf("failed to load guild config: %w", err)
	}

	return cfg.HasModRole(member.Roles), nil
}

func (m *moderator) guild(guildID string) (*discordgo.Guild, error) {
	if guild, err := m.session.State.Guild(guildID); err == nil {
		return guild, nil
	}
	return m.session.Guild(guildID)
}

func (m *moderator) member(guildID, userID string) (*discordgo.Member, error) {
	if member, err := m.session.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return m.session.GuildMember(guildID, userID)
}

// hasManagePerm reports whether any of the member's roles carries the
// manage-guild or administrator permission
func (m *moderator) hasManagePerm(guild *discordgo.Guild, member *discordgo.Member) bool {
	perms := make(map[string]int64, len(guild.Roles))
	for _, role := range guild.Roles {
		perms[role.ID] = role.Permissions
	}

	const managing = discordgo.PermissionManageServer | discordgo.PermissionAdministrator
	for _, roleID := range member.Roles {
		if perms[roleID]&managing != 0 {
			return true
		}
	}
	return false
}
