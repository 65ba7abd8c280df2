package guildconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/guildboard/blackboard/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dataDir string
	repo    Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()

	repo, err := NewFile(&Config{DataDir: s.dataDir})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestMissingFileYieldsDefaults() {
	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("en", cfg.Lang)
	s.Empty(cfg.ModRoleIDs)
	s.Empty(cfg.AllowedChannelIDs)
}

func (s *FileRepositoryTestSuite) TestSaveAndGetRoundTrip() {
	ctx := context.Background()

	err := s.repo.SaveConfig(ctx, &SaveConfigInput{
		GuildID: "guild-1",
		Config: &models.GuildConfig{
			Lang:              "de",
			ModRoleIDs:        []string{"role-1"},
			AllowedChannelIDs: []string{"chan-1", "chan-2"},
		},
	})
	s.Require().NoError(err)

	cfg, err := s.repo.GetConfig(ctx, &GetConfigInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("de", cfg.Lang)
	s.Equal([]string{"role-1"}, cfg.ModRoleIDs)
	s.Equal([]string{"chan-1", "chan-2"}, cfg.AllowedChannelIDs)
}

func (s *FileRepositoryTestSuite) TestPartialFileGetsDefaultsMerged() {
	fp := filepath.Join(s.dataDir, "config_guild-1.json")
	s.Require().NoError(os.WriteFile(fp, []byte(`{"lang":"de"}`), 0o644))

	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("de", cfg.Lang)
	s.NotNil(cfg.ModRoleIDs)
	s.NotNil(cfg.AllowedChannelIDs)
}

func (s *FileRepositoryTestSuite) TestUnknownLangFallsBackToEnglish() {
	fp := filepath.Join(s.dataDir, "config_guild-1.json")
	s.Require().NoError(os.WriteFile(fp, []byte(`{"lang":"fr"}`), 0o644))

	cfg, err := s.repo.GetConfig(context.Background(), &GetConfigInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("en", cfg.Lang)
}
