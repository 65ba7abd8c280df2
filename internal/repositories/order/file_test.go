package order

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guildboard/blackboard/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dataDir string
	repo    Repository
	testNow time.Time
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()

	repo, err := NewFile(&Config{
		DataDir: s.dataDir,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) testOrder(id int) *models.Order {
	qty := 20
	reward := 50
	return &models.Order{
		ID:             id,
		GuildID:        "guild-1",
		Kind:           models.OrderKindBuy,
		Title:          "ANKAUF: Iron Ore",
		ItemID:         2770,
		QuantityMode:   models.QuantityModeItems,
		Quantity:       &qty,
		Mode:           models.AssignModeMulti,
		Scope:          models.ScopePersonal,
		RewardType:     models.RewardTypeGold,
		RewardQuantity: &reward,
		RewardPer:      models.RewardPerItem,
		OwnerID:        "user-1",
		OwnerTag:       "tester",
		TakenBy:        []string{},
		CreatedAt:      s.testNow,
		UpdatedAt:      s.testNow,
	}
}

func (s *FileRepositoryTestSuite) TestLoadMissingFileReturnsEmpty() {
	orders, err := s.repo.LoadOrders(context.Background(), &LoadOrdersInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *FileRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	saved := []*models.Order{s.testOrder(1), s.testOrder(2)}

	err := s.repo.SaveOrders(context.Background(), &SaveOrdersInput{
		GuildID: "guild-1",
		Orders:  saved,
	})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadOrders(context.Background(), &LoadOrdersInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().Len(loaded, 2)
	s.Equal(saved[0].Title, loaded[0].Title)
	s.Equal(saved[0].ItemID, loaded[0].ItemID)
	s.Require().NotNil(loaded[0].Quantity)
	s.Equal(20, *loaded[0].Quantity)
	s.Equal(saved[1].ID, loaded[1].ID)
}

func (s *FileRepositoryTestSuite) TestGuildsAreIsolated() {
	err := s.repo.SaveOrders(context.Background(), &SaveOrdersInput{
		GuildID: "guild-1",
		Orders:  []*models.Order{s.testOrder(1)},
	})
	s.Require().NoError(err)

	other, err := s.repo.LoadOrders(context.Background(), &LoadOrdersInput{
		GuildID: "guild-2",
	})
	s.Require().NoError(err)
	s.Empty(other)
}

func (s *FileRepositoryTestSuite) TestSaveReplacesCollection() {
	ctx := context.Background()

	err := s.repo.SaveOrders(ctx, &SaveOrdersInput{
		GuildID: "guild-1",
		Orders:  []*models.Order{s.testOrder(1), s.testOrder(2)},
	})
	s.Require().NoError(err)

	// Whole-collection write: saving a shorter list drops the rest
	err = s.repo.SaveOrders(ctx, &SaveOrdersInput{
		GuildID: "guild-1",
		Orders:  []*models.Order{s.testOrder(3)},
	})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadOrders(ctx, &LoadOrdersInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(loaded, 1)
	s.Equal(3, loaded[0].ID)
}

func (s *FileRepositoryTestSuite) TestCorruptFileBehavesLikeMissing() {
	fp := filepath.Join(s.dataDir, "orders-guild-1.json")
	s.Require().NoError(os.WriteFile(fp, []byte("{not json"), 0o644))

	orders, err := s.repo.LoadOrders(context.Background(), &LoadOrdersInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *FileRepositoryTestSuite) TestLegacyOrdersAreNormalized() {
	// Older files carried no takenBy array
	fp := filepath.Join(s.dataDir, "orders-guild-1.json")
	legacy := `[{"id":1,"type":"buy","title":"ANKAUF: Linen","wowItemId":2589,"quantityMode":"items","quantity":5,"ownerId":"user-1"}]`
	s.Require().NoError(os.WriteFile(fp, []byte(legacy), 0o644))

	orders, err := s.repo.LoadOrders(context.Background(), &LoadOrdersInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.NotNil(orders[0].TakenBy)
	s.False(orders[0].Closed)
}
