package session

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/guildboard/blackboard/internal/common/clock/mocks"
	uuidMocks "github.com/guildboard/blackboard/internal/common/uuid/mocks"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MemoryRegistryTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	registry  *memoryRegistry
	ctx       context.Context

	testTime time.Time
}

func (s *MemoryRegistryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-session-id").AnyTimes()

	registry, err := NewMemory(&Config{
		Clock:  s.mockClock,
		UUID:   s.mockUUID,
		Logger: zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.registry = registry
}

func TestMemoryRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRegistryTestSuite))
}

func (s *MemoryRegistryTestSuite) create(guildID, userID string) *models.Session {
	sess, err := s.registry.Create(s.ctx, &CreateInput{
		GuildID:         guildID,
		UserID:          userID,
		UserTag:         "tester",
		OriginChannelID: "origin-1",
		DMChannelID:     "dm-" + userID,
	})
	s.Require().NoError(err)
	return sess
}

func (s *MemoryRegistryTestSuite) TestCreateAndGet() {
	created := s.create("guild-1", "user-1")
	s.Equal("test-session-id", created.ID)
	s.Equal("guild-1~user-1", created.Key())
	s.NotNil(created.Draft)
	s.Equal("user-1", created.Draft.OwnerID)

	got, err := s.registry.Get(s.ctx, &GetInput{Key: created.Key()})
	s.Require().NoError(err)
	s.Same(created, got)
}

func (s *MemoryRegistryTestSuite) TestCreateReplacesExisting() {
	first := s.create("guild-1", "user-1")
	first.Draft.Title = "old run"

	second := s.create("guild-1", "user-1")

	got, err := s.registry.Get(s.ctx, &GetInput{Key: second.Key()})
	s.Require().NoError(err)
	s.Same(second, got)
	s.Empty(got.Draft.Title)
}

func (s *MemoryRegistryTestSuite) TestGetMissingReturnsNotFound() {
	_, err := s.registry.Get(s.ctx, &GetInput{Key: "guild-1~user-1"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRegistryTestSuite) TestFindByDM() {
	created := s.create("guild-1", "user-1")
	s.create("guild-1", "user-2")

	found, err := s.registry.FindByDM(s.ctx, &FindByDMInput{
		DMChannelID: "dm-user-1",
		UserID:      "user-1",
	})
	s.Require().NoError(err)
	s.Same(created, found)

	_, err = s.registry.FindByDM(s.ctx, &FindByDMInput{
		DMChannelID: "dm-user-1",
		UserID:      "user-2",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRegistryTestSuite) TestDeleteThenStaleAccess() {
	created := s.create("guild-1", "user-1")

	s.Require().NoError(s.registry.Delete(s.ctx, &DeleteInput{Key: created.Key()}))

	err := s.registry.Do(s.ctx, created.Key(), func(*models.Session) error {
		s.Fail("fn must not run for a deleted session")
		return nil
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	// Deleting again is not an error
	s.Require().NoError(s.registry.Delete(s.ctx, &DeleteInput{Key: created.Key()}))
}

// One user can run a wizard in several guilds at once; they all share
// the user's single DM channel, so lookup by key must stay guild-aware
func (s *MemoryRegistryTestSuite) TestGetSeparatesGuildsSharingDM() {
	alpha := s.create("guild-a", "user-1")
	beta := s.create("guild-b", "user-1")
	s.Equal(alpha.DMChannelID, beta.DMChannelID)

	got, err := s.registry.Get(s.ctx, &GetInput{Key: "guild-a~user-1"})
	s.Require().NoError(err)
	s.Same(alpha, got)

	got, err = s.registry.Get(s.ctx, &GetInput{Key: "guild-b~user-1"})
	s.Require().NoError(err)
	s.Same(beta, got)
}

func (s *MemoryRegistryTestSuite) TestDoSerializesPerKey() {
	created := s.create("guild-1", "user-1")

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := s.registry.Do(s.ctx, created.Key(), func(sess *models.Session) error {
				// Unsynchronized read-modify-write; only safe if Do
				// serializes callers.
				v := sess.Draft.ItemID
				sess.Draft.ItemID = v + 1
				return nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(workers, created.Draft.ItemID)
}

func (s *MemoryRegistryTestSuite) TestSweepKeepsLockEntries() {
	created := s.create("guild-1", "user-1")
	lk := s.registry.lockFor(created.Key())

	created.LastActivity = s.testTime.Add(-2 * time.Hour)
	s.registry.sweep()

	_, err := s.registry.Get(s.ctx, &GetInput{Key: created.Key()})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	// A successor session for the same key serializes with anyone
	// still holding the pre-sweep lock
	s.Same(lk, s.registry.lockFor(created.Key()))

	lk.Lock()
	second := s.create("guild-1", "user-1")
	done := make(chan error, 1)
	go func() {
		done <- s.registry.Do(s.ctx, second.Key(), func(*models.Session) error { return nil })
	}()
	select {
	case <-done:
		s.Fail("Do must wait for the held lock")
	case <-time.After(50 * time.Millisecond):
	}
	lk.Unlock()
	s.Require().NoError(<-done)
}

func (s *MemoryRegistryTestSuite) TestSweeperExpiresIdleSessions() {
	mockCtrl := gomock.NewController(s.T())
	clk := clockMocks.NewMockClock(mockCtrl)
	uid := uuidMocks.NewMockUUID(mockCtrl)
	uid.EXPECT().NewUUID().Return("sweep-session-id").AnyTimes()

	start := s.testTime
	clk.EXPECT().Now().Return(start).Times(1) // Create
	// Sweeps observe a time past the idle timeout
	clk.EXPECT().Now().Return(start.Add(2 * time.Hour)).AnyTimes()

	registry, err := NewMemory(&Config{
		Clock:         clk,
		UUID:          uid,
		IdleTimeout:   time.Hour,
		SweepInterval: 10 * time.Millisecond,
		Logger:        zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)

	sess, err := registry.Create(s.ctx, &CreateInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	})
	s.Require().NoError(err)

	registry.StartSweeper()
	defer registry.Close()

	s.Require().Eventually(func() bool {
		_, err := registry.Get(s.ctx, &GetInput{Key: sess.Key()})
		return err != nil
	}, time.Second, 10*time.Millisecond)
}
