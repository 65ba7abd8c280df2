package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guildboard/blackboard/internal/common/clock"
	"github.com/guildboard/blackboard/internal/common/uuid"
	"github.com/guildboard/blackboard/internal/models"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when no session exists for a key
var ErrSessionNotFound = errors.New("session not found")

const (
	defaultIdleTimeout   = time.Hour
	defaultSweepInterval = 5 * time.Minute
)

// Config holds configuration for the in-memory session registry
type Config struct {
	// Clock for session timestamps and idle expiry
	Clock clock.Clock

	// UUID generator for session instance ids
	UUID uuid.UUID

	// IdleTimeout expires sessions with no activity; defaults to 1h
	IdleTimeout time.Duration

	// SweepInterval is how often expired sessions are collected;
	// defaults to 5m
	SweepInterval time.Duration

	// Logger
	Logger *zap.Logger
}

// memoryRegistry implements Registry with a process-local map. A
// per-key mutex serializes transitions for one session while leaving
// other sessions free to proceed concurrently.
type memoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	locks    map[string]*sync.Mutex

	clock         clock.Clock
	uuid          uuid.UUID
	idleTimeout   time.Duration
	sweepInterval time.Duration
	logger        *zap.Logger

	done    chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup
}

// NewMemory creates a new in-memory session registry
func NewMemory(cfg *Config) (*memoryRegistry, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUID == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}

	sweep := cfg.SweepInterval
	if sweep <= 0 {
		sweep = defaultSweepInterval
	}

	return &memoryRegistry{
		sessions:      make(map[string]*models.Session),
		locks:         make(map[string]*sync.Mutex),
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
		idleTimeout:   idle,
		sweepInterval: sweep,
		logger:        cfg.Logger,
		done:          make(chan struct{}),
	}, nil
}

// Create starts a session, replacing any prior one for the same key
func (r *memoryRegistry) Create(ctx context.Context, input *CreateInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	now := r.clock.Now()
	sess := &models.Session{
		ID:              r.uuid.NewUUID(),
		GuildID:         input.GuildID,
		UserID:          input.UserID,
		OriginChannelID: input.OriginChannelID,
		DMChannelID:     input.DMChannelID,
		MsgIDs:          make(map[models.Field]string),
		Draft: &models.Draft{
			OwnerID:  input.UserID,
			OwnerTag: input.UserTag,
		},
		CreatedAt:    now,
		LastActivity: now,
	}

	r.mu.Lock()
	if _, ok := r.sessions[sess.Key()]; ok {
		r.logger.Info("replacing existing wizard session",
			zap.String("key", sess.Key()))
	}
	r.sessions[sess.Key()] = sess
	r.mu.Unlock()

	return sess, nil
}

// Get returns the session for a key
func (r *memoryRegistry) Get(ctx context.Context, input *GetInput) (*models.Session, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	r.mu.Lock()
	sess := r.sessions[input.Key]
	r.mu.Unlock()

	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// FindByDM locates the session running in a DM channel for a user.
// The registry stays small (one entry per in-flight wizard) so a scan
// is fine.
func (r *memoryRegistry) FindByDM(ctx context.Context, input *FindByDMInput) (*models.Session, error) {
	if input == nil || input.DMChannelID == "" || input.UserID == "" {
		return nil, errors.New("input, DM channel ID and user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sess := range r.sessions {
		if sess.DMChannelID == input.DMChannelID && sess.UserID == input.UserID {
			return sess, nil
		}
	}
	return nil, ErrSessionNotFound
}

// Delete removes a session
func (r *memoryRegistry) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	r.mu.Lock()
	delete(r.sessions, input.Key)
	r.mu.Unlock()

	return nil
}

// Do runs fn under the key's lock
func (r *memoryRegistry) Do(ctx context.Context, key string, fn func(*models.Session) error) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	lk := r.lockFor(key)
	lk.Lock()
	defer lk.Unlock()

	r.mu.Lock()
	sess := r.sessions[key]
	r.mu.Unlock()

	if sess == nil {
		return ErrSessionNotFound
	}

	sess.LastActivity = r.clock.Now()
	return fn(sess)
}

func (r *memoryRegistry) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lk, ok := r.locks[key]
	if !ok {
		lk = &sync.Mutex{}
		r.locks[key] = lk
	}
	return lk
}

// StartSweeper begins collecting idle sessions in the background.
// Call Close to stop it.
func (r *memoryRegistry) StartSweeper() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				r.sweep()
			}
		}
	}()
}

// sweep removes sessions idle longer than the timeout
func (r *memoryRegistry) sweep() {
	cutoff := r.clock.Now().Add(-r.idleTimeout)

	r.mu.Lock()
	defer r.mu.Unlock()

	// Lock entries outlive their sessions: a transition still holding
	// the key's mutex must keep serializing with any successor session
	// for the same key.
	for key, sess := range r.sessions {
		if sess.LastActivity.Before(cutoff) {
			delete(r.sessions, key)
			r.logger.Info("expired idle wizard session",
				zap.String("key", key),
				zap.Time("lastActivity", sess.LastActivity))
		}
	}
}

// Close stops the sweeper
func (r *memoryRegistry) Close() {
	r.stopped.Do(func() {
		close(r.done)
	})
	r.wg.Wait()
}
