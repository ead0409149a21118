package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hongminglow/kanizsa-users/internal/models"
	"github.com/hongminglow/kanizsa-users/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store keeps users in process memory. Contents are lost on shutdown.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
	seq     uint64
	now     func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewUserStore creates an empty Store.
func NewUserStore(opts ...Option) *Store {
	s := &Store{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close drops every record.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byEmail = make(map[string]*models.User)
	s.byID = make(map[string]*models.User)
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// CreateUser inserts a new user. ID and CreatedAt are assigned by the store;
// IDs come from a counter that is never rewound.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}

	s.seq++
	record := clone(user)
	record.ID = fmt.Sprintf("u%d", s.seq)
	record.CreatedAt = s.now().UTC()

	s.byEmail[record.Email] = &record
	s.byID[record.ID] = &record
	return clone(record), nil
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return clone(*user), nil
}

// FindByID fetches a user by identifier.
func (s *Store) FindByID(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return clone(*user), nil
}

// UpdateName replaces the display name of the user with the given ID.
func (s *Store) UpdateName(ctx context.Context, id, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return storage.ErrNotFound
	}
	// byEmail and byID share the pointer.
	user.Name = name
	return nil
}

func clone(u models.User) models.User {
	if u.PasswordHash != nil {
		u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	}
	return u
}
