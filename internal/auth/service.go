package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/hongminglow/kanizsa-users/internal/models"
	"github.com/hongminglow/kanizsa-users/internal/storage"
)

const maxEmailLength = 254

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token string
	User  models.User
}

// Service implements registration, login, token authorization and
// profile updates on top of a UserStore.
type Service struct {
	store  storage.UserStore
	hasher *PasswordHasher
	tokens *TokenManager
	log    logrus.FieldLogger
}

// NewService wires the identity service.
func NewService(store storage.UserStore, hasher *PasswordHasher, tokens *TokenManager, log logrus.FieldLogger) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens, log: log}
}

// Register creates an active user with the default role and returns its ID.
func (s *Service) Register(ctx context.Context, email, password, name string) (string, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := validateRegistration(email, password, name); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.WithError(err).Error("hash password")
		return "", ErrInternal
	}

	created, err := s.store.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return "", ErrAlreadyExists
		}
		s.log.WithError(err).Error("create user")
		return "", ErrInternal
	}

	s.log.WithField("user_id", created.ID).Info("user registered")
	return created.ID, nil
}

// Login checks the credentials and issues a session token. Unknown emails
// and wrong passwords fail identically, including the hashing work spent.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.WithError(err).Error("generate token")
		return LoginResult{}, ErrInternal
	}
	return LoginResult{Token: token, User: user}, nil
}

func (s *Service) verifyCredentials(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.hasher.CompareDummy(password)
			return models.User{}, ErrInvalidCredentials
		}
		s.log.WithError(err).Error("fetch user for login")
		return models.User{}, ErrInternal
	}
	if !s.hasher.Compare(user.PasswordHash, password) || !user.IsActive {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Authorize resolves a bearer token to its user. The token is verified
// before any store lookup, and every failure collapses to ErrUnauthorized.
func (s *Service) Authorize(ctx context.Context, token string) (models.User, error) {
	if strings.TrimSpace(token) == "" {
		return models.User{}, ErrUnauthorized
	}
	userID, err := s.tokens.Verify(token)
	if err != nil {
		s.log.WithError(err).Debug("token rejected")
		return models.User{}, ErrUnauthorized
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.WithField("user_id", userID).Debug("token subject not found")
			return models.User{}, ErrUnauthorized
		}
		s.log.WithError(err).Error("fetch user for token")
		return models.User{}, ErrInternal
	}
	if !user.IsActive {
		return models.User{}, ErrUnauthorized
	}
	return user, nil
}

// Profile returns the user with the given ID.
func (s *Service) Profile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		s.log.WithError(err).Error("fetch profile")
		return models.User{}, ErrInternal
	}
	return user, nil
}

// UpdateProfile renames an already authorized user. Nothing but the name
// changes.
func (s *Service) UpdateProfile(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.store.UpdateName(ctx, userID, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		s.log.WithError(err).Error("update profile")
		return ErrInternal
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email, password, name string) error {
	if email == "" || password == "" || name == "" {
		return fmt.Errorf("%w: email, password, and name are required", ErrValidation)
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrValidation)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("%w: email is malformed", ErrValidation)
	}
	if !utf8.ValidString(password) {
		return fmt.Errorf("%w: password must be valid UTF-8", ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}
	return nil
}
