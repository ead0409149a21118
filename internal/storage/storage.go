package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/kanizsa-users/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by the identity service.
type UserStore interface {
	// CreateUser assigns a fresh ID and stores the user. The email check and
	// insert are atomic.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	UpdateName(ctx context.Context, id, name string) error
}
