package store

import (
	"context"

	"github.com/MKhiriev/go-captioner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: it persists users and looks them
// up by username.
type UserRepository interface {
	// CreateUser inserts exactly one row and returns the user with the
	// store-assigned UserID and CreatedAt.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrUserNotFound] when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CaptionRepository persists committed captions. It is append-only.
type CaptionRepository interface {
	SaveEditedCaption(ctx context.Context, caption models.EditedCaption) (models.EditedCaption, error)
	// ListEditedCaptions returns the owner's captions, newest first.
	// A non-positive limit returns all of them.
	ListEditedCaptions(ctx context.Context, owner string, limit int) ([]models.EditedCaption, error)
}

// ErrorClassificator maps driver specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
