package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both supported dialects.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser implements [UserRepository].
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByUsername implements [UserRepository].
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, err
	}

	var (
		user models.User
		role string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Username, &user.PasswordVerifier, &user.Email, &role, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	user.Role = models.Role(role)

	return user, nil
}
