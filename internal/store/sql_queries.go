package store

import (
	"fmt"

	"github.com/MKhiriev/go-captioner/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"id", "username", "password_verifier", "email", "role", "created_at"}
	captionColumns = []string{"id", "owner_username", "final_text", "created_at"}
)

// createUserQuery inserts one user. The id is returned by the database;
// created_at is supplied by the caller so both dialects scan the same row.
func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(models.User{}.TableName()).
		Columns("username", "password_verifier", "email", "role", "created_at").
		Values(user.Username, user.PasswordVerifier, user.Email, string(user.Role), user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) findUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) saveEditedCaptionQuery(caption models.EditedCaption) (string, []any, error) {
	query, args, err := db.builder.
		Insert(models.EditedCaption{}.TableName()).
		Columns("owner_username", "final_text", "created_at").
		Values(caption.OwnerUsername, caption.FinalText, caption.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) listEditedCaptionsQuery(owner string, limit int) (string, []any, error) {
	builder := db.builder.
		Select(captionColumns...).
		From(models.EditedCaption{}.TableName()).
		Where(sq.Eq{"owner_username": owner}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
