package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/models"
)

// captionRepository is the SQL implementation of [CaptionRepository] over
// the "edited_captions" table.
type captionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCaptionRepository constructs a [CaptionRepository] backed by db.
func NewCaptionRepository(db *DB, logger *logger.Logger) CaptionRepository {
	logger.Debug().Msg("creating caption repository")
	return &captionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveEditedCaption implements [CaptionRepository]. A caption whose owner
// does not exist fails with [ErrUserNotFound].
func (r *captionRepository) SaveEditedCaption(ctx context.Context, caption models.EditedCaption) (models.EditedCaption, error) {
	log := logger.FromContext(ctx)

	caption.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.saveEditedCaptionQuery(caption)
	if err != nil {
		return models.EditedCaption{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&caption.ID); err != nil {
		log.Err(err).
			Str("func", "*captionRepository.SaveEditedCaption").
			Str("owner", caption.OwnerUsername).
			Msg("error inserting edited caption")

		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.EditedCaption{}, ErrUserNotFound
		}
		return models.EditedCaption{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return caption, nil
}

// ListEditedCaptions implements [CaptionRepository].
func (r *captionRepository) ListEditedCaptions(ctx context.Context, owner string, limit int) ([]models.EditedCaption, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listEditedCaptionsQuery(owner, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*captionRepository.ListEditedCaptions").Msg("error selecting edited captions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	captions := make([]models.EditedCaption, 0)
	for rows.Next() {
		var c models.EditedCaption
		if err := rows.Scan(&c.ID, &c.OwnerUsername, &c.FinalText, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		captions = append(captions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return captions, nil
}
