// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"image"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/store"
	"github.com/MKhiriev/go-captioner/internal/validators"
	"github.com/MKhiriev/go-captioner/models"
)

// captionFlowService drives the caption cycle of one session at a time. The
// caller must hold the session (see session.Registry.Acquire).
type captionFlowService struct {
	captions     CaptionService
	translations TranslationService
	repository   store.CaptionRepository
	validator    validators.Validator

	sourceLanguage string

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewCaptionFlowService constructs the edit and commit flow. Committed texts
// are translated from sourceLanguage ("auto" detects it per text).
func NewCaptionFlowService(
	captions CaptionService,
	translations TranslationService,
	repository store.CaptionRepository,
	sourceLanguage string,
	m *metrics.Metrics,
	logger *logger.Logger,
) CaptionFlowService {
	return &captionFlowService{
		captions:       captions,
		translations:   translations,
		repository:     repository,
		validator:      validators.NewRequestValidator(),
		sourceLanguage: sourceLanguage,
		metrics:        m,
		logger:         logger,
	}
}

// Generate diversifies img and starts a new cycle with the base candidate
// selected. On failure the session keeps its previous cycle.
func (f *captionFlowService) Generate(ctx context.Context, sess *session.Session, img image.Image) (models.ActiveCaption, error) {
	if !sess.IsAuthenticated() {
		return models.ActiveCaption{}, session.ErrNotAuthenticated
	}

	candidates, err := f.captions.Diversify(ctx, img)
	if err != nil {
		return models.ActiveCaption{}, err
	}
	if err = ctx.Err(); err != nil {
		return models.ActiveCaption{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if err = sess.SetGenerated(candidates); err != nil {
		return models.ActiveCaption{}, err
	}

	logger.FromContext(ctx).Info().
		Int("candidates", len(candidates)).
		Msg("caption cycle started")

	return sess.Active(), nil
}

// Active returns the current cycle of sess.
func (f *captionFlowService) Active(ctx context.Context, sess *session.Session) (models.ActiveCaption, error) {
	if !sess.IsAuthenticated() {
		return models.ActiveCaption{}, session.ErrNotAuthenticated
	}
	return sess.Active(), nil
}

// Select makes the candidate at index the caption to edit.
func (f *captionFlowService) Select(ctx context.Context, sess *session.Session, index int) (models.ActiveCaption, error) {
	if err := sess.Select(index); err != nil {
		return models.ActiveCaption{}, err
	}
	return sess.Active(), nil
}

// Edit records text as the caption to commit. The text may equal the
// selected candidate; a blank or overlong text is ErrInvalidInput.
func (f *captionFlowService) Edit(ctx context.Context, sess *session.Session, text string) (models.ActiveCaption, error) {
	if !sess.IsAuthenticated() {
		return models.ActiveCaption{}, session.ErrNotAuthenticated
	}
	if err := f.validator.Validate(ctx, models.EditCaptionRequest{Text: text}); err != nil {
		return models.ActiveCaption{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := sess.Edit(text); err != nil {
		return models.ActiveCaption{}, err
	}
	return sess.Active(), nil
}

// Commit persists the edited caption as a new EditedCaption owned by the
// session user and translates it into targets.
//
// Only an edited caption can be committed (session.ErrNothingToCommit
// otherwise). Nothing is persisted when ctx is already done. If persistence
// fails the session stays edited and no translation runs. Translation
// failures never fail the commit; they show up as failed results.
func (f *captionFlowService) Commit(ctx context.Context, sess *session.Session, targets []string) (models.CommitResult, error) {
	log := logger.FromContext(ctx)

	if !sess.IsAuthenticated() {
		return models.CommitResult{}, session.ErrNotAuthenticated
	}
	switch sess.CaptionState() {
	case models.CaptionStateNone:
		return models.CommitResult{}, session.ErrNoActiveCaption
	case models.CaptionStateEdited:
	default:
		return models.CommitResult{}, session.ErrNothingToCommit
	}
	if err := ctx.Err(); err != nil {
		return models.CommitResult{}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	text := sess.ActiveText()
	saved, err := f.repository.SaveEditedCaption(ctx, models.EditedCaption{
		OwnerUsername: sess.Username(),
		FinalText:     text,
	})
	if err != nil {
		log.Err(err).Msg("saving edited caption failed")
		return models.CommitResult{}, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	if err = sess.MarkCommitted(); err != nil {
		return models.CommitResult{}, err
	}
	f.metrics.RecordCommit()

	translations := f.translations.Translate(ctx, text, f.sourceLanguage, targets)

	log.Info().
		Int64("caption_id", saved.ID).
		Int("languages", len(translations)).
		Msg("caption committed")

	return models.CommitResult{Caption: saved, Translations: translations}, nil
}

// History lists the captions committed by the session user, newest first.
// A non-positive limit returns all of them.
func (f *captionFlowService) History(ctx context.Context, sess *session.Session, limit int) ([]models.EditedCaption, error) {
	if !sess.IsAuthenticated() {
		return nil, session.ErrNotAuthenticated
	}

	captions, err := f.repository.ListEditedCaptions(ctx, sess.Username(), limit)
	if err != nil {
		return nil, fmt.Errorf("listing edited captions: %w", err)
	}
	return captions, nil
}
