package service

import (
	"context"
	"image"

	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/models"
)

// AuthService is the credential store adapter plus session token handling.
type AuthService interface {
	// Register creates a user with a fresh password verifier. The calling
	// session stays Anonymous.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	// Authenticate checks the credentials and returns the stored user.
	// Every credential mismatch is reported as ErrAuthenticationFailed.
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, sessionID, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CaptionService is the caption diversification engine.
type CaptionService interface {
	// Diversify returns the base caption followed by the distinct noisy
	// variants, in attempt order.
	Diversify(ctx context.Context, img image.Image) ([]models.CaptionCandidate, error)
}

// TranslationService is the translation fan-out.
type TranslationService interface {
	// Translate returns one result per unique target, in first-seen order.
	// Per-language failures are reported inside the results.
	Translate(ctx context.Context, text, source string, targets []string) []models.TranslationResult
	// Languages returns the base language and the offered target codes.
	Languages(ctx context.Context) models.LanguagesResponse
}

// ImageService acquires images and decodes them to RGB.
type ImageService interface {
	FromURL(ctx context.Context, rawURL string) (image.Image, error)
	FromUpload(ctx context.Context, filename string, data []byte) (image.Image, error)
}

// CaptionFlowService drives the generate, edit and commit cycle of a
// session. Every method requires an authenticated session and returns
// session.ErrNotAuthenticated otherwise.
type CaptionFlowService interface {
	Generate(ctx context.Context, sess *session.Session, img image.Image) (models.ActiveCaption, error)
	Active(ctx context.Context, sess *session.Session) (models.ActiveCaption, error)
	Select(ctx context.Context, sess *session.Session, index int) (models.ActiveCaption, error)
	Edit(ctx context.Context, sess *session.Session, text string) (models.ActiveCaption, error)
	Commit(ctx context.Context, sess *session.Session, targets []string) (models.CommitResult, error)
	History(ctx context.Context, sess *session.Session, limit int) ([]models.EditedCaption, error)
}

// AppInfoService reports what build of the server is running.
type AppInfoService interface {
	AppInfo(ctx context.Context) models.VersionResponse
}
