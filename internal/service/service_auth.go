package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/crypto"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/store"
	"github.com/MKhiriev/go-captioner/internal/utils"
	"github.com/MKhiriev/go-captioner/internal/validators"
	"github.com/MKhiriev/go-captioner/models"
)

// dummyVerifier is checked when the username is unknown so that a miss costs
// about as much as a wrong password.
const dummyVerifier = "$argon2id$v=19$m=19456,t=2,p=1$Y2FwdGlvbmVyLWR1bW15IQ$AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// password verifiers.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks salted password verifiers.
	hasher crypto.PasswordHasher

	// validator checks credentials before the store is touched.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters from
// cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, m *metrics.Metrics, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		metrics:        m,
		logger:         logger,
	}
}

// Register creates a new user account with role "user".
//
// Username, password and email must be non-blank and within the validator's
// length limits; otherwise ErrInvalidInput is returned and the store is not
// touched. The password is replaced by a
// fresh verifier before persistence.
//
// Returns the persisted user or:
//   - ErrInvalidInput if a field is blank or too long.
//   - ErrPasswordHashing if no verifier could be produced.
//   - ErrDuplicateUsername if the username is taken.
//   - A wrapped storage error otherwise.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Warn().Err(err).Str("username", creds.Username).Msg("registration rejected")
		a.metrics.RecordAuth("register", metrics.OutcomeRejected)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	verifier, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("password hashing failed")
		a.metrics.RecordAuth("register", metrics.OutcomeFailed)
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:         creds.Username,
		PasswordVerifier: verifier,
		Email:            creds.Email,
		Role:             models.RoleUser,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("username", creds.Username).Msg("username already taken")
		a.metrics.RecordAuth("register", metrics.OutcomeRejected)
		return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		a.metrics.RecordAuth("register", metrics.OutcomeFailed)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.metrics.RecordAuth("register", metrics.OutcomeOK)
	return registeredUser, nil
}

// Authenticate checks creds against the stored verifier.
//
// A blank username or an empty password is ErrInvalidInput. An unknown
// username and a wrong password both return ErrAuthenticationFailed; the
// reason is only logged. Store failures other
// than "not found" are returned wrapped.
func (a *authService) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		a.metrics.RecordAuth("login", metrics.OutcomeRejected)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(creds.Password, dummyVerifier)
		a.rejectLogin(log, creds.Username, errUserNotFound)
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		a.metrics.RecordAuth("login", metrics.OutcomeFailed)
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, foundUser.PasswordVerifier) {
		a.rejectLogin(log, creds.Username, errWrongPassword)
		return models.User{}, ErrAuthenticationFailed
	}

	a.metrics.RecordAuth("login", metrics.OutcomeOK)
	return foundUser, nil
}

func (a *authService) rejectLogin(log *logger.Logger, username string, reason error) {
	log.Info().Str("username", username).AnErr("reason", reason).Msg("login rejected")
	a.metrics.RecordAuth("login", metrics.OutcomeRejected)
}

// CreateToken issues a signed JWT binding username to sessionID.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, sessionID, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, sessionID, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
