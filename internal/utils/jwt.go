package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-captioner/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the JWT helpers.
var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrTokenExpired       = errors.New("token is expired")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT that binds a client to a
// server-side session.
//
// Claims:
//   - iss: issuer
//   - sub: the authenticated username
//   - jti: the session ID
//   - iat, exp: now and now + tokenDuration
func GenerateJWTToken(issuer, sessionID, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || sessionID == "" || username == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		SessionID:    sessionID,
		Username:     username,
		ExpiresAt:    time.Unix(expiresAt.Unix(), 0),
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and returns its session binding. Expired tokens yield
// [ErrTokenExpired]; every other failure yields [ErrInvalidToken].
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case err != nil:
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.ID == "" {
		return models.Token{}, fmt.Errorf("%w: missing subject or session id", ErrInvalidToken)
	}

	return models.Token{
		SignedString: tokenString,
		SessionID:    claims.ID,
		Username:     claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
