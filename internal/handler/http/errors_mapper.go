package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/store"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrDuplicateUsername, http.StatusConflict},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrGenerationFailed, http.StatusBadGateway},
	{service.ErrFetchFailed, http.StatusBadGateway},
	{service.ErrDecodeFailed, http.StatusUnprocessableEntity},
	{service.ErrPersistFailed, http.StatusInternalServerError},
	{service.ErrPasswordHashing, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{session.ErrNotAuthenticated, http.StatusUnauthorized},
	{session.ErrSessionNotFound, http.StatusUnauthorized},
	{session.ErrSessionExpired, http.StatusUnauthorized},
	{session.ErrNoActiveCaption, http.StatusConflict},
	{session.ErrNothingToCommit, http.StatusConflict},
	{session.ErrCandidateOutOfRange, http.StatusBadRequest},
	{session.ErrNoCandidates, http.StatusBadGateway},

	{utils.ErrInvalidAuthHeader, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrSessionMismatch, http.StatusUnauthorized},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// userMessages replaces the error text of kinds the user can act on.
var userMessages = map[error]string{
	service.ErrGenerationFailed: msgGenerationFailed,
	service.ErrFetchFailed:      msgFetchFailed,
	service.ErrDecodeFailed:     msgDecodeFailed,
}

func statusFromError(err error) int {
	_, status := matchError(err)
	return status
}

func matchError(err error) (error, int) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.err, e.status
		}
	}
	return nil, http.StatusInternalServerError
}

// writeError replies with a MessageResponse. Kinds listed in userMessages
// get their fixed guidance. Other client errors carry the full error text;
// server-side failures only the matched sentinel, so provider and database
// details stay in the log.
func writeError(w http.ResponseWriter, err error) {
	sentinel, status := matchError(err)

	message := err.Error()
	if msg, ok := userMessages[sentinel]; ok {
		message = msg
	} else if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
		if sentinel != nil {
			message = sentinel.Error()
		}
	}
	writeMessage(w, message, status)
}
