package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/utils"
	"github.com/MKhiriev/go-captioner/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, msgSignupFieldsMissing, http.StatusBadRequest)
		case errors.Is(err, service.ErrDuplicateUsername):
			log.Err(err).Msg("username already exists")
			writeMessage(w, msgUsernameTaken, http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, err)
		}
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	writeMessage(w, msgSignupSuccess, http.StatusCreated)
}

// login authenticates the credentials and binds them to a session. A request
// that still carries a live session token re-authenticates that session;
// otherwise a new session is created.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, msgLoginFieldsMissing, http.StatusBadRequest)
		case errors.Is(err, service.ErrAuthenticationFailed):
			log.Err(err).Msg("authentication failed")
			writeMessage(w, msgLoginFailed, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, err)
		}
		return
	}

	sess, release, created := h.loginSession(r)
	defer release()

	token, err := h.services.AuthService.CreateToken(ctx, sess.ID(), user.Username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		if created {
			h.sessions.Delete(sess.ID())
		}
		writeError(w, err)
		return
	}
	sess.Authenticate(user.Username)

	log.Info().
		Str("username", user.Username).
		Str("session_id", sess.ID()).
		Bool("new_session", created).
		Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Username:  user.Username,
		ExpiresAt: token.ExpiresAt,
		Message:   msgLoginSuccess,
	}, http.StatusOK)
}

// loginSession returns the session named by the request's bearer token when
// it is still live, or a fresh one. release is always safe to call.
func (h *Handler) loginSession(r *http.Request) (*session.Session, func(), bool) {
	ctx := r.Context()

	if raw, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		if token, err := h.services.AuthService.ParseToken(ctx, raw); err == nil {
			if sess, release, err := h.sessions.Acquire(ctx, token.SessionID); err == nil {
				return sess, release, false
			}
		}
	}

	return h.sessions.Create(), func() {}, true
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	sess.Logout()
	h.sessions.Delete(sess.ID())

	log.Info().Msg("user logged out")
	writeMessage(w, msgLogoutSuccess, http.StatusOK)
}
