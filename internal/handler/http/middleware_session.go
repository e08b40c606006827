// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

// withSession binds the request to the authenticated session named by its
// bearer token.
//
// The token must be valid, its session must be live and authenticated as the
// token's subject. The session is held for the whole request, so requests of
// one session are served one at a time. Any failure is answered with
// 401 Unauthorized.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Msg("request rejected")
			writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
			return
		}

		raw, err := utils.ParseBearerToken(header)
		if err != nil {
			log.Debug().Err(err).Msg("request rejected")
			writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, raw)
		if err != nil {
			log.Debug().Err(err).Msg("request rejected")
			writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
			return
		}

		sess, release, err := h.sessions.Acquire(ctx, token.SessionID)
		if err != nil {
			if ctx.Err() != nil {
				log.Warn().Err(err).Str("session_id", token.SessionID).Msg("gave up waiting for session")
				writeMessage(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
			log.Debug().Err(err).Str("session_id", token.SessionID).Msg("request rejected")
			writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
			return
		}
		defer release()

		if !sess.IsAuthenticated() || sess.Username() != token.Username {
			log.Warn().Err(ErrSessionMismatch).Str("session_id", sess.ID()).Msg("request rejected")
			writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
			return
		}

		sessionLogger := log.WithSession(sess.ID(), sess.Username())
		ctx = utils.WithSession(sessionLogger.WithContext(ctx), sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
