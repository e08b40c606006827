// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "session", SessionCtxKey.String())
}

func TestGetSessionFromContext(t *testing.T) {
	registry := session.NewRegistry(time.Hour, NewUUIDGenerator())
	sess := registry.Create()

	got, ok := GetSessionFromContext(WithSession(context.Background(), sess))
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = GetSessionFromContext(context.Background())
	assert.False(t, ok, "missing session")

	_, ok = GetSessionFromContext(context.WithValue(context.Background(), SessionCtxKey, "not a session"))
	assert.False(t, ok, "wrong type")

	var nilSession *session.Session
	_, ok = GetSessionFromContext(WithSession(context.Background(), nilSession))
	assert.False(t, ok, "nil session")
}
