// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRouter_HidesUnknownRoutesAndMethods(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/captions/unknown"},
		{name: "DELETE on editable caption", method: http.MethodDelete, target: "/api/captions/active"},
		{name: "GET on commit", method: http.MethodGet, target: "/api/captions/commit"},
		{name: "PUT on version", method: http.MethodPut, target: "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.method, tt.target, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, msgNotFound, decodeMessage(t, rec))
		})
	}
}

func TestRouter_KnownMethodStillServed(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(h, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
