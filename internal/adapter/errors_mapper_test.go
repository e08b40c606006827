package adapter

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "success", status: http.StatusOK},
		{name: "created", status: http.StatusCreated},
		{name: "json error field", status: http.StatusBadRequest, body: `{"error":"xx is not supported"}`, wantErr: ErrBadRequest, wantMsg: "xx is not supported"},
		{name: "json detail field", status: http.StatusServiceUnavailable, body: `{"detail":"model loading"}`, wantErr: ErrServiceUnavailable, wantMsg: "model loading"},
		{name: "plain text", status: http.StatusTooManyRequests, body: " slow down \n", wantErr: ErrTooManyRequests, wantMsg: "slow down"},
		{name: "empty body uses status text", status: http.StatusBadGateway, wantErr: ErrBadGateway, wantMsg: "Bad Gateway"},
		{name: "unmapped status", status: http.StatusTeapot, body: "short and stout", wantMsg: "http 418: short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := statusError(tt.status, []byte(tt.body))
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestStatusError_TruncatesLongBodies(t *testing.T) {
	err := statusError(http.StatusInternalServerError, []byte(strings.Repeat("x", 4*maxErrorBody)))

	require.True(t, errors.Is(err, ErrInternalServerError))
	assert.LessOrEqual(t, len(err.Error()), len(ErrInternalServerError.Error())+2+maxErrorBody)
}

func TestStatusError_TruncatesOnRuneBoundary(t *testing.T) {
	// "é" is two bytes, so an odd byte cut lands inside a rune
	body := "x" + strings.Repeat("é", maxErrorBody)

	err := statusError(http.StatusBadRequest, []byte(body))

	require.ErrorIs(t, err, ErrBadRequest)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.LessOrEqual(t, len(err.Error()), len(ErrBadRequest.Error())+2+maxErrorBody)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "a", truncate("aé", 2))
	assert.Equal(t, "aé", truncate("aé", 3))
	assert.Equal(t, "", truncate("日本", 2))
}
