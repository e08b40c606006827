package service

import (
	"image"
	"testing"
	"time"

	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

func newTestSession(t *testing.T, username string) *session.Session {
	t.Helper()
	sess := session.NewRegistry(time.Hour, utils.NewUUIDGenerator()).Create()
	if username != "" {
		sess.Authenticate(username)
	}
	return sess
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}
