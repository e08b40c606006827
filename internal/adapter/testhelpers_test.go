package adapter

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testAdapterConfig(captionURL, translationURL string) config.Adapter {
	return config.Adapter{
		CaptionURL:         captionURL,
		TranslationURL:     translationURL,
		CaptionTimeout:     2 * time.Second,
		TranslationTimeout: 2 * time.Second,
		FetchTimeout:       2 * time.Second,
		RetryCount:         0,
		MaxImageBytes:      1 << 20,
	}
}
