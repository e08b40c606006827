package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
)

// uploadExtensions are the file extensions accepted for uploaded images.
var uploadExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// DecodeImage decodes JPEG, PNG or GIF data and returns it as an RGBA image
// with an opaque alpha channel, i.e. three usable color channels.
//
// The header is read first: an image wider*taller than maxPixels fails with
// [ErrImageTooLarge] before any pixel is decoded. A non-positive maxPixels
// disables the check. Unknown formats fail with [ErrUnsupportedImageType];
// corrupt data fails with [ErrDecode].
func DecodeImage(data []byte, maxPixels int64) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(err)
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %w: %dx%d exceeds %d pixels",
			ErrDecode, ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(err)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrDecode)
	}

	rgb := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgb, rgb.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(rgb, rgb.Bounds(), src, bounds.Min, draw.Over)

	return rgb, nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %w", ErrDecode, ErrUnsupportedImageType)
	}
	return fmt.Errorf("%w: %w", ErrDecode, err)
}

// CheckUploadName reports whether filename has one of the accepted upload
// extensions (jpg, jpeg, png).
func CheckUploadName(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := uploadExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedImageType, ext)
	}
	return nil
}
