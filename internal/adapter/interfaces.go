// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound collaborators of the captioner: the
// caption model, the translation backend and image acquisition.
//
// Each collaborator is described by an interface so the service layer can be
// tested with mocks. The package ships HTTP implementations built on resty
// ([NewHTTPCaptionProvider], [NewHTTPTranslationProvider],
// [NewHTTPImageFetcher]) and [DecodeImage] for turning fetched or uploaded
// bytes into an RGB image.
//
// Upstream HTTP statuses are mapped by mapHTTPError to the sentinel values in
// errors.go, and every failure additionally wraps its kind
// ([ErrGeneration], [ErrTranslation], [ErrFetch], [ErrDecode]).
package adapter

import (
	"context"
	"image"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CaptionProvider produces a caption for an image.
type CaptionProvider interface {
	// Generate returns one caption for img. With noise disabled the provider
	// is deterministic; with noise enabled every call may return a different
	// caption. Failures wrap [ErrGeneration].
	Generate(ctx context.Context, img image.Image, noise bool) (string, error)
}

// TranslationProvider translates text between two language codes.
type TranslationProvider interface {
	// Translate returns text translated from source into target.
	// Failures wrap [ErrTranslation].
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// ImageFetcher downloads raw image bytes.
type ImageFetcher interface {
	// Fetch downloads the resource at rawURL. Only http and https URLs are
	// accepted. Failures wrap [ErrFetch].
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
