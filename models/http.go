package models

import "time"

// CaptionURLRequest asks the server to caption the image found at URL.
type CaptionURLRequest struct {
	URL string `json:"url"`
}

// SelectCandidateRequest picks one of the generated candidates by its
// position in the candidate list (0 is the base candidate).
type SelectCandidateRequest struct {
	Index int `json:"index"`
}

// EditCaptionRequest carries the user's edited caption text.
// The text may be identical to the selected candidate.
type EditCaptionRequest struct {
	Text string `json:"text"`
}

// CommitCaptionRequest commits the active caption and lists the languages it
// has to be translated into. An empty list commits without translating.
type CommitCaptionRequest struct {
	Languages []string `json:"languages"`
}

// CommitResult is the outcome of a successful commit: the persisted caption
// and one translation result per requested unique language.
type CommitResult struct {
	Caption      EditedCaption       `json:"caption"`
	Translations []TranslationResult `json:"translations"`
}

// LanguagesResponse lists the language codes offered to clients.
type LanguagesResponse struct {
	BaseLanguage string   `json:"base_language"`
	Languages    []string `json:"languages"`
}

// MessageResponse is the body of every non-data reply: confirmations and
// user-correctable errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful login alongside the
// Authorization header.
type LoginResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
	Message   string    `json:"message"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version   string    `json:"version"`
	GoVersion string    `json:"go_version,omitempty"`
	Revision  string    `json:"revision,omitempty"`
	StartedAt time.Time `json:"started_at"`
}
