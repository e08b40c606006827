package models

// TranslationStatus reports whether a single target language was translated.
type TranslationStatus string

const (
	TranslationOK     TranslationStatus = "ok"
	TranslationFailed TranslationStatus = "failed"
)

// TranslationResult is the outcome of translating one text into one target
// language. Results for different languages are independent of each other.
type TranslationResult struct {
	// LanguageCode is the requested target language code (e.g. "fr", "zh-cn").
	LanguageCode string `json:"language_code"`

	// Text is the translation on success. On failure it carries the
	// untranslated source text so callers always have something to show.
	Text string `json:"text"`

	// Status is TranslationOK or TranslationFailed.
	Status TranslationStatus `json:"status"`
}

// OK reports whether the translation succeeded.
func (r TranslationResult) OK() bool {
	return r.Status == TranslationOK
}
