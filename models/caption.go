package models

import "time"

// CaptionCandidate is one caption text produced by the caption model.
// The base candidate comes from the deterministic (noise-free) call; every
// other candidate comes from a noise-perturbed call.
type CaptionCandidate struct {
	Text   string `json:"text"`
	IsBase bool   `json:"is_base"`
}

// CaptionState is the position of a session's active caption in the
// generate -> edit -> commit cycle.
type CaptionState string

const (
	// CaptionStateNone means nothing was generated in the session yet.
	CaptionStateNone CaptionState = "none"
	// CaptionStateGenerated means candidates exist and one of them is selected.
	CaptionStateGenerated CaptionState = "generated"
	// CaptionStateEdited means the user submitted a text for the selected candidate.
	CaptionStateEdited CaptionState = "edited"
	// CaptionStateCommitted means the edited text was persisted and translated.
	CaptionStateCommitted CaptionState = "committed"
)

// EditedCaption is a caption text committed by an authenticated user.
// Records are append-only: every commit creates a new one.
type EditedCaption struct {
	// ID is assigned by the database.
	ID int64 `json:"id"`

	// OwnerUsername is the username of the session that committed the text.
	OwnerUsername string `json:"owner_username"`

	// FinalText is the committed caption.
	FinalText string `json:"final_text"`

	// CreatedAt is the commit time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the EditedCaption model.
func (c EditedCaption) TableName() string {
	return "edited_captions"
}

// ActiveCaption is a snapshot of a session's caption cycle.
// Selected indexes Candidates; Text is the selected candidate's text until
// the user edits it.
type ActiveCaption struct {
	State      CaptionState       `json:"state"`
	Candidates []CaptionCandidate `json:"candidates"`
	Selected   int                `json:"selected"`
	Text       string             `json:"text,omitempty"`
}
