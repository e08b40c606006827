// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the per-client state machine: authentication
// (Anonymous or Authenticated) and the active caption cycle
// (none -> generated -> edited -> committed).
//
// Sessions live in memory in a [Registry]. A Session value is not safe for
// concurrent use on its own; the Registry hands it out to one request at a
// time.
package session

import (
	"slices"

	"github.com/MKhiriev/go-captioner/models"
)

// State is the authentication state of a session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the server-side state of one client.
type Session struct {
	id       string
	username string
	caption  models.ActiveCaption
}

func newSession(id string) *Session {
	return &Session{id: id, caption: models.ActiveCaption{State: models.CaptionStateNone}}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns Authenticated once a user logged in and until logout.
func (s *Session) State() State {
	if s.username != "" {
		return Authenticated
	}
	return Anonymous
}

// IsAuthenticated reports whether State is Authenticated.
func (s *Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// Username returns the authenticated username or "" when anonymous.
func (s *Session) Username() string {
	return s.username
}

// Authenticate moves the session to Authenticated(username). Switching to a
// different user drops the active caption.
func (s *Session) Authenticate(username string) {
	if s.username != username {
		s.resetCaption()
	}
	s.username = username
}

// Logout moves the session back to Anonymous and drops the active caption.
func (s *Session) Logout() {
	s.username = ""
	s.resetCaption()
}

// SetGenerated starts a new caption cycle with candidates. The first
// candidate becomes the selection. Any previous cycle, committed or not, is
// replaced.
func (s *Session) SetGenerated(candidates []models.CaptionCandidate) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if len(candidates) == 0 {
		return ErrNoCandidates
	}

	s.caption = models.ActiveCaption{
		State:      models.CaptionStateGenerated,
		Candidates: slices.Clone(candidates),
		Selected:   0,
		Text:       candidates[0].Text,
	}
	return nil
}

// Select makes candidates[index] the caption to edit. Any pending edit is
// discarded and the cycle returns to generated.
func (s *Session) Select(index int) error {
	if err := s.requireCaption(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.caption.Candidates) {
		return ErrCandidateOutOfRange
	}

	s.caption.Selected = index
	s.caption.Text = s.caption.Candidates[index].Text
	s.caption.State = models.CaptionStateGenerated
	return nil
}

// Edit records text as the user's version of the selected caption. Text
// equal to the selection is a legal no-op edit. Editing a committed caption
// starts a new edit of the same candidates.
func (s *Session) Edit(text string) error {
	if err := s.requireCaption(); err != nil {
		return err
	}

	s.caption.Text = text
	s.caption.State = models.CaptionStateEdited
	return nil
}

// MarkCommitted closes the current edit. Only an edited caption can be
// committed.
func (s *Session) MarkCommitted() error {
	if err := s.requireCaption(); err != nil {
		return err
	}
	if s.caption.State != models.CaptionStateEdited {
		return ErrNothingToCommit
	}

	s.caption.State = models.CaptionStateCommitted
	return nil
}

// CaptionState returns the position in the caption cycle.
func (s *Session) CaptionState() models.CaptionState {
	return s.caption.State
}

// Candidates returns a copy of the generated candidates.
func (s *Session) Candidates() []models.CaptionCandidate {
	return slices.Clone(s.caption.Candidates)
}

// ActiveText returns the selected or edited caption text.
func (s *Session) ActiveText() string {
	return s.caption.Text
}

// Active returns a snapshot of the caption cycle.
func (s *Session) Active() models.ActiveCaption {
	snapshot := s.caption
	snapshot.Candidates = slices.Clone(s.caption.Candidates)
	return snapshot
}

func (s *Session) requireCaption() error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if s.caption.State == models.CaptionStateNone {
		return ErrNoActiveCaption
	}
	return nil
}

func (s *Session) resetCaption() {
	s.caption = models.ActiveCaption{State: models.CaptionStateNone}
}
