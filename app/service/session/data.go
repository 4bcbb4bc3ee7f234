package session

import (
	"sync"

	"soccerscout/app/service/matcher"
	"soccerscout/app/service/report"
)

// State is the position of one user's conversation in the
// search → disambiguation → confirmation → report flow.
type State int

const (
	Searching State = iota
	ShowingResults
	ConfirmingSelection
	Completed
	Error
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case ShowingResults:
		return "showing_results"
	case ConfirmingSelection:
		return "confirming_selection"
	case Completed:
		return "completed"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Session is the complete isolated state of one user's conversation.
// Callers must hold the lock for the whole turn: the mutex is what serializes
// overlapping messages from the same user.
type Session struct {
	mu sync.Mutex

	State      State
	Candidates []matcher.Candidate
	Selected   *matcher.Candidate
	Report     *report.Data
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Clear returns the session to a fresh Searching state. The caller holds the lock.
func (s *Session) Clear() {
	s.State = Searching
	s.Candidates = nil
	s.Selected = nil
	s.Report = nil
}

// Select picks a candidate and drops any report cached for a previous one.
func (s *Session) Select(candidate matcher.Candidate) {
	if s.Selected == nil || s.Selected.ID != candidate.ID {
		s.Report = nil
	}

	s.Selected = &candidate
	s.State = ConfirmingSelection
}
