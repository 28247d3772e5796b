package convo

import (
	"time"

	"SproutAI/app/services/assistant/internal/assistant/extract"
	"SproutAI/app/services/assistant/internal/assistant/recommend"
)

// State is the conversation phase. Clarifying is transient: a side question
// is answered within the turn and the session resumes the phase it was in.
type State string

const (
	StateGreeting    State = "greeting"
	StateCollecting  State = "collecting"
	StateClarifying  State = "clarifying"
	StateReady       State = "ready"
	StateRecommended State = "recommended"
)

// Session is the per-conversation record. One turn mutates at most one
// session, and the engine serializes turns per session id, so fields need
// no locking of their own.
type Session struct {
	ID         string
	State      State
	Constraint recommend.Constraint
	Turn       int
	// PendingSlot is the slot the last prompt asked for, empty in the
	// terminal states.
	PendingSlot recommend.Slot
	// Asked logs prompts in the order they were issued, so a filled slot
	// is never asked again.
	Asked []recommend.Slot
	// LastResult holds the recommendation shown in StateRecommended, so a
	// refinement turn can diff against it.
	LastResult *recommend.Result
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		State:     StateGreeting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// clone copies the session so a turn can work on scratch state and only
// publish it once the turn fully succeeds.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	dup := *s
	dup.Constraint.Intents = append([]string(nil), s.Constraint.Intents...)
	dup.Asked = append([]recommend.Slot(nil), s.Asked...)
	return &dup
}

// markAsked records a prompt, collapsing immediate repeats.
func (s *Session) markAsked(slot recommend.Slot) {
	if n := len(s.Asked); n > 0 && s.Asked[n-1] == slot {
		return
	}
	s.Asked = append(s.Asked, slot)
}

// nextMissing returns the first unfilled required slot in prompt order.
func (s *Session) nextMissing() (recommend.Slot, bool) {
	missing := s.Constraint.MissingSlots()
	if len(missing) == 0 {
		return "", false
	}
	return missing[0], true
}

// TurnReply is what one user message produces: the assistant's message, the
// session phase after the turn, and the recommendation when one was served.
type TurnReply struct {
	SessionID      string
	State          State
	Message        string
	SideIntent     extract.SideIntent
	Missing        []recommend.Slot
	Recommendation *recommend.Result
	// Criteria is the constraint the recommendation was computed from, set
	// only alongside Recommendation.
	Criteria recommend.Constraint
}
