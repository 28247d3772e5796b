package convo

import (
	"context"
	"errors"
	"strings"
	"time"

	"SproutAI/app/common/snowflake"
	"SproutAI/app/services/assistant/internal/assistant/catalog"
	"SproutAI/app/services/assistant/internal/assistant/extract"
	"SproutAI/app/services/assistant/internal/assistant/recommend"

	"github.com/zeromicro/go-zero/core/logx"
)

// Engine drives the slot-filling conversation. One HandleTurn call is one
// user message; turns on the same session run strictly one at a time.
type Engine struct {
	sessions  *SessionStore
	extractor extract.Extractor
	catalog   *catalog.Store
	responder *Responder
	limits    recommend.Limits
}

func NewEngine(sessions *SessionStore, extractor extract.Extractor, store *catalog.Store, responder *Responder, limits recommend.Limits) *Engine {
	return &Engine{
		sessions:  sessions,
		extractor: extractor,
		catalog:   store,
		responder: responder,
		limits:    limits,
	}
}

// StartSession creates a fresh session and returns it with the greeting.
func (e *Engine) StartSession(ctx context.Context) *TurnReply {
	session := newSession(snowflake.NextString(), time.Now())
	e.sessions.Put(session)
	return &TurnReply{
		SessionID: session.ID,
		State:     session.State,
		Message:   greetingMessage,
		Missing:   session.Constraint.MissingSlots(),
	}
}

// HandleTurn processes one user message. A blank session id starts a new
// conversation and consumes the message in the same turn.
func (e *Engine) HandleTurn(ctx context.Context, sessionID, text string) (*TurnReply, error) {
	log := logx.WithContext(ctx)

	var session *Session
	if strings.TrimSpace(sessionID) == "" {
		session = newSession(snowflake.NextString(), time.Now())
		e.sessions.Put(session)
		sessionID = session.ID
	}

	unlock := e.sessions.Lock(sessionID)
	defer unlock()

	if session == nil {
		var err error
		session, err = e.sessions.Get(sessionID)
		if err != nil {
			return nil, err
		}
	}

	// Work on a scratch copy; a failed turn must leave the stored session
	// exactly as it was.
	scratch := session.clone()

	reading, err := e.extractor.Extract(ctx, extract.Input{
		Text:   text,
		Known:  scratch.Constraint,
		Filled: filledSlots(scratch.Constraint),
	})
	if err != nil {
		if !errors.Is(err, extract.ErrUnavailable) {
			log.Errorf("extract failed for session %s: %v", sessionID, err)
		}
		return e.retryReply(session), nil
	}

	if reading.Reset {
		fresh := newSession(session.ID, time.Now())
		fresh.State = StateCollecting
		fresh.PendingSlot = recommend.RequiredSlots[0]
		fresh.markAsked(fresh.PendingSlot)
		e.sessions.Put(fresh)
		return &TurnReply{
			SessionID: fresh.ID,
			State:     fresh.State,
			Message:   resetMessage + " " + promptFor(fresh.PendingSlot),
			Missing:   fresh.Constraint.MissingSlots(),
		}, nil
	}

	applied := e.applySlots(log, scratch, reading)

	if reading.Intent != extract.SideIntentNone {
		return e.clarifyingReply(ctx, log, session, scratch, reading, text, applied), nil
	}

	if !applied && scratch.State != StateGreeting && !scratch.Constraint.Complete() {
		// Understood nothing usable: repeat the question, consume no turn.
		return e.retryReply(session), nil
	}

	return e.advance(ctx, log, scratch, applied), nil
}

// Reset discards a session's progress and starts it over under the same id.
func (e *Engine) Reset(ctx context.Context, sessionID string) (*TurnReply, error) {
	unlock := e.sessions.Lock(sessionID)
	defer unlock()

	if _, err := e.sessions.Get(sessionID); err != nil {
		return nil, err
	}
	fresh := newSession(sessionID, time.Now())
	fresh.State = StateCollecting
	fresh.PendingSlot = recommend.RequiredSlots[0]
	fresh.markAsked(fresh.PendingSlot)
	e.sessions.Put(fresh)
	return &TurnReply{
		SessionID: fresh.ID,
		State:     fresh.State,
		Message:   resetMessage + " " + promptFor(fresh.PendingSlot),
		Missing:   fresh.Constraint.MissingSlots(),
	}, nil
}

// advance moves the session forward after slot values were applied, running
// the recommendation synchronously the moment the constraint is complete.
func (e *Engine) advance(ctx context.Context, log logx.Logger, scratch *Session, applied bool) *TurnReply {
	scratch.Turn++
	scratch.UpdatedAt = time.Now()

	if scratch.State == StateRecommended {
		if !applied {
			// Nothing changed: keep the previous result on screen.
			e.sessions.Put(scratch)
			return &TurnReply{
				SessionID:      scratch.ID,
				State:          scratch.State,
				Message:        "Anything you'd like me to adjust? You can change the room, light, or care level.",
				Recommendation: scratch.LastResult,
			}
		}
		return e.recommendReply(ctx, log, scratch)
	}

	if scratch.Constraint.Complete() {
		return e.recommendReply(ctx, log, scratch)
	}

	// Still collecting.
	scratch.State = StateCollecting
	slot, _ := scratch.nextMissing()
	scratch.PendingSlot = slot
	scratch.markAsked(slot)
	e.sessions.Put(scratch)

	message := promptFor(slot)
	if scratch.Turn == 1 {
		message = greetingMessage + " " + message
	}
	return &TurnReply{
		SessionID: scratch.ID,
		State:     scratch.State,
		Message:   message,
		Missing:   scratch.Constraint.MissingSlots(),
	}
}

func (e *Engine) recommendReply(ctx context.Context, log logx.Logger, scratch *Session) *TurnReply {
	scratch.State = StateReady
	scratch.PendingSlot = ""

	snap, err := e.catalog.Current()
	if err != nil {
		log.Errorf("catalog unavailable for session %s: %v", scratch.ID, err)
		e.sessions.Put(scratch)
		return &TurnReply{
			SessionID: scratch.ID,
			State:     scratch.State,
			Message:   "I have everything I need, but the plant catalog is unavailable right now. Please try again in a moment.",
		}
	}

	result, err := recommend.Recommend(snap, scratch.Constraint, e.limits)
	if err != nil {
		log.Errorf("recommend failed for session %s: %v", scratch.ID, err)
		e.sessions.Put(scratch)
		return &TurnReply{
			SessionID: scratch.ID,
			State:     scratch.State,
			Message:   "Something went wrong putting your matches together. Please try again.",
		}
	}

	scratch.State = StateRecommended
	scratch.LastResult = result
	e.sessions.Put(scratch)

	message := e.responder.NoMatchAnswer(ctx)
	if len(result.Plants) > 0 {
		message = e.responder.RecommendationAnswer(ctx, scratch.Constraint, result)
	}
	return &TurnReply{
		SessionID:      scratch.ID,
		State:          scratch.State,
		Message:        message,
		Recommendation: result,
		Criteria:       scratch.Constraint,
	}
}

// clarifyingReply answers a side question without consuming a slot-filling
// turn. Slot values carried in the same utterance still land.
func (e *Engine) clarifyingReply(ctx context.Context, log logx.Logger, stored, scratch *Session, reading *extract.Result, text string, applied bool) *TurnReply {
	answer := e.responder.SideAnswer(ctx, reading.Intent, text)

	if applied {
		scratch.UpdatedAt = time.Now()
		if scratch.State == StateRecommended {
			// The slot change invalidates the shown matches; refresh them now
			// so the stored result never lags behind the stored criteria.
			rec := e.recommendReply(ctx, log, scratch)
			return &TurnReply{
				SessionID:      scratch.ID,
				State:          StateClarifying,
				Message:        answer + " " + rec.Message,
				SideIntent:     reading.Intent,
				Recommendation: rec.Recommendation,
				Criteria:       rec.Criteria,
			}
		}
		e.sessions.Put(scratch)
		stored = scratch
	}

	message := answer
	if slot, ok := stored.nextMissing(); ok && stored.State != StateRecommended {
		message = answer + " Now, back to it: " + promptFor(slot)
	}
	return &TurnReply{
		SessionID:  stored.ID,
		State:      StateClarifying,
		Message:    message,
		SideIntent: reading.Intent,
		Missing:    stored.Constraint.MissingSlots(),
	}
}

// retryReply repeats the pending question verbatim. The stored session is
// untouched, so a failed turn costs the user nothing.
func (e *Engine) retryReply(session *Session) *TurnReply {
	prompt := greetingMessage
	if slot, ok := session.nextMissing(); ok && session.State != StateGreeting {
		prompt = promptFor(slot)
	}
	return &TurnReply{
		SessionID: session.ID,
		State:     session.State,
		Message:   retryNotice + " " + prompt,
		Missing:   session.Constraint.MissingSlots(),
	}
}

func (e *Engine) applySlots(log logx.Logger, scratch *Session, reading *extract.Result) bool {
	applied := false
	for slot, value := range reading.Slots {
		if err := scratch.Constraint.Set(slot, value); err != nil {
			log.Infof("dropping unparseable slot %s=%q: %v", slot, value, err)
			continue
		}
		applied = true
	}
	return applied
}

func filledSlots(c recommend.Constraint) []recommend.Slot {
	var filled []recommend.Slot
	for _, slot := range []recommend.Slot{recommend.SlotRoom, recommend.SlotLight, recommend.SlotExperience, recommend.SlotMaintenance, recommend.SlotHumidity} {
		if c.Filled(slot) {
			filled = append(filled, slot)
		}
	}
	return filled
}
