package extract

import (
	"context"
	"errors"

	"SproutAI/app/services/assistant/internal/assistant/recommend"
)

// ErrUnavailable reports that no extraction path produced a result (the
// model call failed or timed out and pattern matching found nothing to act
// on). Recoverable: the conversation engine re-issues its prompt.
var ErrUnavailable = errors.New("slot extraction unavailable")

// SideIntent tags an utterance that asks a side question instead of (or in
// addition to) supplying slot values.
type SideIntent string

const (
	SideIntentNone          SideIntent = ""
	SideIntentCareQuestion  SideIntent = "care_question"
	SideIntentProductLookup SideIntent = "product_lookup"
)

// Input carries one utterance plus what the conversation already knows, so
// an extractor can avoid re-reporting known values and resolve references
// like "lower than that".
type Input struct {
	Text   string
	Known  recommend.Constraint
	Filled []recommend.Slot
}

// Result is the structured reading of one utterance. Slots holds raw string
// values per newly identified slot; the caller parses them against the slot
// enums and discards what does not parse. Extracting two slots from one
// utterance populates both.
type Result struct {
	Slots  map[recommend.Slot]string
	Intent SideIntent
	Reset  bool
}

// Extractor turns free text into recognized slot values. The call is the
// only blocking operation in the turn pipeline; implementations honor the
// context deadline.
type Extractor interface {
	Extract(ctx context.Context, in Input) (*Result, error)
}
