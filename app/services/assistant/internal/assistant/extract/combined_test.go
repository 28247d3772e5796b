package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"SproutAI/app/services/assistant/internal/assistant/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

type stubExtractor struct {
	result *Result
	err    error
	calls  int
}

func (s *stubExtractor) Extract(context.Context, Input) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func newCombined(llm Extractor) *CombinedExtractor {
	return NewCombinedExtractor(logx.WithContext(context.Background()), llm, time.Second)
}

func TestCombinedPatternWinsConflicts(t *testing.T) {
	llm := &stubExtractor{result: &Result{Slots: map[recommend.Slot]string{
		recommend.SlotRoom:  "kitchen",
		recommend.SlotLight: "direct",
	}}}
	e := newCombined(llm)

	result, err := e.Extract(context.Background(), Input{Text: "a plant for my bedroom"})
	require.NoError(t, err)

	// pattern found the room, the model only fills the gap
	assert.Equal(t, "bedroom", result.Slots[recommend.SlotRoom])
	assert.Equal(t, "direct", result.Slots[recommend.SlotLight])
}

func TestCombinedLLMFailureDegradesToPattern(t *testing.T) {
	llm := &stubExtractor{err: errors.New("model down")}
	e := newCombined(llm)

	result, err := e.Extract(context.Background(), Input{Text: "a plant for my bedroom"})
	require.NoError(t, err)
	assert.Equal(t, "bedroom", result.Slots[recommend.SlotRoom])
}

func TestCombinedBothEmptyAndLLMFailed(t *testing.T) {
	llm := &stubExtractor{err: errors.New("model down")}
	e := newCombined(llm)

	_, err := e.Extract(context.Background(), Input{Text: "???"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCombinedResetSkipsLLM(t *testing.T) {
	llm := &stubExtractor{result: &Result{Slots: map[recommend.Slot]string{}}}
	e := newCombined(llm)

	result, err := e.Extract(context.Background(), Input{Text: "please start over"})
	require.NoError(t, err)
	assert.True(t, result.Reset)
	assert.Zero(t, llm.calls)
}

func TestCombinedNoLLMConfigured(t *testing.T) {
	e := newCombined(nil)

	result, err := e.Extract(context.Background(), Input{Text: "a dark office corner"})
	require.NoError(t, err)
	assert.Equal(t, "office", result.Slots[recommend.SlotRoom])
	assert.Equal(t, "low", result.Slots[recommend.SlotLight])
}

func TestCombinedSideIntentFromLLM(t *testing.T) {
	llm := &stubExtractor{result: &Result{
		Slots:  map[recommend.Slot]string{},
		Intent: SideIntentCareQuestion,
	}}
	e := newCombined(llm)

	result, err := e.Extract(context.Background(), Input{Text: "is it normal for stems to lean?"})
	require.NoError(t, err)
	assert.Equal(t, SideIntentCareQuestion, result.Intent)
}
