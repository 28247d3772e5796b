package extract

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

const defaultLLMTimeout = 6 * time.Second

// CombinedExtractor runs the pattern tables first and lets the model fill
// whatever slots the patterns missed. Pattern hits always win a conflict.
type CombinedExtractor struct {
	log        logx.Logger
	pattern    *PatternExtractor
	llm        Extractor
	llmTimeout time.Duration
}

func NewCombinedExtractor(logger logx.Logger, llm Extractor, llmTimeout time.Duration) *CombinedExtractor {
	if llmTimeout <= 0 {
		llmTimeout = defaultLLMTimeout
	}
	return &CombinedExtractor{
		log:        logger,
		pattern:    NewPatternExtractor(),
		llm:        llm,
		llmTimeout: llmTimeout,
	}
}

func (e *CombinedExtractor) Extract(ctx context.Context, in Input) (*Result, error) {
	base, _ := e.pattern.Extract(ctx, in)
	if base.Reset {
		return base, nil
	}

	if e.llm == nil {
		return base, nil
	}

	llmCtx, cancel := context.WithTimeout(ctx, e.llmTimeout)
	defer cancel()

	extra, err := e.llm.Extract(llmCtx, in)
	if err != nil {
		if len(base.Slots) == 0 && base.Intent == SideIntentNone {
			e.log.Errorf("llm slot extraction failed with nothing from patterns: %v", err)
			return nil, ErrUnavailable
		}
		e.log.Errorf("llm slot extraction failed, keeping pattern result: %v", err)
		return base, nil
	}

	for slot, value := range extra.Slots {
		if _, ok := base.Slots[slot]; !ok {
			base.Slots[slot] = value
		}
	}
	if base.Intent == SideIntentNone {
		base.Intent = extra.Intent
	}
	base.Reset = base.Reset || extra.Reset
	return base, nil
}
