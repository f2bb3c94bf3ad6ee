package intake

import (
	"context"

	"checkpoint-server/internal/utils/platformerrors"
)

// TurnResult is what one slot-filling turn produced.
type TurnResult struct {
	// Reply is the next assistant message, empty when the turn finalized.
	Reply string
	// Finalized holds the full field map when the draft completed this turn.
	Finalized *Draft
}

// Policy decides, per user utterance, whether to keep collecting or finalize.
type Policy struct {
	extractor Extractor
}

// NewPolicy constructs a Policy with required dependencies.
func NewPolicy(extractor Extractor) *Policy {
	return &Policy{extractor: extractor}
}

// HandleTurn runs one slot-filling turn. On an Ask outcome the extracted
// fields are merged into the draft and the follow-up question becomes the next
// assistant turn. On Complete the session resets to idle and the finalized
// field map is returned. On an extraction failure the session is returned
// unchanged so the user can re-send.
func (p *Policy) HandleTurn(ctx context.Context, sess Session, utterance string) (Session, TurnResult, error) {
	next := sess.appendTurn(TurnRoleUser, utterance)
	if next.State == StateIdle {
		next.State = StateCollecting
	}

	outcome, err := p.extractor.Extract(ctx, next.History, next.Draft)
	if err != nil {
		return sess, TurnResult{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "field extraction failed")
	}

	switch o := outcome.(type) {
	case Ask:
		next.Draft = next.Draft.Merge(o.Extracted)
		next = next.appendTurn(TurnRoleAssistant, o.Message)
		return next, TurnResult{Reply: o.Message}, nil

	case Complete:
		// Fields from the response take precedence over the draft.
		finalized := next.Draft.Merge(o.Data)
		if !finalized.IsComplete() {
			return sess, TurnResult{}, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeExtraction, "complete response is missing required fields", nil,
				"4b5c6d7e-8f9a-4b0c-1d2e-3f4a5b6c7d8e")
		}
		return next.resetDraft(), TurnResult{Finalized: &finalized}, nil

	default:
		return sess, TurnResult{}, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExtraction, "unknown extraction outcome", nil,
			"9a0b1c2d-3e4f-4a5b-6c7d-8e9f0a1b2c3d")
	}
}
