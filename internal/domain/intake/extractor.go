package intake

import "context"

// Outcome is the structured result of one field-extraction call.
// Exactly one of Ask or Complete implements it.
type Outcome interface {
	isOutcome()
}

// Ask carries a follow-up question plus any fields recognized this turn.
type Ask struct {
	Message   string
	Extracted Draft
}

// Complete carries the full field map once all four fields are resolved.
type Complete struct {
	Data Draft
}

func (Ask) isOutcome()      {}
func (Complete) isOutcome() {}

// Extractor wraps the external natural-language completion capability. Given
// the prior turns of the active draft and a snapshot of which fields are
// already satisfied, it produces an Ask or Complete outcome. It fails with an
// extraction-typed error when the service is unreachable, returns a
// non-success status, or its output cannot be parsed. No state of its own.
type Extractor interface {
	Extract(ctx context.Context, history []Turn, draft Draft) (Outcome, error)
}
