package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     Draft
		incoming Draft
		want     Draft
	}{
		{
			name:     "fills empty fields",
			base:     Draft{},
			incoming: Draft{Site: "PEACV06", DU: "12345"},
			want:     Draft{Site: "PEACV06", DU: "12345"},
		},
		{
			name:     "later value wins per field",
			base:     Draft{Site: "PEACV06", DU: "12345"},
			incoming: Draft{DU: "99999"},
			want:     Draft{Site: "PEACV06", DU: "99999"},
		},
		{
			name:     "empty incoming never unsets",
			base:     Draft{Site: "PEACV06", DU: "12345", Projeto: "XPTO"},
			incoming: Draft{Motivo: "queda de energia"},
			want:     Draft{Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "queda de energia"},
		},
		{
			name:     "sentinel is an ordinary value",
			base:     Draft{Site: "PEACV06"},
			incoming: Draft{DU: NotApplicable},
			want:     Draft{Site: "PEACV06", DU: NotApplicable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Merge(tt.incoming))
		})
	}
}

func TestDraftMergeOrderIndependentCompletion(t *testing.T) {
	// The same fields arriving across turns in any order complete the draft.
	fragments := []Draft{
		{Motivo: "queda de energia"},
		{Site: "PEACV06"},
		{Projeto: "XPTO"},
		{DU: "12345"},
	}

	var forward Draft
	for _, f := range fragments {
		forward = forward.Merge(f)
	}

	var backward Draft
	for i := len(fragments) - 1; i >= 0; i-- {
		backward = backward.Merge(fragments[i])
	}

	assert.True(t, forward.IsComplete())
	assert.Equal(t, forward, backward)
}

func TestDraftMergeIdempotent(t *testing.T) {
	base := Draft{Site: "PEACV06", DU: "12345"}
	once := base.Merge(Draft{Site: "PEACV06"})
	twice := once.Merge(Draft{Site: "PEACV06"})
	assert.Equal(t, once, twice)
}

func TestDraftIsComplete(t *testing.T) {
	assert.False(t, Draft{}.IsComplete())
	assert.False(t, Draft{Site: "A", DU: "B", Projeto: "C"}.IsComplete())
	assert.True(t, Draft{Site: "A", DU: "B", Projeto: "C", Motivo: "D"}.IsComplete())

	// A declined field satisfies the requirement.
	assert.True(t, Draft{Site: "A", DU: NotApplicable, Projeto: "C", Motivo: "D"}.IsComplete())
}

func TestFromMapIgnoresUnknownKeys(t *testing.T) {
	d := FromMap(map[string]string{
		"site":    "PEACV06",
		"du":      "12345",
		"campo":   "ignored",
		"projeto": "XPTO",
	})
	assert.Equal(t, Draft{Site: "PEACV06", DU: "12345", Projeto: "XPTO"}, d)
}
