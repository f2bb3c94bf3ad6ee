package intake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"checkpoint-server/internal/domain/order"
)

func TestClassify(t *testing.T) {
	classifier := NewRegexClassifier()

	tests := []struct {
		utterance string
		want      Intent
	}{
		{"Como está a VO do site PEACV06?", IntentLookup},
		{"status do site PEACV06", IntentLookup},
		{"STATUS DO SITE peacv06", IntentLookup},
		{"qual o vo do site RJX88?", IntentLookup},
		{"Site PEACV06, DU 12345", IntentSlotFilling},
		{"quero registrar um pedido", IntentSlotFilling},
		{"o motivo foi queda de energia no site", IntentSlotFilling},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.utterance))
		})
	}
}

func TestExtractSite(t *testing.T) {
	tests := []struct {
		utterance string
		want      string
		found     bool
	}{
		{"status do site PEACV06", "PEACV06", true},
		{"Como está a VO do site PEACV06?", "PEACV06", true},
		{"SITE rjx88 por favor", "rjx88", true},
		{"como estão meus pedidos?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got, found := ExtractSite(tt.utterance)
			assert.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRenderSiteReportEmpty(t *testing.T) {
	report := RenderSiteReport("PEACV06", nil)
	assert.Equal(t, "Nenhum pedido encontrado para o site PEACV06.", report)
}

func TestRenderSiteReport(t *testing.T) {
	ref := "VO-99"
	createdAt := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
	orders := []*order.Order{
		{
			Site:          "PEACV06",
			DU:            "12345",
			Projeto:       "XPTO",
			Motivo:        "queda de energia",
			Status:        order.StatusCompleted,
			RequesterName: "Maria",
			ExternalRefID: &ref,
			CreatedAt:     createdAt,
		},
		{
			Site:          "PEACV06",
			DU:            "67890",
			Projeto:       "ALFA",
			Motivo:        "alarme de porta",
			Status:        order.StatusPending,
			RequesterName: "João",
			CreatedAt:     createdAt.Add(-time.Hour),
		},
	}

	report := RenderSiteReport("PEACV06", orders)
	lines := strings.Split(report, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "📦 Pedidos do site PEACV06:", lines[0])

	// completed order shows its glyph and reference id
	assert.Contains(t, lines[1], "1. ✅ VO: VO-99")
	assert.Contains(t, lines[1], "DU: 12345")
	assert.Contains(t, lines[1], "Solicitante: Maria")
	assert.Contains(t, lines[1], "14/03/2025 09:26")

	// unassigned order falls back to the placeholder
	assert.Contains(t, lines[2], "2. ⏳ VO: (aguardando atribuição)")
}
