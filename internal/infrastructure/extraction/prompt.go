package extraction

import (
	"fmt"
	"strings"

	"checkpoint-server/internal/domain/intake"
)

// buildSystemPrompt renders the extraction instructions plus a snapshot of
// which fields the active draft already satisfies. The prompt is Portuguese
// because that is the language the field teams operate in.
func buildSystemPrompt(draft intake.Draft) string {
	var snapshot strings.Builder
	snapshot.WriteString("Pedido atual em construção:\n")
	fieldLabels := []struct {
		name  string
		label string
	}{
		{"site", "Site"},
		{"du", "DU"},
		{"projeto", "Projeto"},
		{"motivo", "Motivo"},
	}
	for _, f := range fieldLabels {
		value := draft.Field(f.name)
		if value != "" {
			snapshot.WriteString(fmt.Sprintf("✅ %s: %s\n", f.label, value))
		} else {
			snapshot.WriteString(fmt.Sprintf("❌ %s: (não informado)\n", f.label))
		}
	}

	return fmt.Sprintf(`Você é um assistente que ajuda a coletar informações de pedidos de forma conversacional e natural.

INFORMAÇÕES NECESSÁRIAS para um pedido completo:
- site (código do site)
- du (número da DU)
- projeto (código do projeto)
- motivo (descrição do problema/motivo)

SUAS REGRAS:
1. Analise a mensagem do usuário e extraia TODAS as informações que ele mencionou
2. Se o usuário forneceu TODAS as 4 informações necessárias, retorne JSON:
   {"action": "complete", "data": {"site": "...", "du": "...", "projeto": "...", "motivo": "..."}}
3. Se faltam informações, retorne JSON:
   {"action": "ask", "message": "sua pergunta amigável aqui", "extracted": {"campo": "valor"}}
4. Seja conversacional, amigável e direto
5. Faça UMA pergunta por vez sobre o que está faltando
6. Se o usuário disse "não tem" ou similar para algum campo, aceite como "N/A"

%s

Analise a nova mensagem e responda APENAS com JSON válido, sem markdown.`, snapshot.String())
}
