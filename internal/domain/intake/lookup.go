package intake

import (
	"fmt"
	"regexp"
	"strings"

	"checkpoint-server/internal/domain/order"
)

// Intent is the routing decision for an incoming utterance.
type Intent int

const (
	// IntentSlotFilling routes the utterance to the turn policy.
	IntentSlotFilling Intent = iota
	// IntentLookup routes the utterance to the lookup resolver.
	IntentLookup
)

// IntentClassifier decides whether an utterance is a status query or part of
// the slot-filling conversation. Isolated behind an interface so a smarter
// classifier can replace the regex one without touching the policy or resolver.
type IntentClassifier interface {
	Classify(utterance string) Intent
}

var (
	lookupTriggerRe = regexp.MustCompile(`(?i)\b(?:vo|status)\b[\s\S]*\bsite\b`)
	siteTokenRe     = regexp.MustCompile(`(?i)\bsite\s+(\S+)\b`)
)

// RegexClassifier recognizes status queries by a reference token ("vo" or
// "status") followed by a site token, anywhere in the text.
type RegexClassifier struct{}

// NewRegexClassifier constructs the default intent classifier.
func NewRegexClassifier() *RegexClassifier {
	return &RegexClassifier{}
}

func (*RegexClassifier) Classify(utterance string) Intent {
	if lookupTriggerRe.MatchString(utterance) {
		return IntentLookup
	}
	return IntentSlotFilling
}

// ExtractSite returns the identifier following the literal word "site",
// first case-insensitive match. The identifier itself keeps its case; the
// lookup against stored orders is case-sensitive.
func ExtractSite(utterance string) (string, bool) {
	m := siteTokenRe.FindStringSubmatch(utterance)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RenderSiteReport formats the multi-record status report for a site, one
// line per order, newest first as supplied.
func RenderSiteReport(site string, orders []*order.Order) string {
	if len(orders) == 0 {
		return fmt.Sprintf("Nenhum pedido encontrado para o site %s.", site)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 Pedidos do site %s:\n", site)
	for i, ord := range orders {
		ref := "(aguardando atribuição)"
		if ord.ExternalRefID != nil && *ord.ExternalRefID != "" {
			ref = *ord.ExternalRefID
		}
		fmt.Fprintf(&b, "%d. %s VO: %s | DU: %s | Projeto: %s | Motivo: %s | Solicitante: %s | %s\n",
			i+1,
			ord.Status.Glyph(),
			ref,
			ord.DU,
			ord.Projeto,
			ord.Motivo,
			ord.RequesterName,
			ord.CreatedAt.Format("02/01/2006 15:04"),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
