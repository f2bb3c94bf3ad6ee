package intake

import (
	"fmt"

	"checkpoint-server/internal/domain/order"
)

// WelcomeMessage greets a user at session start.
const WelcomeMessage = "👋 Olá! Estou aqui para ajudar a registrar seus checkpoints.\n\n" +
	"Você pode me falar sobre um pedido de forma natural, e eu vou te guiar. " +
	"Pode começar dizendo o site, ou me contar tudo de uma vez!"

// ClarificationMessage asks for the site identifier missing from a status query.
const ClarificationMessage = "Qual site você quer consultar? Ex.: \"status do site PEACV06\""

// ExtractionFailureMessage reports an extraction failure; the user must re-send.
func ExtractionFailureMessage(err error) string {
	return fmt.Sprintf("❌ Desculpe, tive um problema ao processar. Pode tentar novamente?\n\n%v", err)
}

// PersistenceFailureMessage reports a failed store call.
func PersistenceFailureMessage() string {
	return "❌ Não consegui salvar o pedido agora. Pode tentar novamente em instantes?"
}

// OrderRegisteredMessage summarizes a just-finalized order and offers the
// email follow-up.
func OrderRegisteredMessage(ord *order.Order) string {
	return fmt.Sprintf("✅ Perfeito! Pedido registrado com sucesso!\n\n"+
		"📦 Site: %s\n🔖 DU: %s\n📋 Projeto: %s\n⚠️ Motivo: %s\n\n"+
		"📧 Deseja enviar o registro por e-mail?\n"+
		"💬 Precisa registrar outro pedido?",
		ord.Site, ord.DU, ord.Projeto, ord.Motivo)
}
