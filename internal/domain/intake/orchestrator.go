package intake

import (
	"context"

	"github.com/rs/zerolog"

	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/domain/user"
)

// OrderBook is the narrow contract the orchestrator holds against the order
// store: persist a finalized draft and resolve lookups by site.
type OrderBook interface {
	Create(ctx context.Context, requester *user.User, input order.CreateInput) (*order.Order, error)
	ListBySite(ctx context.Context, site string) ([]*order.Order, error)
}

// Reply is the orchestrator's answer to one utterance.
type Reply struct {
	Message string
	// Order is set when this turn finalized and persisted a new order.
	Order *order.Order
}

// Orchestrator is the top-level loop: it routes each utterance to the lookup
// resolver or the turn policy and applies the resulting side effects.
type Orchestrator struct {
	policy     *Policy
	classifier IntentClassifier
	orders     OrderBook
	log        zerolog.Logger
}

// NewOrchestrator constructs an Orchestrator with required dependencies.
func NewOrchestrator(policy *Policy, classifier IntentClassifier, orders OrderBook, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		policy:     policy,
		classifier: classifier,
		orders:     orders,
		log:        log,
	}
}

// HandleUtterance processes one user utterance to completion and returns the
// updated session plus the next assistant message. All failures are
// turn-scoped: they surface as a chat message and the user may re-issue input.
func (o *Orchestrator) HandleUtterance(ctx context.Context, sess Session, actor *user.User, utterance string) (Session, Reply, error) {
	if o.classifier.Classify(utterance) == IntentLookup {
		return sess, o.resolveLookup(ctx, utterance), nil
	}

	next, result, err := o.policy.HandleTurn(ctx, sess, utterance)
	if err != nil {
		o.log.Warn().Err(err).Uint("user_id", sess.UserID).Msg("extraction failed, turn left unchanged")
		return sess, Reply{Message: ExtractionFailureMessage(err)}, err
	}

	if result.Finalized == nil {
		return next, Reply{Message: result.Reply}, nil
	}

	// Persist the new order before emitting the success message. The draft
	// was already reset, so a store failure leaves the user to re-enter.
	ord, err := o.orders.Create(ctx, actor, order.CreateInput{
		Site:    result.Finalized.Site,
		DU:      result.Finalized.DU,
		Projeto: result.Finalized.Projeto,
		Motivo:  result.Finalized.Motivo,
	})
	if err != nil {
		o.log.Error().Err(err).Uint("user_id", sess.UserID).Msg("order create failed after finalize")
		return next, Reply{Message: PersistenceFailureMessage()}, err
	}

	o.log.Info().
		Uint("user_id", sess.UserID).
		Str("order_id", ord.PublicID).
		Str("site", ord.Site).
		Msg("order finalized from conversation")

	return next, Reply{Message: OrderRegisteredMessage(ord), Order: ord}, nil
}

// resolveLookup answers a status query. This path never mutates session or
// store state and never consults the extraction adapter.
func (o *Orchestrator) resolveLookup(ctx context.Context, utterance string) Reply {
	site, ok := ExtractSite(utterance)
	if !ok {
		return Reply{Message: ClarificationMessage}
	}

	orders, err := o.orders.ListBySite(ctx, site)
	if err != nil {
		o.log.Error().Err(err).Str("site", site).Msg("site lookup failed")
		return Reply{Message: PersistenceFailureMessage()}
	}

	return Reply{Message: RenderSiteReport(site, orders)}
}
