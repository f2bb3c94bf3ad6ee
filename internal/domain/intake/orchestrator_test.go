package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/domain/user"
)

// mockOrderBook records calls and returns scripted results.
type mockOrderBook struct {
	created    []order.CreateInput
	createErr  error
	listed     []string
	listResult []*order.Order
	listErr    error
}

func (m *mockOrderBook) Create(_ context.Context, requester *user.User, input order.CreateInput) (*order.Order, error) {
	m.created = append(m.created, input)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &order.Order{
		PublicID:      "ord_test",
		Site:          input.Site,
		DU:            input.DU,
		Projeto:       input.Projeto,
		Motivo:        input.Motivo,
		Status:        order.StatusPending,
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
	}, nil
}

func (m *mockOrderBook) ListBySite(_ context.Context, site string) ([]*order.Order, error) {
	m.listed = append(m.listed, site)
	return m.listResult, m.listErr
}

func newTestOrchestrator(extractor Extractor, book *mockOrderBook) *Orchestrator {
	return NewOrchestrator(NewPolicy(extractor), NewRegexClassifier(), book, zerolog.Nop())
}

func testActor() *user.User {
	return &user.User{ID: 7, Name: "Maria", Login: "maria", Role: user.RoleRequester}
}

func TestHandleUtteranceFinalizePersistsPendingOrder(t *testing.T) {
	extractor := &stubExtractor{outcomes: []Outcome{
		Complete{Data: Draft{Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "queda de energia"}},
	}}
	book := &mockOrderBook{}
	orchestrator := newTestOrchestrator(extractor, book)

	next, reply, err := orchestrator.HandleUtterance(context.Background(), NewSession(7), testActor(), "tudo de uma vez")
	require.NoError(t, err)

	require.Len(t, book.created, 1)
	assert.Equal(t, order.CreateInput{Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "queda de energia"}, book.created[0])

	require.NotNil(t, reply.Order)
	assert.Equal(t, order.StatusPending, reply.Order.Status)
	assert.Contains(t, reply.Message, "Pedido registrado com sucesso")
	assert.Equal(t, StateIdle, next.State)
}

func TestHandleUtteranceStoreFailureSurfacesMessage(t *testing.T) {
	extractor := &stubExtractor{outcomes: []Outcome{
		Complete{Data: Draft{Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "m"}},
	}}
	book := &mockOrderBook{createErr: errors.New("connection reset")}
	orchestrator := newTestOrchestrator(extractor, book)

	_, reply, err := orchestrator.HandleUtterance(context.Background(), NewSession(7), testActor(), "tudo de uma vez")

	require.Error(t, err)
	assert.Nil(t, reply.Order)
	assert.Equal(t, PersistenceFailureMessage(), reply.Message)
}

func TestHandleUtteranceExtractionFailureKeepsSession(t *testing.T) {
	extractor := &stubExtractor{errs: []error{errors.New("api down")}}
	book := &mockOrderBook{}
	orchestrator := newTestOrchestrator(extractor, book)

	sess := NewSession(7)
	sess.State = StateCollecting
	sess.Draft = Draft{Site: "PEACV06"}

	next, reply, err := orchestrator.HandleUtterance(context.Background(), sess, testActor(), "DU 12345")

	require.Error(t, err)
	assert.Equal(t, sess, next)
	assert.Contains(t, reply.Message, "tentar novamente")
	assert.Empty(t, book.created)
}

func TestHandleUtteranceLookupNeverMutates(t *testing.T) {
	extractor := &stubExtractor{}
	ref := "VO-99"
	book := &mockOrderBook{listResult: []*order.Order{{
		Site:          "PEACV06",
		DU:            "12345",
		Projeto:       "XPTO",
		Motivo:        "queda de energia",
		Status:        order.StatusCompleted,
		RequesterName: "Maria",
		ExternalRefID: &ref,
	}}}
	orchestrator := newTestOrchestrator(extractor, book)

	sess := NewSession(7)
	sess.State = StateCollecting
	sess.Draft = Draft{Site: "OUTRO01"}

	next, reply, err := orchestrator.HandleUtterance(context.Background(), sess, testActor(), "Como está a VO do site PEACV06?")
	require.NoError(t, err)

	// the in-progress draft is untouched and the extractor was never called
	assert.Equal(t, sess, next)
	assert.Zero(t, extractor.calls)
	assert.Equal(t, []string{"PEACV06"}, book.listed)
	assert.Contains(t, reply.Message, "✅")
	assert.Contains(t, reply.Message, "VO-99")
}

func TestHandleUtteranceLookupWithoutIdentifierAsksForIt(t *testing.T) {
	extractor := &stubExtractor{}
	book := &mockOrderBook{}
	orchestrator := newTestOrchestrator(extractor, book)

	// trigger tokens present but no "site <id>" pair usable
	_, reply, err := orchestrator.HandleUtterance(context.Background(), NewSession(7), testActor(), "qual o status dos pedidos do site")
	require.NoError(t, err)

	assert.Equal(t, ClarificationMessage, reply.Message)
	// no store query is issued
	assert.Empty(t, book.listed)
}
