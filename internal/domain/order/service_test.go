package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/utils/platformerrors"
)

// memoryRepository is an in-memory Repository for service tests. Updates are
// field-scoped merges, matching the real store.
type memoryRepository struct {
	orders []*Order
	nextID uint
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{nextID: 1}
}

func (m *memoryRepository) Create(_ context.Context, ord *Order) (*Order, error) {
	clone := *ord
	clone.ID = m.nextID
	m.nextID++
	m.orders = append([]*Order{&clone}, m.orders...)
	return &clone, nil
}

func (m *memoryRepository) FindByPublicID(_ context.Context, publicID string) (*Order, error) {
	for _, ord := range m.orders {
		if ord.PublicID == publicID {
			return ord, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) ListByRequester(_ context.Context, requesterID uint) ([]*Order, error) {
	var result []*Order
	for _, ord := range m.orders {
		if ord.RequesterID == requesterID {
			result = append(result, ord)
		}
	}
	return result, nil
}

func (m *memoryRepository) ListActive(_ context.Context) ([]*Order, error) {
	var result []*Order
	for _, ord := range m.orders {
		if ord.Status.Active() {
			result = append(result, ord)
		}
	}
	return result, nil
}

func (m *memoryRepository) ListBySite(_ context.Context, site string) ([]*Order, error) {
	var result []*Order
	for _, ord := range m.orders {
		if ord.Site == site {
			result = append(result, ord)
		}
	}
	return result, nil
}

func (m *memoryRepository) Update(_ context.Context, id uint, patch UpdatePatch) (*Order, error) {
	for _, ord := range m.orders {
		if ord.ID != id {
			continue
		}
		if patch.Status != nil {
			ord.Status = *patch.Status
		}
		if patch.OperatorID != nil {
			ord.OperatorID = patch.OperatorID
		}
		if patch.OperatorLogin != nil {
			ord.OperatorLogin = patch.OperatorLogin
		}
		if patch.ExternalRefID != nil {
			ord.ExternalRefID = patch.ExternalRefID
		}
		return ord, nil
	}
	return nil, nil
}

func requester() *user.User {
	return &user.User{ID: 1, Name: "Maria", Login: "maria", Role: user.RoleRequester}
}

func operator() *user.User {
	return &user.User{ID: 2, Name: "Oscar", Login: "oscar", Role: user.RoleOperator}
}

func TestCreateEntersPending(t *testing.T) {
	service := NewService(newMemoryRepository())

	created, err := service.Create(context.Background(), requester(), CreateInput{
		Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "queda de energia",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.NotEmpty(t, created.PublicID)
	assert.Equal(t, uint(1), created.RequesterID)
}

func TestCreateRequiresAllFields(t *testing.T) {
	service := NewService(newMemoryRepository())

	_, err := service.Create(context.Background(), requester(), CreateInput{
		Site: "PEACV06", DU: "12345", Projeto: "XPTO",
	})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdateRequiresOperator(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), requester(), CreateInput{
		Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "m",
	})
	require.NoError(t, err)

	status := StatusInProgress
	_, err = service.Update(context.Background(), requester(), created.PublicID, UpdateInput{Status: &status})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeForbidden))
}

func TestUpdateAllowsAnyTransition(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), requester(), CreateInput{
		Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "m",
	})
	require.NoError(t, err)

	// forward to completed
	completed := StatusCompleted
	_, err = service.Update(context.Background(), operator(), created.PublicID, UpdateInput{Status: &completed})
	require.NoError(t, err)

	// and back to in_progress, the lifecycle imposes no ordering
	inProgress := StatusInProgress
	updated, err := service.Update(context.Background(), operator(), created.PublicID, UpdateInput{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, updated.Status)
}

func TestUpdateFieldsAreIndependent(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), requester(), CreateInput{
		Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "m",
	})
	require.NoError(t, err)

	// operator A sets only the status
	status := StatusInProgress
	_, err = service.Update(context.Background(), operator(), created.PublicID, UpdateInput{Status: &status})
	require.NoError(t, err)

	// operator B sets only the reference id; A's status survives
	ref := "VO-1"
	updated, err := service.Update(context.Background(), operator(), created.PublicID, UpdateInput{ExternalRefID: &ref})
	require.NoError(t, err)

	assert.Equal(t, StatusInProgress, updated.Status)
	require.NotNil(t, updated.ExternalRefID)
	assert.Equal(t, "VO-1", *updated.ExternalRefID)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	service := NewService(newMemoryRepository())

	bogus := Status("archived")
	_, err := service.Update(context.Background(), operator(), "ord_x", UpdateInput{Status: &bogus})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
}

func TestUpdateUnknownOrder(t *testing.T) {
	service := NewService(newMemoryRepository())

	status := StatusCompleted
	_, err := service.Update(context.Background(), operator(), "ord_missing", UpdateInput{Status: &status})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}

func TestListForUserScopesByRole(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	first, err := service.Create(ctx, requester(), CreateInput{Site: "A", DU: "1", Projeto: "P", Motivo: "m"})
	require.NoError(t, err)
	other := &user.User{ID: 9, Name: "Nina", Login: "nina", Role: user.RoleRequester}
	_, err = service.Create(ctx, other, CreateInput{Site: "B", DU: "2", Projeto: "P", Motivo: "m"})
	require.NoError(t, err)

	// requester sees only their own orders
	mine, err := service.ListForUser(ctx, requester())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Site)

	// operator queue holds every active order
	queue, err := service.ListForUser(ctx, operator())
	require.NoError(t, err)
	assert.Len(t, queue, 2)

	// completed orders drop out of the queue but stay visible via site lookup
	done := StatusCompleted
	_, err = service.Update(ctx, operator(), first.PublicID, UpdateInput{Status: &done})
	require.NoError(t, err)

	queue, err = service.ListForUser(ctx, operator())
	require.NoError(t, err)
	assert.Len(t, queue, 1)

	bySite, err := service.ListBySite(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, bySite, 1)
}

// vanishingRepository simulates the order row disappearing between the load
// and the write, which the store reports as a nil order with no error.
type vanishingRepository struct {
	*memoryRepository
}

func (v *vanishingRepository) Update(_ context.Context, _ uint, _ UpdatePatch) (*Order, error) {
	return nil, nil
}

func TestUpdateRowVanished(t *testing.T) {
	repo := &vanishingRepository{memoryRepository: newMemoryRepository()}
	service := NewService(repo)

	created, err := service.Create(context.Background(), requester(), CreateInput{
		Site: "PEACV06", DU: "12345", Projeto: "XPTO", Motivo: "m",
	})
	require.NoError(t, err)

	status := StatusInProgress
	_, err = service.Update(context.Background(), operator(), created.PublicID, UpdateInput{Status: &status})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeNotFound))
}

func TestUpdatePatchEmpty(t *testing.T) {
	assert.True(t, UpdatePatch{}.Empty())

	id := uint(2)
	login := "oscar"
	assert.False(t, UpdatePatch{OperatorID: &id}.Empty())
	assert.False(t, UpdatePatch{OperatorLogin: &login}.Empty())

	status := StatusCancelled
	assert.False(t, UpdatePatch{Status: &status}.Empty())
}
