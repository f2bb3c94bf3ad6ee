package order

import (
	"context"

	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/utils/idgen"
	"checkpoint-server/internal/utils/platformerrors"
)

// Service handles business logic for checkpoint orders.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the four collected fields of a finalized draft.
type CreateInput struct {
	Site    string
	DU      string
	Projeto string
	Motivo  string
}

// Create persists a new order for the requester. Orders always enter the
// lifecycle at pending.
func (s *Service) Create(ctx context.Context, requester *user.User, input CreateInput) (*Order, error) {
	if input.Site == "" || input.DU == "" || input.Projeto == "" || input.Motivo == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"all four fields are required to create an order", nil, "e7a1b2c3-d4e5-4f6a-8b9c-0d1e2f3a4b5c")
	}

	publicID, err := idgen.GenerateSecureID("ord", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate order ID")
	}

	created, err := s.repo.Create(ctx, &Order{
		PublicID:       publicID,
		Site:           input.Site,
		DU:             input.DU,
		Projeto:        input.Projeto,
		Motivo:         input.Motivo,
		Status:         StatusPending,
		RequesterID:    requester.ID,
		RequesterName:  requester.Name,
		RequesterLogin: requester.Login,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to persist order")
	}
	return created, nil
}

// ListForUser returns the caller's view of the order book: requesters see
// exactly the orders they created, operators see the active working queue.
func (s *Service) ListForUser(ctx context.Context, actor *user.User) ([]*Order, error) {
	var (
		orders []*Order
		err    error
	)
	if actor.Role == user.RoleOperator {
		orders, err = s.repo.ListActive(ctx)
	} else {
		orders, err = s.repo.ListByRequester(ctx, actor.ID)
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list orders")
	}
	return orders, nil
}

// Get loads a single order by its public identifier.
func (s *Service) Get(ctx context.Context, publicID string) (*Order, error) {
	ord, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load order")
	}
	if ord == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"order not found", nil, "6a7b8c9d-0e1f-4a2b-3c4d-5e6f7a8b9c0d")
	}
	return ord, nil
}

// ListBySite returns all orders for a site, newest first, regardless of status.
func (s *Service) ListBySite(ctx context.Context, site string) ([]*Order, error) {
	orders, err := s.repo.ListBySite(ctx, site)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list orders by site")
	}
	return orders, nil
}

// UpdateInput carries the operator-settable fields. Both are independent;
// either may be set alone.
type UpdateInput struct {
	Status        *Status
	ExternalRefID *string
}

// Update applies an operator change to an order. Only operator-role users may
// change status or set the external reference id; any status may be set from
// any other status.
func (s *Service) Update(ctx context.Context, actor *user.User, publicID string, input UpdateInput) (*Order, error) {
	if actor.Role != user.RoleOperator {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeForbidden,
			"only operators may update orders", nil, "3c4d5e6f-7a8b-4c9d-0e1f-2a3b4c5d6e7f")
	}
	if input.Status == nil && input.ExternalRefID == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"nothing to update", nil, "8b9c0d1e-2f3a-4b5c-6d7e-8f9a0b1c2d3e")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"unknown order status", nil, "5e6f7a8b-9c0d-4e1f-2a3b-4c5d6e7f8a9b")
	}

	existing, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load order")
	}
	if existing == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"order not found", nil, "0d1e2f3a-4b5c-4d6e-7f8a-9b0c1d2e3f4a")
	}

	patch := UpdatePatch{
		Status:        input.Status,
		ExternalRefID: input.ExternalRefID,
		OperatorID:    &actor.ID,
		OperatorLogin: &actor.Login,
	}

	updated, err := s.repo.Update(ctx, existing.ID, patch)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update order")
	}
	if updated == nil {
		// Row vanished between the load and the write.
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"order not found", nil, "7e2f4a6c-8b0d-4d3e-9f1a-5c7b9d0e2f4a")
	}
	return updated, nil
}
