package orderhandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/infrastructure/mailer"
	"checkpoint-server/internal/infrastructure/metrics"
	"checkpoint-server/internal/interfaces/httpserver/middlewares"
	"checkpoint-server/internal/interfaces/httpserver/responses"
)

// OrderHandler exposes the order book over HTTP.
type OrderHandler struct {
	orders *order.Service
	mail   mailer.Mailer
	logger zerolog.Logger
}

// NewOrderHandler constructs a new handler instance.
func NewOrderHandler(orders *order.Service, mail mailer.Mailer, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		mail:   mail,
		logger: logger,
	}
}

type orderResponse struct {
	ID             string    `json:"id"`
	Site           string    `json:"site"`
	DU             string    `json:"du"`
	Projeto        string    `json:"projeto"`
	Motivo         string    `json:"motivo"`
	Status         string    `json:"status"`
	RequesterName  string    `json:"requester_name,omitempty"`
	RequesterLogin string    `json:"requester_login,omitempty"`
	OperatorLogin  string    `json:"operator_login,omitempty"`
	ExternalRefID  string    `json:"external_ref_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type updateRequest struct {
	Status        *string `json:"status"`
	ExternalRefID *string `json:"external_ref_id"`
}

type emailRequest struct {
	To          []string            `json:"to" binding:"required,min=1"`
	Subject     string              `json:"subject" binding:"required"`
	Attachments []mailer.Attachment `json:"attachments"`
}

// List handles GET /v1/orders. Requesters see their own orders, operators see
// the active queue.
func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		responses.HandleErrorWithStatus(c, http.StatusUnauthorized, nil, "user not authenticated")
		return
	}

	orders, err := h.orders.ListForUser(c.Request.Context(), actor)
	if err != nil {
		h.logger.Error().Err(err).Uint("user_id", actor.ID).Msg("failed to list orders")
		responses.HandleError(c, err, "failed to list orders")
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, ord := range orders {
		resp = append(resp, toOrderResponse(ord))
	}
	c.JSON(http.StatusOK, gin.H{"orders": resp})
}

// Update handles PATCH /v1/orders/:id. Operator only.
func (h *OrderHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		responses.HandleErrorWithStatus(c, http.StatusUnauthorized, nil, "user not authenticated")
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	input := order.UpdateInput{ExternalRefID: req.ExternalRefID}
	if req.Status != nil {
		status := order.Status(*req.Status)
		input.Status = &status
	}

	updated, err := h.orders.Update(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		h.logger.Warn().Err(err).Str("order_id", c.Param("id")).Msg("order update failed")
		responses.HandleError(c, err, "failed to update order")
		return
	}

	if input.Status != nil {
		metrics.OrderStatusChangesTotal.WithLabelValues(string(*input.Status)).Inc()
	}
	c.JSON(http.StatusOK, toOrderResponse(updated))
}

// Email handles POST /v1/orders/:id/email. Delivery failures do not affect
// the stored order.
func (h *OrderHandler) Email(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	ord, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to load order")
		return
	}

	if err := h.mail.SendOrderEmail(c.Request.Context(), req.To, req.Subject, ord, req.Attachments); err != nil {
		h.logger.Error().Err(err).Str("order_id", ord.PublicID).Msg("order email failed")
		responses.HandleError(c, err, "failed to send email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func actorFromContext(c *gin.Context) (*user.User, bool) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		return nil, false
	}
	return &user.User{
		ID:    principal.UserID,
		Name:  principal.Name,
		Login: principal.Login,
		Role:  principal.Role,
	}, true
}

func toOrderResponse(ord *order.Order) orderResponse {
	resp := orderResponse{
		ID:             ord.PublicID,
		Site:           ord.Site,
		DU:             ord.DU,
		Projeto:        ord.Projeto,
		Motivo:         ord.Motivo,
		Status:         string(ord.Status),
		RequesterName:  ord.RequesterName,
		RequesterLogin: ord.RequesterLogin,
		CreatedAt:      ord.CreatedAt,
		UpdatedAt:      ord.UpdatedAt,
	}
	if ord.OperatorLogin != nil {
		resp.OperatorLogin = *ord.OperatorLogin
	}
	if ord.ExternalRefID != nil {
		resp.ExternalRefID = *ord.ExternalRefID
	}
	return resp
}
