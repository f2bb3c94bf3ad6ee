package chathandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"checkpoint-server/internal/domain/intake"
	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/infrastructure/metrics"
	"checkpoint-server/internal/interfaces/httpserver/middlewares"
	"checkpoint-server/internal/interfaces/httpserver/responses"
	"checkpoint-server/internal/utils/platformerrors"
)

// ChatHandler exposes the conversational intake surface.
type ChatHandler struct {
	orchestrator *intake.Orchestrator
	registry     *intake.Registry
	logger       zerolog.Logger
}

// NewChatHandler constructs a new handler instance.
func NewChatHandler(orchestrator *intake.Orchestrator, registry *intake.Registry, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		orchestrator: orchestrator,
		registry:     registry,
		logger:       logger,
	}
}

type turnRequest struct {
	Message string `json:"message" binding:"required"`
}

type turnResponse struct {
	Message string         `json:"message"`
	Order   *orderSnapshot `json:"order,omitempty"`
}

type orderSnapshot struct {
	ID      string `json:"id"`
	Site    string `json:"site"`
	DU      string `json:"du"`
	Projeto string `json:"projeto"`
	Motivo  string `json:"motivo"`
	Status  string `json:"status"`
}

// Welcome handles GET /v1/chat/welcome
func (h *ChatHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, turnResponse{Message: intake.WelcomeMessage})
}

// Turn handles POST /v1/chat. One turn runs to completion per session; a
// second submission while a turn is in flight is rejected with 409.
func (h *ChatHandler) Turn(c *gin.Context) {
	principal, ok := middlewares.PrincipalFromContext(c)
	if !ok {
		responses.HandleErrorWithStatus(c, http.StatusUnauthorized, nil, "user not authenticated")
		return
	}

	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	sess, err := h.registry.Acquire(principal.UserID)
	if err != nil {
		if errors.Is(err, intake.ErrBusy) {
			metrics.SessionBusyTotal.Inc()
			responses.HandleErrorWithStatus(c, http.StatusConflict, err, "previous message still processing")
			return
		}
		responses.HandleErrorWithStatus(c, http.StatusInternalServerError, err, "failed to load session")
		return
	}

	actor := &user.User{
		ID:    principal.UserID,
		Name:  principal.Name,
		Login: principal.Login,
		Role:  principal.Role,
	}

	next, reply, turnErr := h.orchestrator.HandleUtterance(c.Request.Context(), sess, actor, req.Message)
	h.registry.Commit(principal.UserID, next)

	switch {
	case turnErr != nil:
		if platformerrors.IsType(turnErr, platformerrors.ErrorTypeExtraction) {
			metrics.ExtractionFailuresTotal.Inc()
		}
		metrics.TurnsTotal.WithLabelValues("error").Inc()
	case reply.Order != nil:
		metrics.OrdersFinalizedTotal.Inc()
		metrics.TurnsTotal.WithLabelValues("finalized").Inc()
	default:
		metrics.TurnsTotal.WithLabelValues("reply").Inc()
	}

	// Failures are turn-scoped and delivered as chat messages; the HTTP
	// exchange itself succeeded.
	resp := turnResponse{Message: reply.Message}
	if reply.Order != nil {
		resp.Order = &orderSnapshot{
			ID:      reply.Order.PublicID,
			Site:    reply.Order.Site,
			DU:      reply.Order.DU,
			Projeto: reply.Order.Projeto,
			Motivo:  reply.Order.Motivo,
			Status:  string(reply.Order.Status),
		}
	}
	c.JSON(http.StatusOK, resp)
}
