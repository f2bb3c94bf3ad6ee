package authhandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"checkpoint-server/internal/domain/user"
	"checkpoint-server/internal/infrastructure/auth"
	"checkpoint-server/internal/infrastructure/metrics"
	"checkpoint-server/internal/interfaces/httpserver/responses"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	users  *user.Service
	tokens *auth.TokenManager
	logger zerolog.Logger
}

// NewAuthHandler constructs a new handler instance.
func NewAuthHandler(users *user.Service, tokens *auth.TokenManager, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        userResponse `json:"user"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleRequester
	}

	created, err := h.users.Register(c.Request.Context(), user.RegisterInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("register", "failure").Inc()
		h.logger.Warn().Err(err).Str("login", req.Login).Msg("registration failed")
		responses.HandleError(c, err, "registration failed")
		return
	}

	metrics.AuthRequestsTotal.WithLabelValues("register", "success").Inc()
	c.JSON(http.StatusCreated, toUserResponse(created))
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleErrorWithStatus(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	usr, err := h.users.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("login", "failure").Inc()
		h.logger.Warn().Err(err).Str("login", req.Login).Msg("login failed")
		responses.HandleError(c, err, "login failed")
		return
	}

	token, expiresAt, err := h.tokens.Issue(usr)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues("login", "failure").Inc()
		h.logger.Error().Err(err).Uint("user_id", usr.ID).Msg("token issue failed")
		responses.HandleErrorWithStatus(c, http.StatusInternalServerError, err, "failed to issue token")
		return
	}

	metrics.AuthRequestsTotal.WithLabelValues("login", "success").Inc()
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        toUserResponse(usr),
	})
}

func toUserResponse(usr *user.User) userResponse {
	return userResponse{
		ID:    usr.ID,
		Name:  usr.Name,
		Login: usr.Login,
		Role:  string(usr.Role),
	}
}
