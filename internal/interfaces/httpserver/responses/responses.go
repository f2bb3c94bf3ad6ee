// Package responses centralizes error-to-HTTP mapping for handlers.
package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"checkpoint-server/internal/utils/platformerrors"
)

type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// HandleError maps a typed platform error to the matching HTTP status.
func HandleError(c *gin.Context, err error, message string) {
	HandleErrorWithStatus(c, statusFor(err), err, message)
}

// HandleErrorWithStatus aborts the request with the given status and message.
func HandleErrorWithStatus(c *gin.Context, status int, err error, message string) {
	if err != nil {
		_ = c.Error(err)
	}
	body := errorBody{Error: errorInfo{Message: message}}
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		body.Error.Code = platformErr.Code
		if platformErr.Message != "" {
			body.Error.Message = platformErr.Message
		}
	}
	c.AbortWithStatusJSON(status, body)
}

func statusFor(err error) int {
	switch platformerrors.TypeOf(err) {
	case platformerrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case platformerrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case platformerrors.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case platformerrors.ErrorTypeForbidden:
		return http.StatusForbidden
	case platformerrors.ErrorTypeConflict, platformerrors.ErrorTypeBusy:
		return http.StatusConflict
	case platformerrors.ErrorTypeExtraction, platformerrors.ErrorTypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
