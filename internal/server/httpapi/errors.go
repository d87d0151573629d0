package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adergachev/recipevault/internal/common"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

func newErrorEnvelope(code, message string) errorEnvelope {
	return errorEnvelope{Error: errorDetail{Code: code, Message: message}}
}

// writeError translates core error kinds into transport status codes. Every
// token failure collapses to a generic 401 so the response never tells an
// unauthenticated caller which check rejected the token.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorDuplicateEmail):
		c.JSON(http.StatusConflict, newErrorEnvelope("conflict", "Email already registered"))
	case errors.Is(err, common.ErrorDuplicateUsername):
		c.JSON(http.StatusConflict, newErrorEnvelope("conflict", "Username already taken"))
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, newErrorEnvelope("bad_request", "Invalid input"))
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, newErrorEnvelope("forbidden", "You are not the owner of this recipe"))
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, newErrorEnvelope("not_found", "Resource not found"))
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrTokenFormat),
		errors.Is(err, common.ErrTokenSignature),
		errors.Is(err, common.ErrTokenUnknown),
		errors.Is(err, common.ErrTokenExpired):
		writeUnauthorized(c)
	default:
		c.JSON(http.StatusInternalServerError, newErrorEnvelope("internal_server_error", "Internal Server Error"))
	}
}

func writeUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, newErrorEnvelope("unauthorized", "Not authenticated"))
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, newErrorEnvelope("bad_request", err.Error()))
}
