package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adergachev/recipevault/internal/common"
)

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   time.Unix(res.ExpiresAt, 0).UTC(),
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.GetString(ctxUserIDKey))
	if err != nil {
		// The session outlived the user record; treat as unauthenticated.
		if errors.Is(err, common.ErrorNotFound) {
			writeUnauthorized(c)
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) Logout(c *gin.Context) {
	h.users.Logout(c.Request.Context(), c.GetString(ctxTokenKey))
	c.Status(http.StatusNoContent)
}
