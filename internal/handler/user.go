// internal/handler/user.go
package handler

import (
	"log/slog"
	"net/http"

	"product-intel/internal/middleware"
	"product-intel/internal/storage"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store storage.UserStorage
}

func NewUserHandler(store storage.UserStorage) *UserHandler {
	return &UserHandler{store: store}
}

// Me godoc
// @Summary Current user with tier and remaining credits
// @Success 200 {object} domain.User
// @Failure 404 {object} map[string]string
// @Router /api/v1/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("GetUser failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
