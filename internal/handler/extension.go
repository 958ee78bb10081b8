// internal/handler/extension.go
package handler

import (
	"log/slog"
	"net/http"

	val "product-intel/internal/validator"

	"github.com/gin-gonic/gin"
)

// ExtensionEventRequest is sent by the browser extension service worker.
type ExtensionEventRequest struct {
	Event   string `json:"event" validate:"required,oneof=installed updated"`
	Version string `json:"version" validate:"omitempty,max=32"`
}

// ExtensionEvent godoc
// @Summary Browser extension lifecycle event
// @Description The extension reports install/update; the event is only logged.
// @Accept json
// @Param request body ExtensionEventRequest true "Event"
// @Success 202 {object} map[string]string{"status":"accepted"}
// @Failure 400 {object} map[string]string
// @Router /api/v1/extension/events [post]
func ExtensionEvent(c *gin.Context) {
	var req ExtensionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := val.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("Extension event", "event", req.Event, "version", req.Version, "user_agent", c.Request.UserAgent())
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
