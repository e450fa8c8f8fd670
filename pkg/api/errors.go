package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/services"
)

// renderError maps runtime errors to HTTP responses. Policy denials carry
// their status and rate-limit headers; service errors map to conventional
// statuses; anything else is a 500.
func renderError(c *gin.Context, err error) {
	var policyErr *executor.PolicyError
	if errors.As(err, &policyErr) {
		for name, value := range policyErr.Headers() {
			c.Header(name, value)
		}
		c.JSON(policyErr.Status, gin.H{
			"error": gin.H{
				"code":    policyErr.Code,
				"message": policyErr.Message,
				"details": policyErr.Details,
			},
		})
		return
	}

	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	slog.Error("Unexpected handler error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
