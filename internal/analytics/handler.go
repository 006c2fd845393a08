package analytics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"edurise-backend/internal/shared/server/respond"
)

const defaultWindow = 30 * 24 * time.Hour

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analytics routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/recommendations", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	since := time.Now().UTC().Add(-defaultWindow)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "since must be RFC3339", nil)
			return
		}
		since = parsed
	}
	tenantID := c.Query("tenant")

	summary, err := h.Svc.Summarize(c.Request.Context(), tenantID, since)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize interactions", nil)
		return
	}
	respond.OK(c, summary)
}
