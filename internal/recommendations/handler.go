package recommendations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"edurise-backend/internal/shared/server/middleware"
	"edurise-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}
	// Unknown algorithm values are normalized to hybrid by the engine.
	algorithm := c.Query("algorithm")
	if algorithm != "" {
		c.Set("algorithm", algorithm)
	}

	result, err := h.Svc.Recommend(c.Request.Context(), userID, limit, algorithm)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load recommendations", nil)
		return
	}
	respond.OK(c, result)
}
