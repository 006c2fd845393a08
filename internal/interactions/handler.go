package interactions

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches interaction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interactions", h.record)
}

type recordRequest struct {
	CourseID    string   `json:"courseId"`
	Type        string   `json:"interactionType"`
	Algorithm   string   `json:"algorithm"`
	Score       *float64 `json:"score"`
	Reason      string   `json:"reason"`
	SessionID   string   `json:"sessionId"`
	PageContext string   `json:"pageContext"`
	Position    *int     `json:"position"`
	TenantID    string   `json:"tenantId"`
}

func (h *Handler) record(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, stored, err := h.Svc.Record(c.Request.Context(), RecordInput{
		TenantID:      req.TenantID,
		UserID:        userID,
		CourseID:      req.CourseID,
		Type:          req.Type,
		AlgorithmUsed: req.Algorithm,
		Score:         req.Score,
		Reason:        req.Reason,
		SessionID:     req.SessionID,
		PageContext:   req.PageContext,
		Position:      req.Position,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInteractionType):
			respond.Error(c, http.StatusBadRequest, "invalid_interaction_type", "unrecognized interaction type", gin.H{"interactionType": req.Type})
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "courseId is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record interaction", nil)
		}
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"id":     rec.ID,
		"stored": stored,
	})
}
