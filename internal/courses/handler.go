package courses

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

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.list)
	rg.GET("/courses/:id", h.get)
	rg.GET("/enrollments", h.enrollments)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.ListCatalog(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list courses", nil)
		return
	}
	if out == nil {
		out = []Course{}
	}
	respond.OK(c, gin.H{"courses": out})
}

func (h *Handler) get(c *gin.Context) {
	courseID := c.Param("id")
	c.Set("courseId", courseID)

	course, err := h.Svc.Get(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "course not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load course", nil)
		return
	}
	respond.OK(c, course)
}

func (h *Handler) enrollments(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	out, err := h.Svc.ListHistory(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list enrollments", nil)
		return
	}
	if out == nil {
		out = []Enrollment{}
	}
	respond.OK(c, gin.H{"enrollments": out})
}
