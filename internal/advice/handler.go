package advice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the read-only advice routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/advice", h.current)
	rg.GET("/resumes/:id/advice/history", h.history)
	rg.GET("/resumes/:id/advice/history/:offset", h.version)
}

// RegisterGenerateRoutes attaches the LLM-backed route.
func (h *Handler) RegisterGenerateRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/advice", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set(middleware.ResumeIDKey, resumeID)
	v, err := h.Svc.Generate(c.Request.Context(), userID, resumeID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, v)
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set(middleware.ResumeIDKey, resumeID)
	v, err := h.Svc.Current(c.Request.Context(), userID, resumeID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, v)
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set(middleware.ResumeIDKey, resumeID)
	versions, err := h.Svc.History(c.Request.Context(), userID, resumeID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"resumeId": resumeID, "versions": versions})
}

func (h *Handler) version(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set(middleware.ResumeIDKey, resumeID)
	offset, err := strconv.Atoi(c.Param("offset"))
	if err != nil || offset < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "offset must be a non-negative integer", nil)
		return
	}
	v, err := h.Svc.Version(c.Request.Context(), userID, resumeID, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, v)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrResumeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Advice not found", nil)
	case errors.Is(err, ErrInvalidOutput):
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to parse AI response", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate career advice", nil)
	}
}
