package templates

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/:id", h.get)
	rg.POST("/templates/lookup", h.lookup)
	rg.GET("/settings/template", h.getSetting)
	rg.PUT("/settings/template", h.saveSetting)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, h.Svc.List())
}

func (h *Handler) get(c *gin.Context) {
	h.writeTemplate(c, c.Param("id"))
}

func (h *Handler) lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.writeTemplate(c, req.TemplateID)
}

func (h *Handler) writeTemplate(c *gin.Context, id string) {
	c.Set(middleware.TemplateIDKey, id)
	tpl, err := h.Svc.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "templateId is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Template not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load template", nil)
		}
		return
	}
	respond.OK(c, tpl)
}

func (h *Handler) getSetting(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	setting, err := h.Svc.GetSetting(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no template setting saved", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load template setting", nil)
		}
		return
	}
	respond.OK(c, toSettingResponse(setting))
}

func (h *Handler) saveSetting(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.TemplateIDKey, req.TemplateID)
	setting, err := h.Svc.SaveSetting(c.Request.Context(), userID, req.TemplateID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save template setting", nil)
		}
		return
	}
	respond.OK(c, toSettingResponse(setting))
}
