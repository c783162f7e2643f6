package formatting

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/paging"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/util"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the routes that do not call the LLM.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/latex/render", h.render)
	rg.GET("/formatted-resumes", h.list)
	rg.GET("/formatted-resumes/:id", h.get)
	rg.GET("/formatted-resumes/:id/pdf", h.pdf)
}

// RegisterGenerateRoutes attaches the LLM-backed routes.
func (h *Handler) RegisterGenerateRoutes(rg *gin.RouterGroup) {
	rg.POST("/format-resume", h.format)
	rg.POST("/latex/generate", h.generateLatex)
}

func (h *Handler) format(c *gin.Context) {
	var req formatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.TemplateIDKey, req.TemplateID)
	out, err := h.Svc.FormatWithTemplate(c.Request.Context(), req.ResumeContent, req.TemplateID)
	if err != nil {
		writeError(c, err, "Failed to format resume")
		return
	}
	respond.OK(c, out)
}

func (h *Handler) generateLatex(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req latexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeID != "" {
		c.Set(middleware.ResumeIDKey, req.ResumeID)
	}
	c.Set(middleware.TemplateIDKey, req.Template)
	out, err := h.Svc.GenerateLatex(c.Request.Context(), userID, GenerateLatexInput{
		ResumeID:      req.ResumeID,
		ResumeContent: req.ResumeContent,
		Style:         req.Template,
	})
	if err != nil {
		writeError(c, err, "Failed to generate LaTeX content")
		return
	}
	resp := LatexResponse{LatexContent: out.LatexContent, Template: out.Style}
	if out.Saved != nil {
		resp.FormattedResumeID = out.Saved.ID
	}
	respond.OK(c, resp)
}

func (h *Handler) render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.TemplateIDKey, req.TemplateID)
	out, err := h.Svc.RenderTemplate(req.TemplateID, req.Fields)
	if err != nil {
		writeError(c, err, "failed to render template")
		return
	}
	respond.OK(c, RenderResponse{TemplateID: req.TemplateID, LatexContent: out})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, offset := paging.FromQuery(c)
	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeError(c, err, "failed to list formatted resumes")
		return
	}
	resp := ListResponse{Items: make([]FormattedResponse, 0, len(items)), Limit: limit, Offset: offset}
	for _, fr := range items {
		resp.Items = append(resp.Items, toFormattedResponse(fr, false))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fr, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to load formatted resume")
		return
	}
	respond.OK(c, toFormattedResponse(fr, true))
}

func (h *Handler) pdf(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	pdf, fr, err := h.Svc.RenderPDF(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to render formatted resume")
		return
	}
	c.Set(middleware.ResumeIDKey, fr.OriginalResumeID)
	respond.PDF(c, util.AttachmentName(fr.Title, ".pdf", "resume.pdf"), pdf)
}

func writeError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrResumeNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
	case errors.Is(err, ErrTemplateNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Template not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Formatted resume not found", nil)
	case errors.Is(err, ErrRenderFailed):
		respond.Error(c, http.StatusInternalServerError, "internal_error", "PDF compilation failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", internalMsg, nil)
	}
}
