package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/prompts"
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

// RegisterRoutes attaches read and download routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.delete)
	rg.GET("/resumes/:id/pdf", h.pdf)
	rg.GET("/download-resume", h.legacyDownload)
}

// RegisterGenerateRoutes attaches the LLM-backed routes, which callers rate limit.
func (h *Handler) RegisterGenerateRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if (req.JobData == nil && strings.TrimSpace(req.JobID) == "") || req.UserData == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required data: jobData or jobId, and userData", nil)
		return
	}

	in := GenerateInput{JobID: req.JobID, UserData: req.UserData}
	if req.JobData != nil {
		in.Job = &prompts.Job{
			Title:       req.JobData.JobTitle,
			Company:     req.JobData.CompanyName,
			Description: req.JobData.JobDescription,
		}
		in.InlineJobID = req.JobData.ID
	}
	if in.JobID != "" {
		c.Set(middleware.JobIDKey, in.JobID)
	}

	res, err := h.Svc.Generate(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate resume", nil)
		}
		return
	}
	c.Set(middleware.ResumeIDKey, res.ID)
	respond.Created(c, toResumeResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, offset := paging.FromQuery(c)
	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		}
		return
	}
	resp := ListResponse{Items: make([]SummaryResponse, 0, len(items)), Limit: limit, Offset: offset}
	for _, r := range items {
		resp.Items = append(resp.Items, toSummary(r))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)
	res, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err, "failed to load resume")
		return
	}
	respond.OK(c, toResumeResponse(res))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)
	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		writeError(c, err, "failed to delete resume")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) pdf(c *gin.Context) {
	h.writePDF(c, middleware.UserIDFromContext(c), c.Param("id"))
}

// legacyDownload serves GET /download-resume?resumeId=&userId=. The userId
// parameter must name the authenticated caller.
func (h *Handler) legacyDownload(c *gin.Context) {
	resumeID := strings.TrimSpace(c.Query("resumeId"))
	userID := strings.TrimSpace(c.Query("userId"))
	if resumeID == "" || userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing resumeId or userId", nil)
		return
	}
	if userID != middleware.UserIDFromContext(c) {
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
		return
	}
	h.writePDF(c, userID, resumeID)
}

func (h *Handler) writePDF(c *gin.Context, userID, id string) {
	c.Set(middleware.ResumeIDKey, id)
	pdf, err := h.Svc.RenderPDF(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Invalid resume content", nil)
		case errors.Is(err, ErrRenderFailed):
			respond.Error(c, http.StatusInternalServerError, "internal_error", "PDF compilation failed", nil)
		default:
			writeError(c, err, "failed to render resume")
		}
		return
	}
	respond.PDF(c, util.AttachmentName("resume-"+id, ".pdf", "resume.pdf"), pdf)
}

func writeError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", internalMsg, nil)
	}
}
