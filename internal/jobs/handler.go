package jobs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/paging"
	"resume-builder/internal/shared/server/respond"
)

const (
	msgProtected   = "This job site is protected by Cloudflare and cannot be parsed."
	msgExtractFail = "Failed to extract job data from URL"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/extract", h.extract)
	rg.POST("/jobs", h.save)
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.DELETE("/jobs/:id", h.delete)
	rg.PATCH("/jobs/:id/applied", h.markApplied)
}

func (h *Handler) extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.JobURL) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job URL is required", nil)
		return
	}
	ext, err := h.Svc.Extract(c.Request.Context(), req.JobURL)
	if err != nil {
		writeExtractError(c, err)
		return
	}
	respond.OK(c, toExtractResponse(ext))
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	var (
		job JobDescription
		err error
	)
	if strings.TrimSpace(req.JobDescription) != "" {
		job, err = h.Svc.SaveManual(c.Request.Context(), userID, ManualInput{
			Title:       req.JobTitle,
			Company:     req.CompanyName,
			Description: req.JobDescription,
			SourceURL:   req.JobURL,
		})
	} else {
		if strings.TrimSpace(req.JobURL) == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Job URL is required", nil)
			return
		}
		job, err = h.Svc.SaveFromURL(c.Request.Context(), userID, req.JobURL)
	}
	if err != nil {
		writeExtractError(c, err)
		return
	}
	c.Set(middleware.JobIDKey, job.ID)
	respond.Created(c, toJobResponse(job))
}

func writeExtractError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrProtected):
		respond.Error(c, http.StatusForbidden, "protected", msgProtected, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", msgExtractFail, nil)
	}
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
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		}
		return
	}
	resp := ListResponse{Items: make([]JobResponse, 0, len(items)), Limit: limit, Offset: offset}
	for _, job := range items {
		resp.Items = append(resp.Items, toJobResponse(job))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.JobIDKey, id)
	job, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeRecordError(c, err, "failed to load job")
		return
	}
	respond.OK(c, toJobResponse(job))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.JobIDKey, id)
	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		writeRecordError(c, err, "failed to delete job")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) markApplied(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set(middleware.JobIDKey, id)
	var req appliedRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	job, err := h.Svc.MarkApplied(c.Request.Context(), userID, id, req.ResumeID)
	if err != nil {
		writeRecordError(c, err, "failed to update job")
		return
	}
	respond.OK(c, toJobResponse(job))
}

func writeRecordError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", internalMsg, nil)
	}
}
