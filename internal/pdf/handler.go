// Package pdf serves the raw LaTeX to PDF compile endpoint.
package pdf

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/latex"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/util"
)

const defaultFileName = "resume.pdf"

type compileRequest struct {
	LatexContent string `json:"latexContent"`
	Filename     string `json:"filename"`
}

// Handler compiles caller-supplied LaTeX.
type Handler struct {
	Compiler latex.PDFCompiler
}

// NewHandler constructs a Handler.
func NewHandler(compiler latex.PDFCompiler) *Handler {
	return &Handler{Compiler: compiler}
}

// RegisterRoutes attaches the compile route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pdf", h.compile)
}

func (h *Handler) compile(c *gin.Context) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.LatexContent) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "LaTeX content is required", nil)
		return
	}
	out, err := h.Compiler.Compile(c.Request.Context(), req.LatexContent)
	if err != nil {
		switch {
		case errors.Is(err, latex.ErrEmptySource):
			respond.Error(c, http.StatusBadRequest, "validation_error", "LaTeX content is required", nil)
		case errors.Is(err, latex.ErrNoOutput):
			respond.Error(c, http.StatusInternalServerError, "internal_error", "PDF file was not generated", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "PDF compilation failed", nil)
		}
		return
	}
	respond.PDF(c, util.AttachmentName(req.Filename, ".pdf", defaultFileName), out)
}
