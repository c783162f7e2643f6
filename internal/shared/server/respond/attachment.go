package respond

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Attachment writes data as a downloadable file with an explicit length.
func Attachment(c *gin.Context, contentType, fileName string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}

// PDF writes a PDF attachment.
func PDF(c *gin.Context, fileName string, data []byte) {
	Attachment(c, "application/pdf", fileName, data)
}
