package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the API error envelope: {"message": "..."}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Internal logs the underlying error server-side and answers with a generic
// message. The original error never reaches the caller.
func Internal(c *gin.Context, message string, err error) {
	log.Printf("internal error: method=%s path=%s error=%v", c.Request.Method, c.Request.URL.Path, err)
	Error(c, http.StatusInternalServerError, message)
}
