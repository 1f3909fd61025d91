package handlers

import (
	"log"
	"net/http"

	"quiz-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. Store failures are
// logged with detail and surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
