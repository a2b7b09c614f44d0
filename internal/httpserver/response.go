package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/domain"
)

// writeServiceError maps a service error onto the API contract: validation
// problems keep their message with a 400, everything else (DB outages
// included) stays an opaque 500 so no driver error text reaches clients.
func writeServiceError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
