package utils

import (
	"errors"
	"net/http"

	"backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// WriteError maps a service error to its HTTP response. Field-scoped
// validation errors are reported under the field name, everything else under
// "error". Unrecognized errors become an opaque 500; the cause is logged by
// the service that produced it.
func WriteError(c *gin.Context, err error) {
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Message})
		return
	}

	var fb *apperr.ForbiddenError
	if errors.As(err, &fb) {
		c.JSON(http.StatusForbidden, gin.H{"error": fb.Message})
		return
	}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		if ve.Field != "" {
			c.JSON(http.StatusBadRequest, gin.H{ve.Field: ve.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
