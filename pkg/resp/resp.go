package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error envelopes: {"error": msg} for parameter and server failures,
// {"message": msg} for not-found outcomes.

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
