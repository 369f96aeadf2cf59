package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response helpers

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Fail maps a coded service error onto its HTTP status.
func Fail(c *gin.Context, err error) {
	code, msg := parseErrorCode(err)
	switch code / 100 {
	case 404:
		c.JSON(http.StatusNotFound, gin.H{"error": msg})
	case 409:
		c.JSON(http.StatusConflict, gin.H{"error": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}

// parseErrorCode splits the "NNNNN:message" convention used by the
// service layer. Errors without a code map to a generic server error.
func parseErrorCode(err error) (int, string) {
	msg := err.Error()
	if len(msg) > 5 && msg[5] == ':' {
		code, e := strconv.Atoi(msg[:5])
		if e == nil {
			return code, msg[6:]
		}
	}
	return 50001, msg
}
