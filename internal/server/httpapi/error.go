package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
)

// abortWithError maps service errors onto the API's status codes and writes
// the standard {"message": ...} body. Unrecognized errors become 500 with a
// generic message so internals never leak to clients.
func (a *api) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrorForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	default:
		a.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}

	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// pathID parses the :id (or named) route parameter as int64; a malformed id
// is a 400 for the caller.
func (a *api) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}
