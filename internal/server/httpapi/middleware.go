package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/auth"
)

// accountIDKey is the gin context key holding the authenticated account id.
const accountIDKey = "pinpoint.accountID"

// authRequired verifies the bearer token and stores the account id in the
// request context. Any failure aborts the request with 401.
func authRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, common.BearerPrefix), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": common.ErrInvalidToken.Error()})
			return
		}

		c.Set(accountIDKey, id)
		c.Next()
	}
}

// accountID returns the authenticated account id placed by authRequired.
func accountID(c *gin.Context) int64 {
	return c.GetInt64(accountIDKey)
}
