package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
)

func (a *api) createShare(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	share, err := a.svc.Shares.Create(c.Request.Context(), json.RawMessage(data))
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": share.ID})
}

// getShare spreads the stored snapshot at the top level of the response,
// with createdAt alongside, which is the shape the frontend reads.
func (a *api) getShare(c *gin.Context) {
	share, err := a.svc.Shares.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.abortWithError(c, err)
		return
	}

	body := gin.H{}
	if err := json.Unmarshal(share.Data, &body); err != nil {
		a.abortWithError(c, err)
		return
	}
	body["createdAt"] = share.CreatedAt

	c.JSON(http.StatusOK, body)
}

func (a *api) createUpload(c *gin.Context) {
	key, url, err := a.svc.Media.GetPresignedPutUrl(c.Request.Context())
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

func (a *api) getUpload(c *gin.Context) {
	// the wildcard param keeps its leading slash
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	url, err := a.svc.Media.GetPresignedGetUrl(c.Request.Context(), key)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
