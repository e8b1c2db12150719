package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
)

type commentRequest struct {
	Comment string `json:"comment"`
}

func (a *api) listComments(c *gin.Context) {
	pinID, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	comments, err := a.svc.Comments.ListByPin(c.Request.Context(), pinID)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (a *api) createComment(c *gin.Context) {
	pinID, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	comment, err := a.svc.Comments.Create(c.Request.Context(), accountID(c), pinID, req.Comment)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (a *api) updateComment(c *gin.Context) {
	id, ok := a.pathID(c, "commentId")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	comment, err := a.svc.Comments.Update(c.Request.Context(), accountID(c), id, req.Comment)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (a *api) deleteComment(c *gin.Context) {
	id, ok := a.pathID(c, "commentId")
	if !ok {
		return
	}
	if err := a.svc.Comments.Delete(c.Request.Context(), accountID(c), id); err != nil {
		a.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
