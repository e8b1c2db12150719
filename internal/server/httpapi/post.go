package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

type createPostRequest struct {
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Message  string   `json:"message"`
	Image    *string  `json:"image"`
}

func (a *api) listPosts(c *gin.Context) {
	posts, err := a.svc.Posts.ListAll(c.Request.Context())
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (a *api) getPost(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	post, err := a.svc.Posts.Get(c.Request.Context(), id)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *api) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	post, err := a.svc.Posts.Create(c.Request.Context(), accountID(c), &models.Post{
		Title:    req.Title,
		Location: req.Location,
		Category: req.Category,
		Tags:     req.Tags,
		Message:  req.Message,
		Image:    req.Image,
	})
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (a *api) updatePost(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	var patch models.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		a.abortWithError(c, common.ErrorValidation)
		return
	}
	post, err := a.svc.Posts.Update(c.Request.Context(), accountID(c), id, &patch)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *api) deletePost(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	if err := a.svc.Posts.Delete(c.Request.Context(), accountID(c), id); err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (a *api) upvotePost(c *gin.Context) {
	id, ok := a.pathID(c, "id")
	if !ok {
		return
	}
	post, err := a.svc.Posts.Upvote(c.Request.Context(), id)
	if err != nil {
		a.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
