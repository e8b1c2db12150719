// Package httpapi exposes the public REST surface of the Pinpoint server:
// routing, bearer-token middleware, and the JSON handlers in front of the
// service layer.
package httpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/avolkovs/pinpoint/internal/logging"
	"github.com/avolkovs/pinpoint/internal/server/config"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

// AccountProvider is the slice of the account service the handlers need.
type AccountProvider interface {
	Register(ctx context.Context, email, password string, name *string) (*models.Account, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
}

type PinProvider interface {
	ListOwn(ctx context.Context, accountID int64) ([]*models.Pin, error)
	Get(ctx context.Context, id int64) (*models.Pin, error)
	Create(ctx context.Context, accountID int64, message string, image, color *string) (*models.Pin, error)
	Update(ctx context.Context, accountID, id int64, patch *models.PinPatch) (*models.Pin, error)
	Delete(ctx context.Context, accountID, id int64) error
	GetLikes(ctx context.Context, id int64) (int64, error)
	Like(ctx context.Context, id int64) (int64, error)
	Unlike(ctx context.Context, id int64) (int64, error)
}

type PostProvider interface {
	ListAll(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, accountID int64, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, accountID, id int64, patch *models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, accountID, id int64) error
	Upvote(ctx context.Context, id int64) (*models.Post, error)
}

type CommentProvider interface {
	ListByPin(ctx context.Context, pinID int64) ([]*models.Comment, error)
	Create(ctx context.Context, accountID, pinID int64, body string) (*models.Comment, error)
	Update(ctx context.Context, accountID, id int64, body string) (*models.Comment, error)
	Delete(ctx context.Context, accountID, id int64) error
}

type ShareProvider interface {
	Create(ctx context.Context, data json.RawMessage) (*models.Share, error)
	Get(ctx context.Context, id string) (*models.Share, error)
}

type MediaProvider interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

// Services bundles everything the router serves.
type Services struct {
	Accounts AccountProvider
	Pins     PinProvider
	Posts    PostProvider
	Comments CommentProvider
	Shares   ShareProvider
	Media    MediaProvider
}

type api struct {
	svc    *Services
	logger logging.Logger
}

// NewRouter builds the gin engine with CORS, the public routes, and the
// bearer-token protected API group.
func NewRouter(cfg *config.Config, logger logging.Logger, svc *Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300 * time.Second,
	}))

	a := &api{svc: svc, logger: logger}

	router.GET("/heartbeat", a.heartbeat)

	public := router.Group("/api")
	{
		public.POST("/register", a.register)
		public.POST("/login", a.login)
		// share links are meant to be opened without an account
		public.GET("/share/:id", a.getShare)
	}

	protected := router.Group("/api")
	protected.Use(authRequired([]byte(cfg.SecretKey)))
	{
		protected.GET("/account", a.currentAccount)

		protected.GET("/pins", a.listPins)
		protected.GET("/pins/:id", a.getPin)
		protected.POST("/pins", a.createPin)
		protected.PUT("/pins/:id", a.updatePin)
		protected.DELETE("/pins/:id", a.deletePin)
		// legacy delete shape: id travels in the body
		protected.PUT("/pins", a.deletePinLegacy)

		protected.GET("/pins/:id/comments", a.listComments)
		protected.POST("/pins/:id/comments", a.createComment)
		protected.PUT("/pins/:id/comments/:commentId", a.updateComment)
		protected.DELETE("/pins/:id/comments/:commentId", a.deleteComment)

		protected.GET("/likes/:id", a.getLikes)
		protected.POST("/likes/:id", a.like)
		protected.DELETE("/likes/:id", a.unlike)

		protected.GET("/posts", a.listPosts)
		protected.GET("/posts/:id", a.getPost)
		protected.POST("/posts", a.createPost)
		protected.PUT("/posts/:id", a.updatePost)
		protected.DELETE("/posts/:id", a.deletePost)
		protected.POST("/posts/:id/upvote", a.upvotePost)

		protected.POST("/share", a.createShare)

		protected.POST("/uploads", a.createUpload)
		protected.GET("/uploads/*key", a.getUpload)
	}

	return router
}

func (a *api) heartbeat(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}
