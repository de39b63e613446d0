// Package web holds the HTML-facing request handlers.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/flash"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/middleware"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/post"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserService is the slice of the user service the handlers need.
type UserService interface {
	Register(ctx context.Context, name, email, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) error
}

// PostService is the slice of the post service the handlers need.
type PostService interface {
	Create(ctx context.Context, title, author, content string) (int64, error)
	FindByID(ctx context.Context, id int64) (*post.Post, error)
	FindOwned(ctx context.Context, id int64, author string) (*post.Post, error)
	FindAll(ctx context.Context) ([]post.Post, error)
	FindByAuthor(ctx context.Context, author string) ([]post.Post, error)
	SearchByTitle(ctx context.Context, keyword string) ([]post.Post, error)
	UpdateOwned(ctx context.Context, id int64, author, title, content string) (bool, error)
	DeleteOwned(ctx context.Context, id int64, author string) (bool, error)
}

type Handler struct {
	users      UserService
	posts      PostService
	sessions   session.Store
	sessionTTL time.Duration
	cookieOpts session.CookieOptions
}

func NewHandler(
	users UserService,
	posts PostService,
	sessions session.Store,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		users:      users,
		posts:      posts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		cookieOpts: session.CookieOptions{
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// RegisterRoutes wires every page onto the router. The gates are
// composed here, at registration time, not inside the handlers.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.Auth) {
	pub := r.Group("", auth.Identify())
	pub.GET("/", h.Home)
	pub.GET("/about", h.About)
	pub.GET("/posts", h.ListPosts)
	pub.GET("/posts/:id", h.PostDetail)
	// Shares the first segment's param name with the detail route; gin
	// requires that. Here the first segment is a post name, not an id.
	pub.GET("/posts/:id/:num", h.PostStub)
	pub.GET("/register", h.RegisterForm)
	pub.POST("/register", h.Register)
	pub.GET("/search", h.SearchRedirect)
	pub.POST("/search", h.Search)
	pub.GET("/logout", h.Logout)

	guest := r.Group("", auth.RequireGuest())
	guest.GET("/login", h.LoginForm)
	guest.POST("/login", h.Login)

	authed := r.Group("", auth.RequireAuth())
	authed.GET("/dashboard", h.Dashboard)
	authed.GET("/addposts", h.AddPostForm)
	authed.POST("/addposts", h.AddPost)
	authed.GET("/edit/:id", h.EditPostForm)
	authed.POST("/edit/:id", h.EditPost)
	authed.GET("/delete/:id", h.DeletePost)
}

// render draws a template with the pending flash notice and the
// session identity merged into the data bag.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	data["Flash"] = flash.Take(c.Writer, c.Request)
	if username, ok := middleware.CurrentUser(c); ok {
		data["User"] = username
	}

	c.HTML(status, name, data)
}

// serverError is the catch-all for store failures: log and answer with
// a bare 500. No retries.
func (h *Handler) serverError(c *gin.Context, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")

	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}
