// Package middleware provides the HTTP middleware for the blog.
package middleware

import (
	"net/http"
	"time"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/flash"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/session"

	"github.com/gin-gonic/gin"
)

// usernameKey is the gin context key carrying the session identity.
const usernameKey = "session_username"

// CurrentUser returns the authenticated username set by RequireAuth.
func CurrentUser(c *gin.Context) (string, bool) {
	username := c.GetString(usernameKey)
	return username, username != ""
}

type Auth struct {
	store session.Store
}

func NewAuth(store session.Store) *Auth {
	return &Auth{store: store}
}

// lookup resolves the request's session cookie to a live session.
// Expired sessions are deleted on sight.
func (a *Auth) lookup(c *gin.Context) *session.Session {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := a.store.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil {
		return nil
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = a.store.Delete(c.Request.Context(), cookie.Value)
		return nil
	}

	return sess
}

// RequireAuth only lets logged-in clients through. Anyone else gets a
// notice and a redirect to the login page; the wrapped handler never
// runs.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := a.lookup(c)
		if sess == nil {
			flash.Set(c.Writer, flash.Danger, "To view this page please login!")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(usernameKey, sess.Username)
		c.Next()
	}
}

// RequireGuest only lets anonymous clients through. A logged-in client
// is sent back to the home page with a notice.
func (a *Auth) RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := a.lookup(c); sess != nil {
			flash.Set(c.Writer, flash.Danger, "You are already logged into your account!")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Identify resolves the session if present and records the username
// without gating. Used on public pages so templates can show the
// logged-in state.
func (a *Auth) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := a.lookup(c); sess != nil {
			c.Set(usernameKey, sess.Username)
		}
		c.Next()
	}
}
