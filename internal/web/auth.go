package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/flash"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/forms"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/session"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handler) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{
		"Form":   forms.RegisterForm{},
		"Errors": map[string]string{},
	})
}

func (h *Handler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	errs := forms.Validate(form)
	if len(errs) > 0 {
		h.render(c, http.StatusOK, "register.html", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	_, err := h.users.Register(
		c.Request.Context(),
		form.Name,
		form.Email,
		form.Username,
		form.Password,
	)

	if errors.Is(err, user.ErrUsernameTaken) {
		errs["username"] = "This username is already taken."
		h.render(c, http.StatusOK, "register.html", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	logrus.WithField("username", form.Username).Info("user registered")

	flash.Set(c.Writer, flash.Success, "You have successfully registered.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{
		"Form": forms.LoginForm{},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	err := h.users.Authenticate(c.Request.Context(), form.Username, form.Password)

	switch {
	case errors.Is(err, user.ErrNotFound):
		flash.Set(c.Writer, flash.Danger, "No user found with this username!")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	case errors.Is(err, user.ErrInvalidPassword):
		logrus.WithField("username", form.Username).Warn("failed login attempt")
		flash.Set(c.Writer, flash.Danger, "Password is incorrect! Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	case err != nil:
		h.serverError(c, err)
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		h.serverError(c, err)
		return
	}

	expiresAt := time.Now().Add(h.sessionTTL)

	if err := h.sessions.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			Username:  form.Username,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		h.serverError(c, err)
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, h.cookieOpts)

	logrus.WithField("username", form.Username).Info("user logged in")

	flash.Set(c.Writer, flash.Success, "You have successfully logged in.")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session unconditionally. No precondition: logging
// out while anonymous is a harmless redirect home.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best effort: an unreachable store still logs the client out
		_ = h.sessions.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, h.cookieOpts)
	c.Redirect(http.StatusSeeOther, "/")
}
