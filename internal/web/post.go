package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/flash"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/forms"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/middleware"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/post"

	"github.com/gin-gonic/gin"
)

const deniedNotice = "There is no such post with this id or you have no right to touch it!"

func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.posts.FindAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "posts.html", gin.H{"Posts": posts})
}

// PostDetail renders one post by id. An unknown or malformed id draws
// the same page with no post; every post is publicly viewable.
func (h *Handler) PostDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render(c, http.StatusOK, "post.html", gin.H{})
		return
	}

	p, err := h.posts.FindByID(c.Request.Context(), id)
	if errors.Is(err, post.ErrNotFound) {
		h.render(c, http.StatusOK, "post.html", gin.H{})
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "post.html", gin.H{"Post": p})
}

// PostStub answers the demo route without touching the store.
func (h *Handler) PostStub(c *gin.Context) {
	name := c.Param("id")
	id := c.Param("num")
	c.String(http.StatusOK, "Post Name: %s, Post id: %s", name, id)
}

func (h *Handler) Dashboard(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)

	posts, err := h.posts.FindByAuthor(c.Request.Context(), username)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{"Posts": posts})
}

func (h *Handler) AddPostForm(c *gin.Context) {
	h.render(c, http.StatusOK, "addpost.html", gin.H{
		"Form":   forms.PostForm{},
		"Errors": map[string]string{},
	})
}

func (h *Handler) AddPost(c *gin.Context) {
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	if errs := forms.Validate(form); len(errs) > 0 {
		h.render(c, http.StatusOK, "addpost.html", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	username, _ := middleware.CurrentUser(c)

	if _, err := h.posts.Create(c.Request.Context(), form.Title, username, form.Content); err != nil {
		h.serverError(c, err)
		return
	}

	flash.Set(c.Writer, flash.Success, "Post has been created successfully.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// EditPostForm loads the current title and content for editing. The
// lookup is one combined existence+ownership query; a miss of either
// kind gets the same denial.
func (h *Handler) EditPostForm(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.denyPostAccess(c)
		return
	}

	p, err := h.posts.FindOwned(c.Request.Context(), id, username)
	if errors.Is(err, post.ErrNotFound) {
		h.denyPostAccess(c)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "update.html", gin.H{
		"ID":     p.ID,
		"Form":   forms.PostForm{Title: p.Title, Content: p.Content},
		"Errors": map[string]string{},
	})
}

// EditPost re-validates and re-checks ownership. Passing the GET-time
// check earlier does not exempt the mutating request.
func (h *Handler) EditPost(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.denyPostAccess(c)
		return
	}

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	if errs := forms.Validate(form); len(errs) > 0 {
		h.render(c, http.StatusOK, "update.html", gin.H{
			"ID":     id,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	ok, err := h.posts.UpdateOwned(c.Request.Context(), id, username, form.Title, form.Content)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !ok {
		h.denyPostAccess(c)
		return
	}

	flash.Set(c.Writer, flash.Success, "Post has been successfully updated.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) DeletePost(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.denyPostAccess(c)
		return
	}

	ok, err := h.posts.DeleteOwned(c.Request.Context(), id, username)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !ok {
		h.denyPostAccess(c)
		return
	}

	flash.Set(c.Writer, flash.Success, "The post has been successfully deleted.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SearchRedirect sends keyword-less GETs home without searching.
func (h *Handler) SearchRedirect(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Search(c *gin.Context) {
	keyword := c.PostForm("keyword")

	posts, err := h.posts.SearchByTitle(c.Request.Context(), keyword)
	if err != nil {
		h.serverError(c, err)
		return
	}

	if len(posts) == 0 {
		flash.Set(c.Writer, flash.Warning, "No post with the searched keyword!")
		c.Redirect(http.StatusSeeOther, "/posts")
		return
	}

	h.render(c, http.StatusOK, "posts.html", gin.H{
		"Posts":   posts,
		"Keyword": keyword,
	})
}

func (h *Handler) denyPostAccess(c *gin.Context) {
	flash.Set(c.Writer, flash.Danger, deniedNotice)
	c.Redirect(http.StatusSeeOther, "/")
}
