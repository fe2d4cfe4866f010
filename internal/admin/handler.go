package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vannda/pencraft/internal/auth"
	"github.com/vannda/pencraft/internal/posts"
	"github.com/vannda/pencraft/internal/web"
)

// Handlers covers the authenticated authoring surface: create, edit, delete.
// All routes here sit behind Sessions.RequireAuth, so Current always
// resolves.
type Handlers struct {
	repo     posts.Repository
	sessions *auth.Sessions
	secure   bool
}

func NewHandlers(repo posts.Repository, sessions *auth.Sessions, secureCookies bool) *Handlers {
	return &Handlers{repo: repo, sessions: sessions, secure: secureCookies}
}

func (h *Handlers) NewPostFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "post_form.html", gin.H{
		"title":     "New post",
		"action":    "/admin/post/",
		"form":      web.PostForm{},
		"csrfToken": web.EnsureCSRFToken(c, h.secure),
	})
}

func (h *Handlers) CreatePostHandler(c *gin.Context) {
	if !web.ValidateCSRF(c) {
		c.String(http.StatusForbidden, "Invalid CSRF token")
		return
	}

	var form web.PostForm
	if errs := web.Bind(c, &form); errs != nil {
		c.HTML(http.StatusBadRequest, "post_form.html", gin.H{
			"title":     "New post",
			"action":    "/admin/post/",
			"errors":    errs,
			"form":      form,
			"csrfToken": web.EnsureCSRFToken(c, h.secure),
		})
		return
	}

	ident, _ := h.sessions.Current(c)
	post, err := h.repo.Create(c.Request.Context(), ident.ID, form.Title, form.Category, form.Content)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to create post"})
		return
	}

	c.Redirect(http.StatusFound, post.PublicURL())
}

func (h *Handlers) EditPostFormHandler(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Post not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to load post"})
		return
	}

	ident, _ := h.sessions.Current(c)
	if post.UserID != ident.ID {
		c.HTML(http.StatusForbidden, "error.html", gin.H{"error": "You do not own this post"})
		return
	}

	c.HTML(http.StatusOK, "post_form.html", gin.H{
		"title":  "Edit post",
		"action": "/admin/post/edit/" + post.Slug,
		"form": web.PostForm{
			Title:    post.Title,
			Category: post.Category,
			Content:  post.Content,
		},
		"csrfToken": web.EnsureCSRFToken(c, h.secure),
	})
}

func (h *Handlers) UpdatePostHandler(c *gin.Context) {
	if !web.ValidateCSRF(c) {
		c.String(http.StatusForbidden, "Invalid CSRF token")
		return
	}

	post, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Post not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to load post"})
		return
	}

	var form web.PostForm
	if errs := web.Bind(c, &form); errs != nil {
		c.HTML(http.StatusBadRequest, "post_form.html", gin.H{
			"title":     "Edit post",
			"action":    "/admin/post/edit/" + post.Slug,
			"errors":    errs,
			"form":      form,
			"csrfToken": web.EnsureCSRFToken(c, h.secure),
		})
		return
	}

	ident, _ := h.sessions.Current(c)
	if err := h.repo.Update(c.Request.Context(), post, form.Title, form.Category, form.Content, ident.ID); err != nil {
		if errors.Is(err, posts.ErrForbidden) {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"error": "You do not own this post"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to update post"})
		return
	}

	c.Redirect(http.StatusFound, post.PublicURL())
}

// DeletePostHandler answers 404 both for slugs that do not exist and for
// posts the requester does not own, so delete never discloses whether a
// foreign post exists.
func (h *Handlers) DeletePostHandler(c *gin.Context) {
	if !web.ValidateCSRF(c) {
		c.String(http.StatusForbidden, "Invalid CSRF token")
		return
	}

	post, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Post not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to load post"})
		return
	}

	ident, _ := h.sessions.Current(c)
	if err := h.repo.Delete(c.Request.Context(), post, ident.ID); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Post not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to delete post"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}
