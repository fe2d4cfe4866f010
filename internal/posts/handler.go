package posts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vannda/pencraft/internal/auth"
)

type Handlers struct {
	repo     Repository
	sessions *auth.Sessions
}

func NewHandlers(repo Repository, sessions *auth.Sessions) *Handlers {
	return &Handlers{repo: repo, sessions: sessions}
}

// HomeHandler lists every post, newest first.
func (h *Handlers) HomeHandler(c *gin.Context) {
	list, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to load posts"})
		return
	}

	ident, authed := h.sessions.Current(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":         "Home",
		"posts":         list,
		"authenticated": authed,
		"currentUser":   ident,
	})
}

func (h *Handlers) DetailHandler(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Post not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to load post"})
		return
	}

	ident, authed := h.sessions.Current(c)
	c.HTML(http.StatusOK, "post_view.html", gin.H{
		"title":         post.Title,
		"post":          post,
		"authenticated": authed,
		"currentUser":   ident,
		"isOwner":       authed && ident.ID == post.UserID,
	})
}
