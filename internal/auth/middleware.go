package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// RequireAuth guards routes that need a logged-in user. Anonymous requests
// are bounced to the login form with the original path carried in ?next= so
// login can send them back.
func (s *Sessions) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := s.Current(c); !ok {
			target := "/login?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
