package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// Double-submit cookie CSRF protection: a random token lives in a cookie and
// is echoed back through a hidden form field on every mutating POST.

const (
	csrfCookieName = "csrf"
	csrfFieldName  = "csrf_token"
	csrfMaxAge     = 86400
)

func newCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// EnsureCSRFToken returns the request's CSRF token, minting and setting a
// cookie when none exists yet. Call it from every handler that renders a
// form.
func EnsureCSRFToken(c *gin.Context, secure bool) string {
	if tok, err := c.Cookie(csrfCookieName); err == nil && tok != "" {
		return tok
	}
	tok, err := newCSRFToken()
	if err != nil {
		return ""
	}
	c.SetCookie(csrfCookieName, tok, csrfMaxAge, "/", "", secure, false)
	return tok
}

// ValidateCSRF compares the cookie token against the submitted form field in
// constant time.
func ValidateCSRF(c *gin.Context) bool {
	cookieTok, err := c.Cookie(csrfCookieName)
	if err != nil || cookieTok == "" {
		return false
	}
	formTok := c.PostForm(csrfFieldName)
	if formTok == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieTok), []byte(formTok)) == 1
}
