package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vannda/pencraft/internal/users"
	"github.com/vannda/pencraft/internal/web"
)

// Login never reveals whether the email exists; unknown email and wrong
// password produce the same message.
const invalidCredentialsMsg = "Invalid credentials. Please check your email and password."

type Handlers struct {
	sessions  *Sessions
	directory users.Directory
	secure    bool
}

func NewHandlers(sessions *Sessions, directory users.Directory, secureCookies bool) *Handlers {
	return &Handlers{sessions: sessions, directory: directory, secure: secureCookies}
}

func (h *Handlers) LoginFormHandler(c *gin.Context) {
	if _, ok := h.sessions.Current(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title":     "Log in",
		"email":     "",
		"next":      c.Query("next"),
		"csrfToken": web.EnsureCSRFToken(c, h.secure),
	})
}

func (h *Handlers) LoginPostHandler(c *gin.Context) {
	if _, ok := h.sessions.Current(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if !web.ValidateCSRF(c) {
		c.String(http.StatusForbidden, "Invalid CSRF token")
		return
	}

	var form web.LoginForm
	if errs := web.Bind(c, &form); errs != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"title":     "Log in",
			"errors":    errs,
			"email":     form.Email,
			"next":      c.Query("next"),
			"csrfToken": web.EnsureCSRFToken(c, h.secure),
		})
		return
	}

	user, err := h.directory.GetByEmail(c.Request.Context(), form.Email)
	if err != nil || !users.CheckPassword(user.PasswordHash, form.Password) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title":     "Log in",
			"error":     invalidCredentialsMsg,
			"email":     form.Email,
			"next":      c.Query("next"),
			"csrfToken": web.EnsureCSRFToken(c, h.secure),
		})
		return
	}

	if err := h.sessions.Login(c, user, form.Remember); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to start session"})
		return
	}

	c.Redirect(http.StatusFound, SafeRedirect(c.Query("next"), c.Request.Host))
}

func (h *Handlers) SignupFormHandler(c *gin.Context) {
	if _, ok := h.sessions.Current(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"title":     "Sign up",
		"name":      "",
		"email":     "",
		"csrfToken": web.EnsureCSRFToken(c, h.secure),
	})
}

func (h *Handlers) SignupPostHandler(c *gin.Context) {
	if _, ok := h.sessions.Current(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if !web.ValidateCSRF(c) {
		c.String(http.StatusForbidden, "Invalid CSRF token")
		return
	}

	var form web.SignupForm
	if errs := web.Bind(c, &form); errs != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"title":     "Sign up",
			"errors":    errs,
			"name":      form.Name,
			"email":     form.Email,
			"csrfToken": web.EnsureCSRFToken(c, h.secure),
		})
		return
	}

	user, err := h.directory.Create(c.Request.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			c.HTML(http.StatusConflict, "signup.html", gin.H{
				"title":     "Sign up",
				"error":     "Email already registered. Please use another one or log in.",
				"name":      form.Name,
				"email":     form.Email,
				"csrfToken": web.EnsureCSRFToken(c, h.secure),
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to create account"})
		return
	}

	if err := h.sessions.Login(c, user, false); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Failed to start session"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) LogoutHandler(c *gin.Context) {
	h.sessions.Logout(c)
	c.Redirect(http.StatusFound, "/")
}
