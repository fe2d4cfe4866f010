package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vannda/pencraft/internal/logger"
	"github.com/vannda/pencraft/internal/users"
)

const (
	sessionCookieName = "session"

	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour

	identityKey = "auth_identity"
)

// Identity is the slice of a user the session layer cares about. Handlers
// get it from the request context; nobody downstream sees the full User row.
type Identity struct {
	ID   uint
	Name string
}

// Sessions issues and reads the signed session cookie. The signing secret is
// injected at construction; nothing here reads the environment.
type Sessions struct {
	secret    []byte
	secure    bool
	directory users.Directory
	log       *logger.Logger
}

func NewSessions(secret string, secure bool, directory users.Directory, baseLog *logger.Logger) *Sessions {
	return &Sessions{
		secret:    []byte(secret),
		secure:    secure,
		directory: directory,
		log:       baseLog.With("service", "sessions"),
	}
}

// Login signs a token for the user and sets it as an HttpOnly cookie.
// remember stretches the lifetime from a day to thirty.
func (s *Sessions) Login(c *gin.Context, user *users.User, remember bool) error {
	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	token, err := signToken(user.ID, user.Name, s.secret, ttl)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookieName, token, int(ttl.Seconds()), "/", "", s.secure, true)
	s.log.Info("session issued", "user_id", user.ID, "remember", remember)
	return nil
}

func (s *Sessions) Logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", s.secure, true)
}

// Current resolves the request's identity, or returns false for anonymous
// visitors. The token only names the user; the directory lookup confirms the
// account still exists.
func (s *Sessions) Current(c *gin.Context) (Identity, bool) {
	if v, ok := c.Get(identityKey); ok {
		return v.(Identity), true
	}

	tokenStr, err := c.Cookie(sessionCookieName)
	if err != nil || tokenStr == "" {
		return Identity{}, false
	}
	claims, err := parseToken(tokenStr, s.secret)
	if err != nil {
		return Identity{}, false
	}
	user, err := s.directory.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return Identity{}, false
	}

	ident := Identity{ID: user.ID, Name: user.Name}
	c.Set(identityKey, ident)
	return ident, true
}
