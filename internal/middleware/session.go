package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/festy23/swimdq/internal/config"
)

// NewSessionStore creates the signed cookie store that keeps DQ drafts.
func NewSessionStore(cfg config.SessionConfig) sessions.Store {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Sessions attaches the named session to every request.
func Sessions(cfg config.SessionConfig, store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(cfg.Name, store)
}
