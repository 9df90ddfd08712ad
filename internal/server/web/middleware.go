package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/authgate/internal/common"
	"github.com/akarpov87/authgate/internal/server/models"
)

const contextUserKey = "web.user"

// requireAuth resolves the session cookie to a user record before protected
// handlers run. A missing, expired, tampered or orphaned token all produce
// the same redirect to the login page; the cause is logged, never surfaced.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := s.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "session rejected", "reason", err)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
