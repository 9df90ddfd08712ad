package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/authgate/internal/common"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (s *Server) handleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// handleLogin processes the login form. Any credential failure renders the
// same 401 page with the same message; the response never reveals whether
// the username or the password was wrong.
func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Invalid": true,
			"Message": "Both username and password are required.",
		})
		return
	}

	user, err := s.sessions.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		s.logger.Info(c.Request.Context(), "login rejected", "username", username)
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Invalid": true,
			"Message": "Invalid username or password.",
		})
		return
	}

	token, err := s.sessions.IssueToken(user)
	if err != nil {
		s.logger.Error(c.Request.Context(), "issuing token", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Invalid": true,
			"Message": "Something went wrong. Please try again.",
		})
		return
	}

	s.setSessionCookie(c, token, int(s.sessions.TokenTTL().Seconds()))
	c.Redirect(http.StatusFound, "/home")
}

func (s *Server) handleLogout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) handleHome(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	pub := user.Public()
	c.HTML(http.StatusOK, "home.html", gin.H{
		"User": pub,
	})
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(common.SessionCookieName, token, maxAge, "/", "", s.cookieSecure, true)
}
