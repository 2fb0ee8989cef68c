package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

// RequireSession rejects API writes that lack a valid session cookie. The
// check runs before any store access.
func RequireSession(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
			return
		}
		user, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Set("sessionUser", user)
		c.Next()
	}
}

// RedirectGate protects the dashboard pages and keeps authenticated users
// off the login page: /dashboard* without a session goes to /login, /login
// with a session goes back to /dashboard.
func RedirectGate(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isDashboard := strings.HasPrefix(path, "/dashboard")
		isLogin := path == "/login"
		if !isDashboard && !isLogin {
			c.Next()
			return
		}

		authenticated := false
		if token, err := c.Cookie(SessionCookie); err == nil {
			if _, err := sessions.Verify(token); err == nil {
				authenticated = true
			}
		}

		if isDashboard && !authenticated {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if isLogin && authenticated && c.Request.Method == http.MethodGet {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
