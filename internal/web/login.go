package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginSubmit checks the credentials and issues the session cookie.
// Failures re-render the form with the username kept.
func (h *Handler) LoginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, ok := h.auth.Authenticate(username, password)
	if !ok {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error":    "Invalid credentials",
			"Username": username,
		})
		return
	}

	h.auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	h.auth.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
