package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/config"
	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

// Controller handles login and logout for the admin session.
type Controller struct {
	sessions *SessionManager
	username string
	password string
}

func NewController(sessions *SessionManager, cfg *config.Config) *Controller {
	return &Controller{
		sessions: sessions,
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
	}
}

// Authenticate checks the credentials and returns a session token on
// success. Shared by the JSON endpoint and the login form.
func (ctrl *Controller) Authenticate(username, password string) (string, bool) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(ctrl.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(ctrl.password)) == 1
	if !userOK || !passOK {
		return "", false
	}
	token, err := ctrl.sessions.Issue(username)
	if err != nil {
		utils.Zlog.Error("Failed to issue session token", zap.Error(err))
		return "", false
	}
	return token, true
}

// SetSessionCookie attaches the session cookie to the response.
func (ctrl *Controller) SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(ctrl.sessions.TTL().Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func (ctrl *Controller) ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

func (ctrl *Controller) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid credentials payload"})
		return
	}

	token, ok := ctrl.Authenticate(req.Username, req.Password)
	if !ok {
		utils.Zlog.Warn("Failed admin login attempt", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	ctrl.SetSessionCookie(c, token)
	utils.Zlog.Info("Admin login", zap.String("username", req.Username))
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

func (ctrl *Controller) Logout(c *gin.Context) {
	ctrl.ClearSessionCookie(c)
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
