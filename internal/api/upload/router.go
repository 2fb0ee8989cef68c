package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
	"github.com/IMohy/portfolio-imohy/internal/store"
)

func RegisterRoutes(router *gin.RouterGroup, st *store.Store, sessions *auth.SessionManager, uploadDir string) {
	service := NewService(st, uploadDir)
	controller := NewController(service)
	router.POST("/upload", auth.RequireSession(sessions), controller.Upload)
}
