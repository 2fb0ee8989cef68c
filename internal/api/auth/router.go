package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, ctrl *Controller) {
	router.POST("/auth/login", ctrl.Login)
	router.GET("/auth/logout", ctrl.Logout)
}
