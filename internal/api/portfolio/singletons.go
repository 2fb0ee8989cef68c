package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (ctrl *Controller) GetHero(c *gin.Context) {
	hero, err := ctrl.service.Hero()
	if err != nil {
		utils.Zlog.Error("Failed to fetch hero", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch hero data")
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (ctrl *Controller) PutHero(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	hero, err := ctrl.service.UpsertHero(body)
	if err != nil {
		utils.Zlog.Error("Failed to update hero", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update hero data")
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (ctrl *Controller) GetAbout(c *gin.Context) {
	about, err := ctrl.service.About()
	if err != nil {
		utils.Zlog.Error("Failed to fetch about", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch about data")
		return
	}
	c.JSON(http.StatusOK, about)
}

func (ctrl *Controller) PutAbout(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	about, err := ctrl.service.UpsertAbout(body)
	if err != nil {
		utils.Zlog.Error("Failed to update about", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update about data")
		return
	}
	c.JSON(http.StatusOK, about)
}

func (ctrl *Controller) GetSettings(c *gin.Context) {
	settings, err := ctrl.service.Settings()
	if err != nil {
		utils.Zlog.Error("Failed to fetch settings", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ctrl *Controller) PutSettings(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	settings, err := ctrl.service.UpdateSettings(body)
	if err != nil {
		utils.Zlog.Error("Failed to update settings", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
