package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (ctrl *Controller) ListMedia(c *gin.Context) {
	media, err := ctrl.service.MediaList()
	if err != nil {
		utils.Zlog.Error("Failed to fetch media", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	c.JSON(http.StatusOK, media)
}

func (ctrl *Controller) GetStats(c *gin.Context) {
	stats, err := ctrl.service.Stats()
	if err != nil {
		utils.Zlog.Error("Failed to load stats", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
