package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (ctrl *Controller) ListExperience(c *gin.Context) {
	entries, err := ctrl.service.Experience()
	if err != nil {
		utils.Zlog.Error("Failed to fetch experience", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctrl *Controller) CreateExperience(c *gin.Context) {
	var in types.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	exp, err := ctrl.service.CreateExperience(in)
	if err != nil {
		utils.Zlog.Error("Failed to create experience", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to create experience")
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (ctrl *Controller) UpdateExperience(c *gin.Context) {
	id, body, ok := bindUpdate(c)
	if !ok {
		return
	}
	exp, err := ctrl.service.UpdateExperience(id, body)
	if err != nil {
		utils.Zlog.Error("Failed to update experience", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update experience")
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (ctrl *Controller) DeleteExperience(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := ctrl.service.DeleteExperience(id); err != nil {
		utils.Zlog.Error("Failed to delete experience", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to delete experience")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
