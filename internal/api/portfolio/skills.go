package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (ctrl *Controller) ListSkills(c *gin.Context) {
	skills, err := ctrl.service.Skills()
	if err != nil {
		utils.Zlog.Error("Failed to fetch skills", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (ctrl *Controller) CreateSkill(c *gin.Context) {
	var in types.SkillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	skill, err := ctrl.service.CreateSkill(in)
	if err != nil {
		utils.Zlog.Error("Failed to create skill", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to create skill")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (ctrl *Controller) UpdateSkill(c *gin.Context) {
	id, body, ok := bindUpdate(c)
	if !ok {
		return
	}
	skill, err := ctrl.service.UpdateSkill(id, body)
	if err != nil {
		utils.Zlog.Error("Failed to update skill", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update skill")
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (ctrl *Controller) DeleteSkill(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := ctrl.service.DeleteSkill(id); err != nil {
		utils.Zlog.Error("Failed to delete skill", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to delete skill")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
