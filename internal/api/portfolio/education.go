package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

// GetEducation returns both kinds served by the shared endpoint.
func (ctrl *Controller) GetEducation(c *gin.Context) {
	list, err := ctrl.service.EducationList()
	if err != nil {
		utils.Zlog.Error("Failed to fetch education", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch education data")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctrl *Controller) CreateEducation(c *gin.Context) {
	var req types.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	entry, err := ctrl.service.CreateEducationEntry(req)
	if err != nil {
		utils.Zlog.Error("Failed to create education entry", zap.String("type", string(req.Kind)), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to create education entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctrl *Controller) UpdateEducation(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id, _ := body["id"].(string)
	if id == "" {
		fail(c, http.StatusBadRequest, "Missing id")
		return
	}
	kind := types.KindEducation
	if t, _ := body["type"].(string); t == string(types.KindCertification) {
		kind = types.KindCertification
	}
	entry, err := ctrl.service.UpdateEducationEntry(kind, id, body)
	if err != nil {
		utils.Zlog.Error("Failed to update education entry", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update education entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEducation reads the kind discriminator from the query string;
// education is the default.
func (ctrl *Controller) DeleteEducation(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	kind := types.KindEducation
	if c.Query("type") == string(types.KindCertification) {
		kind = types.KindCertification
	}
	if err := ctrl.service.DeleteEducationEntry(kind, id); err != nil {
		utils.Zlog.Error("Failed to delete education entry", zap.String("id", id), zap.String("type", string(kind)), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to delete education entry")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
