package portfolio

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/store"
	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (ctrl *Controller) ListProjects(c *gin.Context) {
	projects, err := ctrl.service.Projects()
	if err != nil {
		utils.Zlog.Error("Failed to fetch projects", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (ctrl *Controller) CreateProject(c *gin.Context) {
	var in types.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	project, err := ctrl.service.CreateProject(in)
	if err != nil {
		// A duplicate slug lands here too and is indistinguishable from
		// any other store failure.
		utils.Zlog.Error("Failed to create project", zap.String("slug", in.Slug), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProject resolves the path parameter as an id, then as a slug.
func (ctrl *Controller) GetProject(c *gin.Context) {
	idOrSlug := c.Param("id")
	project, err := ctrl.service.Project(idOrSlug)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		utils.Zlog.Error("Failed to fetch project", zap.String("id", idOrSlug), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *Controller) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	project, err := ctrl.service.UpdateProject(id, body)
	if err != nil {
		utils.Zlog.Error("Failed to update project", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *Controller) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := ctrl.service.DeleteProject(id); err != nil {
		utils.Zlog.Error("Failed to delete project", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
