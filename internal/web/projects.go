package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (h *Handler) ProjectsPage(c *gin.Context) {
	projects, err := h.client.Projects(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "projects.html", gin.H{"Error": "Failed to load projects"})
		return
	}
	c.HTML(http.StatusOK, "projects.html", gin.H{"Projects": projects, "Notice": c.Query("notice")})
}

func (h *Handler) ProjectNewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "project-form.html", gin.H{"Action": "/dashboard/projects/new"})
}

// ProjectCreate builds the project from the form. An empty slug field
// falls back to a slug derived from the title.
func (h *Handler) ProjectCreate(c *gin.Context) {
	in := projectFromForm(c)
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Title)
	}

	project, err := h.client.CreateProject(sessionCtx(c), in)
	if err != nil {
		c.HTML(http.StatusBadRequest, "project-form.html", gin.H{
			"Action": "/dashboard/projects/new",
			"Error":  "Failed to create project",
			"Form":   in,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/projects/"+project.ID+"?notice=Project+created")
}

func (h *Handler) ProjectEditForm(c *gin.Context) {
	project, err := h.client.Project(sessionCtx(c), c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/projects?notice=Project+not+found")
		return
	}
	c.HTML(http.StatusOK, "project-form.html", gin.H{
		"Action":  "/dashboard/projects/" + project.ID,
		"Project": project,
		"Notice":  c.Query("notice"),
	})
}

func (h *Handler) ProjectUpdate(c *gin.Context) {
	id := c.Param("id")
	payload := formPayload(c,
		"title", "slug", "shortDesc", "fullDesc", "thumbnailUrl",
		"company", "role", "challenges", "liveUrl", "repoUrl")
	formInts(c, payload, "order")
	payload["featured"] = c.PostForm("featured") == "on"
	if raw, ok := c.GetPostForm("screenshots"); ok {
		payload["screenshots"] = formLines(raw)
	}
	if raw, ok := c.GetPostForm("techStack"); ok {
		payload["techStack"] = formLines(raw)
	}

	if _, err := h.client.UpdateProject(sessionCtx(c), id, payload); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/projects/"+id+"?notice=Update+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/projects/"+id+"?notice=Project+updated")
}

func (h *Handler) ProjectDelete(c *gin.Context) {
	if err := h.client.DeleteProject(sessionCtx(c), c.Param("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/projects?notice=Delete+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/projects?notice=Project+deleted")
}

func projectFromForm(c *gin.Context) types.ProjectInput {
	order, _ := strconv.Atoi(c.PostForm("order"))
	return types.ProjectInput{
		Title:        c.PostForm("title"),
		Slug:         c.PostForm("slug"),
		ShortDesc:    c.PostForm("shortDesc"),
		FullDesc:     c.PostForm("fullDesc"),
		ThumbnailURL: c.PostForm("thumbnailUrl"),
		Screenshots:  formLines(c.PostForm("screenshots")),
		TechStack:    formLines(c.PostForm("techStack")),
		Company:      c.PostForm("company"),
		Role:         c.PostForm("role"),
		Challenges:   c.PostForm("challenges"),
		LiveURL:      c.PostForm("liveUrl"),
		RepoURL:      c.PostForm("repoUrl"),
		Featured:     c.PostForm("featured") == "on",
		Order:        order,
	}
}
