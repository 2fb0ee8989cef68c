package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

func (h *Handler) SkillsPage(c *gin.Context) {
	skills, err := h.client.Skills(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "skills.html", gin.H{"Error": "Failed to load skills"})
		return
	}
	c.HTML(http.StatusOK, "skills.html", gin.H{"Skills": skills, "Notice": c.Query("notice")})
}

func (h *Handler) SkillCreate(c *gin.Context) {
	order, _ := strconv.Atoi(c.PostForm("order"))
	in := types.SkillInput{
		Name:     c.PostForm("name"),
		Icon:     c.PostForm("icon"),
		Category: c.PostForm("category"),
		Order:    order,
	}

	if _, err := h.client.CreateSkill(sessionCtx(c), in); err != nil {
		skills, _ := h.client.Skills(sessionCtx(c))
		c.HTML(http.StatusBadRequest, "skills.html", gin.H{
			"Error":  "Failed to create skill",
			"Skills": skills,
			"Form":   in,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/skills?notice=Skill+created")
}

func (h *Handler) SkillUpdate(c *gin.Context) {
	payload := formPayload(c, "name", "icon", "category")
	formInts(c, payload, "order")
	if _, err := h.client.UpdateSkill(sessionCtx(c), c.PostForm("id"), payload); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/skills?notice=Update+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/skills?notice=Skill+updated")
}

func (h *Handler) SkillDelete(c *gin.Context) {
	if err := h.client.DeleteSkill(sessionCtx(c), c.PostForm("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/skills?notice=Delete+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/skills?notice=Skill+deleted")
}
