package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

func (h *Handler) ExperiencePage(c *gin.Context) {
	entries, err := h.client.Experience(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "experience.html", gin.H{"Error": "Failed to load experience"})
		return
	}
	c.HTML(http.StatusOK, "experience.html", gin.H{"Entries": entries, "Notice": c.Query("notice")})
}

func (h *Handler) ExperienceCreate(c *gin.Context) {
	order, _ := strconv.Atoi(c.PostForm("order"))
	in := types.ExperienceInput{
		Company:     c.PostForm("company"),
		CompanyLogo: c.PostForm("companyLogo"),
		Title:       c.PostForm("title"),
		Location:    c.PostForm("location"),
		WorkType:    c.PostForm("workType"),
		StartDate:   c.PostForm("startDate"),
		EndDate:     c.PostForm("endDate"),
		Description: formLines(c.PostForm("description")),
		Order:       order,
	}

	if _, err := h.client.CreateExperience(sessionCtx(c), in); err != nil {
		entries, _ := h.client.Experience(sessionCtx(c))
		c.HTML(http.StatusBadRequest, "experience.html", gin.H{
			"Error":   "Failed to create experience entry",
			"Entries": entries,
			"Form":    in,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/experience?notice=Entry+created")
}

func (h *Handler) ExperienceUpdate(c *gin.Context) {
	payload := formPayload(c, "company", "companyLogo", "title", "location", "workType", "startDate", "endDate")
	formInts(c, payload, "order")
	if raw, ok := c.GetPostForm("description"); ok {
		payload["description"] = formLines(raw)
	}
	if _, err := h.client.UpdateExperience(sessionCtx(c), c.PostForm("id"), payload); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/experience?notice=Update+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/experience?notice=Entry+updated")
}

func (h *Handler) ExperienceDelete(c *gin.Context) {
	if err := h.client.DeleteExperience(sessionCtx(c), c.PostForm("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/experience?notice=Delete+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/experience?notice=Entry+deleted")
}

// formLines splits a textarea into one entry per non-empty line.
func formLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
