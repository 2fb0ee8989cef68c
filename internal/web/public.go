package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/client"
	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

// Index renders the public portfolio page from the aggregated snapshot.
// The snapshot is also embedded as JSON so scripts can pick it up
// without a second round trip.
func (h *Handler) Index(c *gin.Context) {
	snapshot := h.client.Snapshot(c.Request.Context())

	initial, err := json.Marshal(snapshot)
	if err != nil {
		utils.Zlog.Error("Failed to encode initial data", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Snapshot":    snapshot,
		"InitialData": template.JS(initial),
		"Notice":      c.Query("notice"),
	})
}

// ProjectPage renders one project, resolved by slug or id.
func (h *Handler) ProjectPage(c *gin.Context) {
	project, err := h.client.Project(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if apiErr, ok := err.(*client.APIError); ok && apiErr.Status == http.StatusNotFound {
			c.String(http.StatusNotFound, "project not found")
			return
		}
		utils.Zlog.Error("Failed to load project page", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "project.html", gin.H{"Project": project})
}

// ContactSubmit handles the public contact form.
func (h *Handler) ContactSubmit(c *gin.Context) {
	submission := types.ContactSubmission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}

	if err := h.client.SubmitContact(c.Request.Context(), submission); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"Snapshot":     h.client.Snapshot(c.Request.Context()),
			"ContactError": "Please check the form and try again.",
			"ContactForm":  submission,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/?notice=Message+sent")
}
