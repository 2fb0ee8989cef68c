package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

func (h *Handler) EducationPage(c *gin.Context) {
	list, err := h.client.Education(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "education.html", gin.H{"Error": "Failed to load education data"})
		return
	}
	c.HTML(http.StatusOK, "education.html", gin.H{
		"Education":      list.Education,
		"Certifications": list.Certifications,
		"Notice":         c.Query("notice"),
	})
}

// EducationCreate handles both entry kinds. The type select on the form
// picks which set of fields the API reads.
func (h *Handler) EducationCreate(c *gin.Context) {
	kind := educationKind(c.PostForm("type"))
	fields := educationFields(c, kind)

	if err := h.client.CreateEducationEntry(sessionCtx(c), kind, fields); err != nil {
		list, _ := h.client.Education(sessionCtx(c))
		data := gin.H{"Error": "Failed to create education entry", "Form": fields, "FormKind": kind}
		if list != nil {
			data["Education"] = list.Education
			data["Certifications"] = list.Certifications
		}
		c.HTML(http.StatusBadRequest, "education.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/education?notice=Entry+created")
}

func (h *Handler) EducationUpdate(c *gin.Context) {
	kind := educationKind(c.PostForm("type"))
	fields := educationFields(c, kind)

	if err := h.client.UpdateEducationEntry(sessionCtx(c), kind, c.PostForm("id"), fields); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/education?notice=Update+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/education?notice=Entry+updated")
}

func (h *Handler) EducationDelete(c *gin.Context) {
	kind := educationKind(c.PostForm("type"))
	if err := h.client.DeleteEducationEntry(sessionCtx(c), kind, c.PostForm("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/education?notice=Delete+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/education?notice=Entry+deleted")
}

func educationKind(raw string) types.EntityKind {
	if raw == string(types.KindCertification) {
		return types.KindCertification
	}
	return types.KindEducation
}

func educationFields(c *gin.Context, kind types.EntityKind) map[string]interface{} {
	var payload map[string]interface{}
	if kind == types.KindCertification {
		payload = formPayload(c, "title", "issuer", "issueDate", "credUrl", "logoUrl")
	} else {
		payload = formPayload(c, "institution", "degree", "field", "graduationDate", "logoUrl")
	}
	formInts(c, payload, "order")
	return payload
}
