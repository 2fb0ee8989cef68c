package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) MediaPage(c *gin.Context) {
	files, err := h.client.Media(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "media.html", gin.H{"Error": "Failed to load media"})
		return
	}
	c.HTML(http.StatusOK, "media.html", gin.H{"Files": files, "Notice": c.Query("notice")})
}

// MediaUpload streams the posted file through the upload API.
func (h *Handler) MediaUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/media?notice=No+file+selected")
		return
	}

	src, err := header.Open()
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/media?notice=Upload+failed")
		return
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	if _, err := h.client.Upload(sessionCtx(c), header.Filename, contentType, src); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/media?notice=Upload+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/media?notice=File+uploaded")
}
