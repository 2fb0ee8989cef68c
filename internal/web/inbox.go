package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) InboxPage(c *gin.Context) {
	messages, err := h.client.Messages(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "inbox.html", gin.H{"Error": "Failed to load messages"})
		return
	}

	unread := 0
	for _, msg := range messages {
		if !msg.IsRead {
			unread++
		}
	}

	c.HTML(http.StatusOK, "inbox.html", gin.H{
		"Messages": messages,
		"Unread":   unread,
		"Notice":   c.Query("notice"),
	})
}

// MessageToggleRead flips the read flag to whatever the form posted.
func (h *Handler) MessageToggleRead(c *gin.Context) {
	isRead := c.PostForm("isRead") == "true"
	if err := h.client.ToggleMessageRead(sessionCtx(c), c.PostForm("id"), isRead); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/contact?notice=Update+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/contact")
}

func (h *Handler) MessageDelete(c *gin.Context) {
	if err := h.client.DeleteMessage(sessionCtx(c), c.PostForm("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/contact?notice=Delete+failed")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/contact?notice=Message+deleted")
}
