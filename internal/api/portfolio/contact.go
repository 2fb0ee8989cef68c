package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

func (ctrl *Controller) ListMessages(c *gin.Context) {
	messages, err := ctrl.service.Messages()
	if err != nil {
		utils.Zlog.Error("Failed to fetch messages", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SubmitMessage is the one public write: anyone may send a contact form,
// but only well-formed submissions reach the store.
func (ctrl *Controller) SubmitMessage(c *gin.Context) {
	var in types.ContactSubmission
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	msg, err := ctrl.service.SubmitMessage(in)
	if err != nil {
		utils.Zlog.Error("Failed to store contact message", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (ctrl *Controller) UpdateMessage(c *gin.Context) {
	id, body, ok := bindUpdate(c)
	if !ok {
		return
	}
	msg, err := ctrl.service.UpdateMessage(id, body)
	if err != nil {
		utils.Zlog.Error("Failed to update message", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to update message")
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (ctrl *Controller) DeleteMessage(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := ctrl.service.DeleteMessage(id); err != nil {
		utils.Zlog.Error("Failed to delete message", zap.String("id", id), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}
