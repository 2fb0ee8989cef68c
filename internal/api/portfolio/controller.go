package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

// Controller handles the HTTP surface of the portfolio content API. Every
// failure collapses to the uniform {error} envelope; the underlying cause
// is logged, never exposed.
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, types.ErrorResponse{Error: message})
}

// bindUpdate decodes a PUT body into the raw payload and pulls the record
// id out of it.
func bindUpdate(c *gin.Context) (string, map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return "", nil, false
	}
	id, _ := body["id"].(string)
	if id == "" {
		fail(c, http.StatusBadRequest, "Missing id")
		return "", nil, false
	}
	return id, body, true
}

// queryID pulls the ?id= parameter used by collection DELETEs.
func queryID(c *gin.Context) (string, bool) {
	id := c.Query("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "Missing id")
		return "", false
	}
	return id, true
}
