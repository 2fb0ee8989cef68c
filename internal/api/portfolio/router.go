package portfolio

import (
	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
	"github.com/IMohy/portfolio-imohy/internal/store"
)

// RegisterRoutes wires the content API. Reads are public except the
// contact inbox, media library, and stats; every write requires a session.
func RegisterRoutes(router *gin.RouterGroup, st *store.Store, sessions *auth.SessionManager) {
	service := NewService(st)
	controller := NewController(service)
	requireAuth := auth.RequireSession(sessions)

	router.GET("/hero", controller.GetHero)
	router.PUT("/hero", requireAuth, controller.PutHero)

	router.GET("/about", controller.GetAbout)
	router.PUT("/about", requireAuth, controller.PutAbout)

	router.GET("/settings", controller.GetSettings)
	router.PUT("/settings", requireAuth, controller.PutSettings)

	router.GET("/skills", controller.ListSkills)
	router.POST("/skills", requireAuth, controller.CreateSkill)
	router.PUT("/skills", requireAuth, controller.UpdateSkill)
	router.DELETE("/skills", requireAuth, controller.DeleteSkill)

	router.GET("/experience", controller.ListExperience)
	router.POST("/experience", requireAuth, controller.CreateExperience)
	router.PUT("/experience", requireAuth, controller.UpdateExperience)
	router.DELETE("/experience", requireAuth, controller.DeleteExperience)

	router.GET("/projects", controller.ListProjects)
	router.POST("/projects", requireAuth, controller.CreateProject)
	router.GET("/projects/:id", controller.GetProject)
	router.PUT("/projects/:id", requireAuth, controller.UpdateProject)
	router.DELETE("/projects/:id", requireAuth, controller.DeleteProject)

	router.GET("/education", controller.GetEducation)
	router.POST("/education", requireAuth, controller.CreateEducation)
	router.PUT("/education", requireAuth, controller.UpdateEducation)
	router.DELETE("/education", requireAuth, controller.DeleteEducation)

	router.GET("/contact", requireAuth, controller.ListMessages)
	router.POST("/contact", controller.SubmitMessage)
	router.PUT("/contact", requireAuth, controller.UpdateMessage)
	router.DELETE("/contact", requireAuth, controller.DeleteMessage)

	router.GET("/media", requireAuth, controller.ListMedia)
	router.GET("/stats", requireAuth, controller.GetStats)
}
