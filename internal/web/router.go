// Package web serves the public portfolio page and the admin dashboard.
// Both read and write through the client data-access layer, so every
// mutation goes through the content API and its cache invalidation.
package web

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
	"github.com/IMohy/portfolio-imohy/internal/client"
)

// Handler carries the dependencies shared by every page handler.
type Handler struct {
	client *client.Client
	auth   *auth.Controller
}

func NewHandler(apiClient *client.Client, authCtrl *auth.Controller) *Handler {
	return &Handler{client: apiClient, auth: authCtrl}
}

// RegisterRoutes wires the page routes. The gate redirects unauthenticated
// dashboard requests to the login page and authenticated login requests
// back to the dashboard.
func RegisterRoutes(r *gin.Engine, h *Handler, sessions *auth.SessionManager) {
	r.Use(auth.RedirectGate(sessions))

	r.GET("/", h.Index)
	r.GET("/projects/:slug", h.ProjectPage)
	r.POST("/contact", h.ContactSubmit)

	r.GET("/login", h.LoginPage)
	r.POST("/login", h.LoginSubmit)
	r.GET("/logout", h.Logout)

	dashboard := r.Group("/dashboard")
	dashboard.GET("", h.Dashboard)

	dashboard.GET("/hero", h.HeroForm)
	dashboard.POST("/hero", h.HeroSave)
	dashboard.GET("/about", h.AboutForm)
	dashboard.POST("/about", h.AboutSave)
	dashboard.GET("/settings", h.SettingsForm)
	dashboard.POST("/settings", h.SettingsSave)

	dashboard.GET("/skills", h.SkillsPage)
	dashboard.POST("/skills", h.SkillCreate)
	dashboard.POST("/skills/update", h.SkillUpdate)
	dashboard.POST("/skills/delete", h.SkillDelete)

	dashboard.GET("/experience", h.ExperiencePage)
	dashboard.POST("/experience", h.ExperienceCreate)
	dashboard.POST("/experience/update", h.ExperienceUpdate)
	dashboard.POST("/experience/delete", h.ExperienceDelete)

	dashboard.GET("/projects", h.ProjectsPage)
	dashboard.GET("/projects/new", h.ProjectNewForm)
	dashboard.POST("/projects/new", h.ProjectCreate)
	dashboard.GET("/projects/:id", h.ProjectEditForm)
	dashboard.POST("/projects/:id", h.ProjectUpdate)
	dashboard.POST("/projects/:id/delete", h.ProjectDelete)

	dashboard.GET("/education", h.EducationPage)
	dashboard.POST("/education", h.EducationCreate)
	dashboard.POST("/education/update", h.EducationUpdate)
	dashboard.POST("/education/delete", h.EducationDelete)

	dashboard.GET("/contact", h.InboxPage)
	dashboard.POST("/contact/read", h.MessageToggleRead)
	dashboard.POST("/contact/delete", h.MessageDelete)

	dashboard.GET("/media", h.MediaPage)
	dashboard.POST("/media", h.MediaUpload)
}

// sessionCtx forwards the caller's session cookie to API calls made on
// their behalf.
func sessionCtx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token, err := c.Cookie(auth.SessionCookie); err == nil {
		ctx = client.WithSession(ctx, token)
	}
	return ctx
}
