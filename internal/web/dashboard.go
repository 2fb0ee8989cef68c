package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

// Dashboard renders the overview page with content counts.
func (h *Handler) Dashboard(c *gin.Context) {
	stats := h.client.DashboardStats(sessionCtx(c))
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Stats": stats})
}

func (h *Handler) HeroForm(c *gin.Context) {
	hero, err := h.client.Hero(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "hero.html", gin.H{"Error": "Failed to load hero data"})
		return
	}
	c.HTML(http.StatusOK, "hero.html", gin.H{"Hero": hero, "Notice": c.Query("notice")})
}

// HeroSave upserts the hero section from the form fields. Only the
// submitted fields are sent, so the record is patched in place. A failed
// save re-renders the form from the submitted values so nothing typed is
// lost.
func (h *Handler) HeroSave(c *gin.Context) {
	payload := formPayload(c,
		"headline", "subtitle", "tagline",
		"ctaPrimaryText", "ctaSecondaryText", "resumeUrl", "backgroundUrl")
	if _, err := h.client.UpdateHero(sessionCtx(c), payload); err != nil {
		c.HTML(http.StatusInternalServerError, "hero.html", gin.H{
			"Error": "Failed to save hero data",
			"Hero":  heroFromForm(c),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/hero?notice=Saved")
}

func (h *Handler) AboutForm(c *gin.Context) {
	about, err := h.client.About(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "about.html", gin.H{"Error": "Failed to load about data"})
		return
	}
	c.HTML(http.StatusOK, "about.html", gin.H{"About": about, "Notice": c.Query("notice")})
}

func (h *Handler) AboutSave(c *gin.Context) {
	payload := formPayload(c, "summary", "photoUrl")
	formInts(c, payload, "yearsExp", "totalProjects", "totalCompanies")
	if _, err := h.client.UpdateAbout(sessionCtx(c), payload); err != nil {
		c.HTML(http.StatusInternalServerError, "about.html", gin.H{
			"Error": "Failed to save about data",
			"About": aboutFromForm(c),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/about?notice=Saved")
}

func (h *Handler) SettingsForm(c *gin.Context) {
	settings, err := h.client.Settings(sessionCtx(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "settings.html", gin.H{"Error": "Failed to load settings"})
		return
	}
	c.HTML(http.StatusOK, "settings.html", gin.H{"Settings": settings, "Notice": c.Query("notice")})
}

func (h *Handler) SettingsSave(c *gin.Context) {
	payload := formPayload(c,
		"siteTitle", "metaDescription", "defaultTheme",
		"githubUrl", "linkedinUrl", "twitterUrl")
	formInts(c, payload,
		"primaryHue", "primarySat", "primaryLight",
		"secondaryHue", "secondarySat", "secondaryLight",
		"accentHue", "accentSat", "accentLight")
	if _, err := h.client.UpdateSettings(sessionCtx(c), payload); err != nil {
		c.HTML(http.StatusInternalServerError, "settings.html", gin.H{
			"Error":    "Failed to save settings",
			"Settings": settingsFromForm(c),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard/settings?notice=Saved")
}

// heroFromForm rebuilds a hero entity from the submitted form so a failed
// save can re-render the page with the typed values intact.
func heroFromForm(c *gin.Context) *types.Hero {
	return &types.Hero{
		Headline:         c.PostForm("headline"),
		Subtitle:         c.PostForm("subtitle"),
		Tagline:          c.PostForm("tagline"),
		CtaPrimaryText:   c.PostForm("ctaPrimaryText"),
		CtaSecondaryText: c.PostForm("ctaSecondaryText"),
		ResumeURL:        formPtr(c, "resumeUrl"),
		BackgroundURL:    formPtr(c, "backgroundUrl"),
	}
}

func aboutFromForm(c *gin.Context) *types.About {
	yearsExp, _ := strconv.Atoi(c.PostForm("yearsExp"))
	totalProjects, _ := strconv.Atoi(c.PostForm("totalProjects"))
	totalCompanies, _ := strconv.Atoi(c.PostForm("totalCompanies"))
	return &types.About{
		Summary:        c.PostForm("summary"),
		PhotoURL:       formPtr(c, "photoUrl"),
		YearsExp:       yearsExp,
		TotalProjects:  totalProjects,
		TotalCompanies: totalCompanies,
	}
}

func settingsFromForm(c *gin.Context) *types.SiteSettings {
	settings := &types.SiteSettings{
		SiteTitle:       c.PostForm("siteTitle"),
		MetaDescription: c.PostForm("metaDescription"),
		DefaultTheme:    c.PostForm("defaultTheme"),
		GithubURL:       c.PostForm("githubUrl"),
		LinkedinURL:     c.PostForm("linkedinUrl"),
		TwitterURL:      c.PostForm("twitterUrl"),
	}
	settings.PrimaryHue, _ = strconv.Atoi(c.PostForm("primaryHue"))
	settings.PrimarySat, _ = strconv.Atoi(c.PostForm("primarySat"))
	settings.PrimaryLight, _ = strconv.Atoi(c.PostForm("primaryLight"))
	settings.SecondaryHue, _ = strconv.Atoi(c.PostForm("secondaryHue"))
	settings.SecondarySat, _ = strconv.Atoi(c.PostForm("secondarySat"))
	settings.SecondaryLight, _ = strconv.Atoi(c.PostForm("secondaryLight"))
	settings.AccentHue, _ = strconv.Atoi(c.PostForm("accentHue"))
	settings.AccentSat, _ = strconv.Atoi(c.PostForm("accentSat"))
	settings.AccentLight, _ = strconv.Atoi(c.PostForm("accentLight"))
	return settings
}

func formPtr(c *gin.Context, field string) *string {
	if value := c.PostForm(field); value != "" {
		return &value
	}
	return nil
}

// formPayload collects the named form fields into an update payload.
// Absent fields are skipped so they keep their stored values.
func formPayload(c *gin.Context, fields ...string) map[string]interface{} {
	payload := map[string]interface{}{}
	for _, field := range fields {
		if value, ok := c.GetPostForm(field); ok {
			payload[field] = value
		}
	}
	return payload
}

// formInts adds the named fields as integers, skipping values that do
// not parse so a malformed field never zeroes a stored number.
func formInts(c *gin.Context, payload map[string]interface{}, fields ...string) {
	for _, field := range fields {
		raw, ok := c.GetPostForm(field)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil {
			payload[field] = n
		}
	}
}
