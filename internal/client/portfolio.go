package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

// fetchCached serves a read from the cache while it is inside the
// staleness window and refetches otherwise.
func fetchCached[T any](ctx context.Context, c *Client, key Key, path string, staleTime time.Duration) (T, error) {
	if v, ok := c.cached(string(key), staleTime); ok {
		return v.(T), nil
	}
	var out T
	if err := c.get(ctx, path, &out); err != nil {
		var zero T
		return zero, err
	}
	c.cache.set(string(key), out)
	return out, nil
}

// ====== READS ======

func (c *Client) Hero(ctx context.Context) (*types.Hero, error) {
	return fetchCached[*types.Hero](ctx, c, KeyHero, "/api/hero", c.staleTime)
}

func (c *Client) About(ctx context.Context) (*types.About, error) {
	return fetchCached[*types.About](ctx, c, KeyAbout, "/api/about", c.staleTime)
}

func (c *Client) Settings(ctx context.Context) (*types.SiteSettings, error) {
	return fetchCached[*types.SiteSettings](ctx, c, KeySettings, "/api/settings", c.staleTime)
}

func (c *Client) Skills(ctx context.Context) ([]types.Skill, error) {
	return fetchCached[[]types.Skill](ctx, c, KeySkills, "/api/skills", c.staleTime)
}

func (c *Client) Experience(ctx context.Context) ([]types.Experience, error) {
	return fetchCached[[]types.Experience](ctx, c, KeyExperience, "/api/experience", c.staleTime)
}

func (c *Client) Projects(ctx context.Context) ([]types.Project, error) {
	return fetchCached[[]types.Project](ctx, c, KeyProjects, "/api/projects", c.staleTime)
}

// Project fetches one project by id or slug, cached under a detail key.
func (c *Client) Project(ctx context.Context, idOrSlug string) (*types.Project, error) {
	key := Key(string(KeyProjects) + "/" + idOrSlug)
	return fetchCached[*types.Project](ctx, c, key, "/api/projects/"+url.PathEscape(idOrSlug), c.staleTime)
}

func (c *Client) Education(ctx context.Context) (*types.EducationList, error) {
	return fetchCached[*types.EducationList](ctx, c, KeyEducation, "/api/education", c.staleTime)
}

func (c *Client) Messages(ctx context.Context) ([]types.ContactMessage, error) {
	return fetchCached[[]types.ContactMessage](ctx, c, KeyContact, "/api/contact", c.staleTime)
}

func (c *Client) Media(ctx context.Context) ([]types.Media, error) {
	return fetchCached[[]types.Media](ctx, c, KeyMedia, "/api/media", c.staleTime)
}

// ====== MUTATIONS ======
//
// Every successful mutation invalidates its own kind (and detail entries)
// plus the dependents declared in keys.go. The next read refetches.

func (c *Client) UpdateHero(ctx context.Context, payload map[string]interface{}) (*types.Hero, error) {
	var hero types.Hero
	if err := c.do(ctx, http.MethodPut, "/api/hero", payload, &hero); err != nil {
		return nil, err
	}
	c.Invalidate(KeyHero)
	return &hero, nil
}

func (c *Client) UpdateAbout(ctx context.Context, payload map[string]interface{}) (*types.About, error) {
	var about types.About
	if err := c.do(ctx, http.MethodPut, "/api/about", payload, &about); err != nil {
		return nil, err
	}
	c.Invalidate(KeyAbout)
	return &about, nil
}

func (c *Client) UpdateSettings(ctx context.Context, payload map[string]interface{}) (*types.SiteSettings, error) {
	var settings types.SiteSettings
	if err := c.do(ctx, http.MethodPut, "/api/settings", payload, &settings); err != nil {
		return nil, err
	}
	c.Invalidate(KeySettings)
	return &settings, nil
}

func (c *Client) CreateSkill(ctx context.Context, in types.SkillInput) (*types.Skill, error) {
	var skill types.Skill
	if err := c.do(ctx, http.MethodPost, "/api/skills", in, &skill); err != nil {
		return nil, err
	}
	c.Invalidate(KeySkills)
	return &skill, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, changes map[string]interface{}) (*types.Skill, error) {
	var skill types.Skill
	if err := c.do(ctx, http.MethodPut, "/api/skills", withID(id, changes), &skill); err != nil {
		return nil, err
	}
	c.Invalidate(KeySkills)
	return &skill, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/skills?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}
	c.Invalidate(KeySkills)
	return nil
}

func (c *Client) CreateExperience(ctx context.Context, in types.ExperienceInput) (*types.Experience, error) {
	var exp types.Experience
	if err := c.do(ctx, http.MethodPost, "/api/experience", in, &exp); err != nil {
		return nil, err
	}
	c.Invalidate(KeyExperience)
	return &exp, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, changes map[string]interface{}) (*types.Experience, error) {
	var exp types.Experience
	if err := c.do(ctx, http.MethodPut, "/api/experience", withID(id, changes), &exp); err != nil {
		return nil, err
	}
	c.Invalidate(KeyExperience)
	return &exp, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/experience?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}
	c.Invalidate(KeyExperience)
	return nil
}

func (c *Client) CreateProject(ctx context.Context, in types.ProjectInput) (*types.Project, error) {
	var project types.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &project); err != nil {
		return nil, err
	}
	c.Invalidate(KeyProjects)
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, changes map[string]interface{}) (*types.Project, error) {
	var project types.Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+url.PathEscape(id), changes, &project); err != nil {
		return nil, err
	}
	c.Invalidate(KeyProjects)
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.Invalidate(KeyProjects)
	return nil
}

// CreateEducationEntry posts a tagged education or certification payload.
func (c *Client) CreateEducationEntry(ctx context.Context, kind types.EntityKind, fields map[string]interface{}) error {
	if err := c.do(ctx, http.MethodPost, "/api/education", withKind(kind, fields), nil); err != nil {
		return err
	}
	c.Invalidate(KeyEducation)
	return nil
}

func (c *Client) UpdateEducationEntry(ctx context.Context, kind types.EntityKind, id string, fields map[string]interface{}) error {
	if err := c.do(ctx, http.MethodPut, "/api/education", withKind(kind, withID(id, fields)), nil); err != nil {
		return err
	}
	c.Invalidate(KeyEducation)
	return nil
}

func (c *Client) DeleteEducationEntry(ctx context.Context, kind types.EntityKind, id string) error {
	path := "/api/education?id=" + url.QueryEscape(id) + "&type=" + url.QueryEscape(string(kind))
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.Invalidate(KeyEducation)
	return nil
}

// SubmitContact is the public contact form submission.
func (c *Client) SubmitContact(ctx context.Context, in types.ContactSubmission) error {
	if err := c.do(ctx, http.MethodPost, "/api/contact", in, nil); err != nil {
		return err
	}
	c.Invalidate(KeyContact)
	return nil
}

// ToggleMessageRead flips the isRead flag of one message.
func (c *Client) ToggleMessageRead(ctx context.Context, id string, isRead bool) error {
	payload := map[string]interface{}{"id": id, "isRead": isRead}
	if err := c.do(ctx, http.MethodPut, "/api/contact", payload, nil); err != nil {
		return err
	}
	c.Invalidate(KeyContact)
	return nil
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/contact?id="+url.QueryEscape(id), nil, nil); err != nil {
		return err
	}
	c.Invalidate(KeyContact)
	return nil
}

func withID(id string, fields map[string]interface{}) map[string]interface{} {
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["id"] = id
	return payload
}

func withKind(kind types.EntityKind, fields map[string]interface{}) map[string]interface{} {
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["type"] = string(kind)
	return payload
}
