package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

// Snapshot fetches every public kind in parallel and returns the
// aggregate. A kind that fails to load is left empty so the page always
// renders, degraded. The result is cached for the snapshot staleness
// window, independent of the per-kind entries. When every kind fails the
// snapshot is not cached, so the next request retries instead of serving
// a blank page for the whole window.
func (c *Client) Snapshot(ctx context.Context) *types.PortfolioSnapshot {
	if v, ok := c.cached(string(KeyPortfolio), c.snapshotStale); ok {
		return v.(*types.PortfolioSnapshot)
	}

	snapshot := &types.PortfolioSnapshot{
		Skills:         []types.Skill{},
		Experience:     []types.Experience{},
		Projects:       []types.Project{},
		Education:      []types.Education{},
		Certifications: []types.Certification{},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var kinds, failed int

	fetch := func(name string, load func() error) {
		kinds++
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil {
				utils.Zlog.Warn("Snapshot kind unavailable", zap.String("kind", name), zap.Error(err))
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}()
	}

	fetch("hero", func() error {
		var hero *types.Hero
		if err := c.get(ctx, "/api/hero", &hero); err != nil {
			return err
		}
		mu.Lock()
		snapshot.Hero = hero
		mu.Unlock()
		return nil
	})
	fetch("about", func() error {
		var about *types.About
		if err := c.get(ctx, "/api/about", &about); err != nil {
			return err
		}
		mu.Lock()
		snapshot.About = about
		mu.Unlock()
		return nil
	})
	fetch("settings", func() error {
		var settings *types.SiteSettings
		if err := c.get(ctx, "/api/settings", &settings); err != nil {
			return err
		}
		mu.Lock()
		snapshot.Settings = settings
		mu.Unlock()
		return nil
	})
	fetch("skills", func() error {
		var skills []types.Skill
		if err := c.get(ctx, "/api/skills", &skills); err != nil {
			return err
		}
		mu.Lock()
		snapshot.Skills = skills
		mu.Unlock()
		return nil
	})
	fetch("experience", func() error {
		var experience []types.Experience
		if err := c.get(ctx, "/api/experience", &experience); err != nil {
			return err
		}
		mu.Lock()
		snapshot.Experience = experience
		mu.Unlock()
		return nil
	})
	fetch("projects", func() error {
		var projects []types.Project
		if err := c.get(ctx, "/api/projects", &projects); err != nil {
			return err
		}
		mu.Lock()
		snapshot.Projects = projects
		mu.Unlock()
		return nil
	})
	fetch("education", func() error {
		var list types.EducationList
		if err := c.get(ctx, "/api/education", &list); err != nil {
			return err
		}
		mu.Lock()
		snapshot.Education = list.Education
		snapshot.Certifications = list.Certifications
		mu.Unlock()
		return nil
	})

	wg.Wait()

	if failed < kinds {
		c.cache.set(string(KeyPortfolio), snapshot)
	}
	return snapshot
}
