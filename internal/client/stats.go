package client

import (
	"context"
	"sync"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

// DashboardStats counts the kinds shown on the dashboard landing page by
// listing each in parallel. A kind that fails to load counts as zero. The
// aggregate is cached under its own key and is invalidated by mutations on
// any contributing kind.
func (c *Client) DashboardStats(ctx context.Context) *types.DashboardStats {
	if v, ok := c.cached(string(KeyDashboardStats), c.snapshotStale); ok {
		return v.(*types.DashboardStats)
	}

	stats := &types.DashboardStats{}
	var wg sync.WaitGroup

	count := func(path string, assign func(int64)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var items []map[string]interface{}
			if err := c.get(ctx, path, &items); err != nil {
				assign(0)
				return
			}
			assign(int64(len(items)))
		}()
	}

	count("/api/projects", func(n int64) { stats.Projects = n })
	count("/api/skills", func(n int64) { stats.Skills = n })
	count("/api/contact", func(n int64) { stats.Messages = n })
	count("/api/experience", func(n int64) { stats.Experience = n })

	wg.Wait()

	c.cache.set(string(KeyDashboardStats), stats)
	return stats
}
