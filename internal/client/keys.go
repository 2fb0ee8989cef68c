package client

// Key identifies a cached read. Detail entries (a single project) live
// under "<key>/<id>" and are invalidated together with their kind.
type Key string

const (
	KeyHero           Key = "hero"
	KeyAbout          Key = "about"
	KeySkills         Key = "skills"
	KeyExperience     Key = "experience"
	KeyProjects       Key = "projects"
	KeyEducation      Key = "education"
	KeyContact        Key = "contact"
	KeySettings       Key = "settings"
	KeyMedia          Key = "media"
	KeyDashboardStats Key = "dashboard-stats"
	KeyPortfolio      Key = "portfolio-data"
)

// dependents is the single declaration of cross-kind invalidation: a
// mutation on a kind also invalidates the aggregate keys its counts feed.
// The public snapshot is deliberately absent; it refreshes through its
// staleness window alone.
var dependents = map[Key][]Key{
	KeyProjects:   {KeyDashboardStats},
	KeySkills:     {KeyDashboardStats},
	KeyContact:    {KeyDashboardStats},
	KeyExperience: {KeyDashboardStats},
}
