package types

import (
	"time"
)

// ====== SINGLETON ENTITIES ======

// Hero is the landing section content. At most one row exists; it is
// created on first write.
type Hero struct {
	ID               string  `gorm:"primaryKey" json:"id"`
	Headline         string  `json:"headline"`
	Subtitle         string  `json:"subtitle"`
	Tagline          string  `json:"tagline"`
	CtaPrimaryText   string  `json:"ctaPrimaryText"`
	CtaSecondaryText string  `json:"ctaSecondaryText"`
	ResumeURL        *string `json:"resumeUrl"`
	BackgroundURL    *string `json:"backgroundUrl"`
}

// About is the single about-section row.
type About struct {
	ID             string  `gorm:"primaryKey" json:"id"`
	Summary        string  `gorm:"type:text" json:"summary"`
	PhotoURL       *string `json:"photoUrl"`
	YearsExp       int     `json:"yearsExp"`
	TotalProjects  int     `json:"totalProjects"`
	TotalCompanies int     `json:"totalCompanies"`
}

// SiteSettings holds global theming and social links. It lives in a single
// well-known row (id = "settings") created with defaults on first read.
type SiteSettings struct {
	ID              string `gorm:"primaryKey" json:"id"`
	SiteTitle       string `json:"siteTitle"`
	MetaDescription string `gorm:"type:text" json:"metaDescription"`
	PrimaryHue      int    `gorm:"default:199" json:"primaryHue"`
	PrimarySat      int    `gorm:"default:89" json:"primarySat"`
	PrimaryLight    int    `gorm:"default:48" json:"primaryLight"`
	SecondaryHue    int    `gorm:"default:166" json:"secondaryHue"`
	SecondarySat    int    `gorm:"default:72" json:"secondarySat"`
	SecondaryLight  int    `gorm:"default:50" json:"secondaryLight"`
	AccentHue       int    `gorm:"default:34" json:"accentHue"`
	AccentSat       int    `gorm:"default:100" json:"accentSat"`
	AccentLight     int    `gorm:"default:60" json:"accentLight"`
	DefaultTheme    string `gorm:"default:dark" json:"defaultTheme"`
	GithubURL       string `json:"githubUrl"`
	LinkedinURL     string `json:"linkedinUrl"`
	TwitterURL      string `json:"twitterUrl"`
}

// ====== COLLECTION ENTITIES ======

// Skill is one entry of the skills grid. Display order is manual and
// ascending; ties keep stored order.
type Skill struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Icon     *string `json:"icon"`
	Category string  `gorm:"not null" json:"category"`
	Order    int     `gorm:"column:display_order;default:0" json:"order"`
}

// Experience is one work history entry. A nil EndDate means ongoing.
type Experience struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Company     string     `gorm:"not null" json:"company"`
	CompanyLogo *string    `json:"companyLogo"`
	Title       string     `gorm:"not null" json:"title"`
	Location    string     `json:"location"`
	WorkType    string     `json:"workType"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description []string   `gorm:"serializer:json" json:"description"`
	Order       int        `gorm:"column:display_order;default:0" json:"order"`
}

// Project is a portfolio project. Slug is unique and doubles as an
// alternate lookup key next to the primary id.
type Project struct {
	ID           string   `gorm:"primaryKey" json:"id"`
	Slug         string   `gorm:"uniqueIndex;not null" json:"slug"`
	Title        string   `gorm:"not null" json:"title"`
	ShortDesc    string   `json:"shortDesc"`
	FullDesc     *string  `gorm:"type:text" json:"fullDesc"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Screenshots  []string `gorm:"serializer:json" json:"screenshots"`
	TechStack    []string `gorm:"serializer:json" json:"techStack"`
	Company      *string  `json:"company"`
	Role         *string  `json:"role"`
	Challenges   *string  `gorm:"type:text" json:"challenges"`
	LiveURL      *string  `json:"liveUrl"`
	RepoURL      *string  `json:"repoUrl"`
	Featured     bool     `gorm:"default:false" json:"featured"`
	Order        int      `gorm:"column:display_order;default:0" json:"order"`
}

// Education is a degree entry. GraduationDate is optional.
type Education struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Institution    string     `gorm:"not null" json:"institution"`
	Degree         string     `gorm:"not null" json:"degree"`
	Field          string     `json:"field"`
	GraduationDate *time.Time `json:"graduationDate"`
	LogoURL        *string    `json:"logoUrl"`
	Order          int        `gorm:"column:display_order;default:0" json:"order"`
}

// Certification shares the education endpoint but is a distinct kind
// with its own table.
type Certification struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Issuer    string     `gorm:"not null" json:"issuer"`
	IssueDate *time.Time `json:"issueDate"`
	CredURL   *string    `json:"credUrl"`
	LogoURL   *string    `json:"logoUrl"`
	Order     int        `gorm:"column:display_order;default:0" json:"order"`
}

// ContactMessage is a public contact form submission. Deleting is
// terminal; IsRead is toggled independently of content.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Media is one uploaded file in the media library.
type Media struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"not null" json:"url"`
	Filename  string    `gorm:"not null" json:"filename"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	Alt       *string   `json:"alt"`
	CreatedAt time.Time `json:"createdAt"`
}

// AllModels lists every persisted entity for schema migration.
func AllModels() []interface{} {
	return []interface{}{
		&Hero{},
		&About{},
		&SiteSettings{},
		&Skill{},
		&Experience{},
		&Project{},
		&Education{},
		&Certification{},
		&ContactMessage{},
		&Media{},
	}
}
