package types

import (
	"encoding/json"
	"fmt"
)

// ====== ENUMS ======

// EntityKind tags the two kinds served by the shared education endpoint.
type EntityKind string

const (
	KindEducation     EntityKind = "education"
	KindCertification EntityKind = "certification"
)

// ====== REQUEST TYPES ======

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ContactSubmission is the public contact form payload. Limits mirror the
// dashboard-side form schema.
type ContactSubmission struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=2"`
	Message string `json:"message" binding:"required,min=10"`
}

type HeroInput struct {
	Headline         string `json:"headline" binding:"required"`
	Subtitle         string `json:"subtitle" binding:"required"`
	Tagline          string `json:"tagline" binding:"required"`
	CtaPrimaryText   string `json:"ctaPrimaryText" binding:"required"`
	CtaSecondaryText string `json:"ctaSecondaryText" binding:"required"`
	ResumeURL        string `json:"resumeUrl"`
	BackgroundURL    string `json:"backgroundUrl"`
}

type SkillInput struct {
	Name     string `json:"name" binding:"required"`
	Icon     string `json:"icon"`
	Category string `json:"category" binding:"required"`
	Order    int    `json:"order"`
}

type ExperienceInput struct {
	Company     string   `json:"company" binding:"required"`
	CompanyLogo string   `json:"companyLogo"`
	Title       string   `json:"title" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	WorkType    string   `json:"workType" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
	Order       int      `json:"order"`
}

type ProjectInput struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug" binding:"required"`
	ShortDesc    string   `json:"shortDesc" binding:"required"`
	FullDesc     string   `json:"fullDesc"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Screenshots  []string `json:"screenshots"`
	TechStack    []string `json:"techStack"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Challenges   string   `json:"challenges"`
	LiveURL      string   `json:"liveUrl"`
	RepoURL      string   `json:"repoUrl"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

type EducationInput struct {
	Institution    string `json:"institution" binding:"required"`
	Degree         string `json:"degree" binding:"required"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	LogoURL        string `json:"logoUrl"`
	Order          int    `json:"order"`
}

type CertificationInput struct {
	Title     string `json:"title" binding:"required"`
	Issuer    string `json:"issuer" binding:"required"`
	IssueDate string `json:"issueDate"`
	CredURL   string `json:"credUrl"`
	LogoURL   string `json:"logoUrl"`
	Order     int    `json:"order"`
}

// EducationRequest is the tagged variant carried by the shared education
// endpoint. Exactly one of Education/Certification is set, selected by the
// "type" field of the body (education when omitted).
type EducationRequest struct {
	ID            string
	Kind          EntityKind
	Education     *EducationInput
	Certification *CertificationInput
}

func (r *EducationRequest) UnmarshalJSON(data []byte) error {
	var head struct {
		ID   string     `json:"id"`
		Kind EntityKind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	r.ID = head.ID
	r.Kind = head.Kind
	if r.Kind == "" {
		r.Kind = KindEducation
	}

	switch r.Kind {
	case KindEducation:
		var in EducationInput
		if err := json.Unmarshal(data, &in); err != nil {
			return err
		}
		r.Education = &in
	case KindCertification:
		var in CertificationInput
		if err := json.Unmarshal(data, &in); err != nil {
			return err
		}
		r.Certification = &in
	default:
		return fmt.Errorf("unknown education type %q", r.Kind)
	}
	return nil
}

// ====== RESPONSE TYPES ======

// ErrorResponse is the uniform error envelope for every route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges deletes.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// EducationList is the aggregate returned by GET /api/education.
type EducationList struct {
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
}

// DashboardStats are the entity counts shown on the dashboard landing page.
type DashboardStats struct {
	Projects   int64 `json:"projects"`
	Skills     int64 `json:"skills"`
	Messages   int64 `json:"messages"`
	Experience int64 `json:"experience"`
}

// UploadResult describes a stored upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// PortfolioSnapshot is the aggregate read handed to the public page. Any
// kind that failed to load is left empty rather than failing the whole
// snapshot.
type PortfolioSnapshot struct {
	Hero           *Hero           `json:"hero"`
	About          *About          `json:"about"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Settings       *SiteSettings   `json:"settings"`
}
