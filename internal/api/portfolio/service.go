package portfolio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/store"
	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

// SettingsID is the well-known row id of the settings singleton.
const SettingsID = "settings"

// Service sits between the HTTP controllers and the persistence gateway.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// ====== SINGLETONS ======

// Hero returns the hero row, or nil when none exists yet.
func (s *Service) Hero() (*types.Hero, error) {
	hero, err := s.store.Hero.Get()
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return hero, err
}

func (s *Service) UpsertHero(body map[string]interface{}) (*types.Hero, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	hero, err := s.store.Hero.Upsert(changes, &types.Hero{ID: uuid.NewString()})
	if err != nil {
		return nil, err
	}
	utils.Zlog.Info("Hero updated", zap.String("id", hero.ID))
	return hero, nil
}

// About returns the about row, or nil when none exists yet.
func (s *Service) About() (*types.About, error) {
	about, err := s.store.About.Get()
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return about, err
}

func (s *Service) UpsertAbout(body map[string]interface{}) (*types.About, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	about, err := s.store.About.Upsert(changes, &types.About{ID: uuid.NewString()})
	if err != nil {
		return nil, err
	}
	utils.Zlog.Info("About updated", zap.String("id", about.ID))
	return about, nil
}

// Settings returns the settings row, creating the defaults on first read.
func (s *Service) Settings() (*types.SiteSettings, error) {
	return s.store.Settings.GetOrCreate(&types.SiteSettings{ID: SettingsID})
}

func (s *Service) UpdateSettings(body map[string]interface{}) (*types.SiteSettings, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	settings, err := s.store.Settings.Upsert(changes, &types.SiteSettings{ID: SettingsID})
	if err != nil {
		return nil, err
	}
	utils.Zlog.Info("Site settings updated")
	return settings, nil
}

// ====== SKILLS ======

func (s *Service) Skills() ([]types.Skill, error) {
	return s.store.Skills.List()
}

func (s *Service) CreateSkill(in types.SkillInput) (*types.Skill, error) {
	skill := &types.Skill{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Icon:     optionalString(in.Icon),
		Category: in.Category,
		Order:    in.Order,
	}
	if err := s.store.Skills.Create(skill); err != nil {
		return nil, err
	}
	utils.Zlog.Info("Skill created", zap.String("id", skill.ID), zap.String("name", skill.Name))
	return skill, nil
}

func (s *Service) UpdateSkill(id string, body map[string]interface{}) (*types.Skill, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	return s.store.Skills.Update(id, changes)
}

func (s *Service) DeleteSkill(id string) error {
	return s.store.Skills.Delete(id)
}

// ====== EXPERIENCE ======

func (s *Service) Experience() ([]types.Experience, error) {
	return s.store.Experience.List()
}

func (s *Service) CreateExperience(in types.ExperienceInput) (*types.Experience, error) {
	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := optionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	exp := &types.Experience{
		ID:          uuid.NewString(),
		Company:     in.Company,
		CompanyLogo: optionalString(in.CompanyLogo),
		Title:       in.Title,
		Location:    in.Location,
		WorkType:    in.WorkType,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: in.Description,
		Order:       in.Order,
	}
	if err := s.store.Experience.Create(exp); err != nil {
		return nil, err
	}
	utils.Zlog.Info("Experience created", zap.String("id", exp.ID), zap.String("company", exp.Company))
	return exp, nil
}

func (s *Service) UpdateExperience(id string, body map[string]interface{}) (*types.Experience, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	return s.store.Experience.Update(id, changes)
}

func (s *Service) DeleteExperience(id string) error {
	return s.store.Experience.Delete(id)
}

// ====== PROJECTS ======

func (s *Service) Projects() ([]types.Project, error) {
	return s.store.Projects.List()
}

// Project looks up by id first and falls back to the slug.
func (s *Service) Project(idOrSlug string) (*types.Project, error) {
	project, err := s.store.Projects.GetByID(idOrSlug)
	if errors.Is(err, store.ErrNotFound) {
		return s.store.Projects.GetBySlug(idOrSlug)
	}
	return project, err
}

func (s *Service) CreateProject(in types.ProjectInput) (*types.Project, error) {
	project := &types.Project{
		ID:           uuid.NewString(),
		Slug:         in.Slug,
		Title:        in.Title,
		ShortDesc:    in.ShortDesc,
		FullDesc:     optionalString(in.FullDesc),
		ThumbnailURL: optionalString(in.ThumbnailURL),
		Screenshots:  in.Screenshots,
		TechStack:    in.TechStack,
		Company:      optionalString(in.Company),
		Role:         optionalString(in.Role),
		Challenges:   optionalString(in.Challenges),
		LiveURL:      optionalString(in.LiveURL),
		RepoURL:      optionalString(in.RepoURL),
		Featured:     in.Featured,
		Order:        in.Order,
	}
	if err := s.store.Projects.Create(project); err != nil {
		return nil, err
	}
	utils.Zlog.Info("Project created", zap.String("id", project.ID), zap.String("slug", project.Slug))
	return project, nil
}

func (s *Service) UpdateProject(id string, body map[string]interface{}) (*types.Project, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	return s.store.Projects.Update(id, changes)
}

func (s *Service) DeleteProject(id string) error {
	return s.store.Projects.Delete(id)
}

// ====== EDUCATION / CERTIFICATIONS ======

func (s *Service) EducationList() (*types.EducationList, error) {
	education, err := s.store.Education.List()
	if err != nil {
		return nil, err
	}
	certifications, err := s.store.Certifications.List()
	if err != nil {
		return nil, err
	}
	return &types.EducationList{Education: education, Certifications: certifications}, nil
}

// CreateEducationEntry dispatches the tagged variant to the repository of
// its kind and returns the created record.
func (s *Service) CreateEducationEntry(req types.EducationRequest) (interface{}, error) {
	switch req.Kind {
	case types.KindCertification:
		in := req.Certification
		issueDate, err := optionalDate(in.IssueDate)
		if err != nil {
			return nil, err
		}
		cert := &types.Certification{
			ID:        uuid.NewString(),
			Title:     in.Title,
			Issuer:    in.Issuer,
			IssueDate: issueDate,
			CredURL:   optionalString(in.CredURL),
			LogoURL:   optionalString(in.LogoURL),
			Order:     in.Order,
		}
		if err := s.store.Certifications.Create(cert); err != nil {
			return nil, err
		}
		utils.Zlog.Info("Certification created", zap.String("id", cert.ID))
		return cert, nil
	default:
		in := req.Education
		graduationDate, err := optionalDate(in.GraduationDate)
		if err != nil {
			return nil, err
		}
		edu := &types.Education{
			ID:             uuid.NewString(),
			Institution:    in.Institution,
			Degree:         in.Degree,
			Field:          in.Field,
			GraduationDate: graduationDate,
			LogoURL:        optionalString(in.LogoURL),
			Order:          in.Order,
		}
		if err := s.store.Education.Create(edu); err != nil {
			return nil, err
		}
		utils.Zlog.Info("Education created", zap.String("id", edu.ID))
		return edu, nil
	}
}

func (s *Service) UpdateEducationEntry(kind types.EntityKind, id string, body map[string]interface{}) (interface{}, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	if kind == types.KindCertification {
		return s.store.Certifications.Update(id, changes)
	}
	return s.store.Education.Update(id, changes)
}

func (s *Service) DeleteEducationEntry(kind types.EntityKind, id string) error {
	if kind == types.KindCertification {
		return s.store.Certifications.Delete(id)
	}
	return s.store.Education.Delete(id)
}

// ====== CONTACT ======

func (s *Service) Messages() ([]types.ContactMessage, error) {
	return s.store.Messages.List()
}

func (s *Service) SubmitMessage(in types.ContactSubmission) (*types.ContactMessage, error) {
	msg := &types.ContactMessage{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.store.Messages.Create(msg); err != nil {
		return nil, err
	}
	utils.Zlog.Info("Contact message received", zap.String("id", msg.ID), zap.String("subject", msg.Subject))
	return msg, nil
}

func (s *Service) UpdateMessage(id string, body map[string]interface{}) (*types.ContactMessage, error) {
	changes, err := normalizeChanges(body)
	if err != nil {
		return nil, err
	}
	return s.store.Messages.Update(id, changes)
}

func (s *Service) DeleteMessage(id string) error {
	return s.store.Messages.Delete(id)
}

// ====== MEDIA / STATS ======

func (s *Service) MediaList() ([]types.Media, error) {
	return s.store.Media.List()
}

func (s *Service) Stats() (*types.DashboardStats, error) {
	stats, err := s.store.Stats()
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return stats, nil
}
