// Package store is the persistence gateway: per-kind repositories over the
// relational store with no caching and no cross-entity transactions.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/IMohy/portfolio-imohy/internal/types"
)

// Store aggregates the repositories for every entity kind.
type Store struct {
	Hero     *HeroRepo
	About    *AboutRepo
	Settings *SettingsRepo

	Skills         *SkillRepo
	Experience     *ExperienceRepo
	Projects       *ProjectRepo
	Education      *EducationRepo
	Certifications *CertificationRepo
	Messages       *MessageRepo
	Media          *MediaRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Hero:     &HeroRepo{newSingleton[types.Hero](db)},
		About:    &AboutRepo{newSingleton[types.About](db)},
		Settings: &SettingsRepo{newSingleton[types.SiteSettings](db)},

		Skills:         &SkillRepo{newCollection[types.Skill](db, "display_order asc")},
		Experience:     &ExperienceRepo{newCollection[types.Experience](db, "display_order asc")},
		Projects:       &ProjectRepo{newCollection[types.Project](db, "display_order asc")},
		Education:      &EducationRepo{newCollection[types.Education](db, "display_order asc")},
		Certifications: &CertificationRepo{newCollection[types.Certification](db, "display_order asc")},
		Messages:       &MessageRepo{newCollection[types.ContactMessage](db, "created_at desc")},
		Media:          &MediaRepo{newCollection[types.Media](db, "created_at desc")},
	}
}

type HeroRepo struct{ singleton[types.Hero] }

type AboutRepo struct{ singleton[types.About] }

type SettingsRepo struct{ singleton[types.SiteSettings] }

type SkillRepo struct{ collection[types.Skill] }

type ExperienceRepo struct{ collection[types.Experience] }

type EducationRepo struct{ collection[types.Education] }

type CertificationRepo struct{ collection[types.Certification] }

type MediaRepo struct{ collection[types.Media] }

type ProjectRepo struct{ collection[types.Project] }

// GetBySlug is the alternate project lookup used when an id miss falls
// back to the slug.
func (r *ProjectRepo) GetBySlug(slug string) (*types.Project, error) {
	var project types.Project
	err := r.db.Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get by slug: %w", err)
	}
	return &project, nil
}

type MessageRepo struct{ collection[types.ContactMessage] }

// MarkRead flips only the isRead flag of a single message.
func (r *MessageRepo) MarkRead(id string, read bool) (*types.ContactMessage, error) {
	return r.Update(id, map[string]interface{}{"is_read": read})
}

// Stats counts the entity kinds surfaced on the dashboard landing page.
func (s *Store) Stats() (*types.DashboardStats, error) {
	projects, err := s.Projects.Count()
	if err != nil {
		return nil, err
	}
	skills, err := s.Skills.Count()
	if err != nil {
		return nil, err
	}
	messages, err := s.Messages.Count()
	if err != nil {
		return nil, err
	}
	experience, err := s.Experience.Count()
	if err != nil {
		return nil, err
	}
	return &types.DashboardStats{
		Projects:   projects,
		Skills:     skills,
		Messages:   messages,
		Experience: experience,
	}, nil
}
