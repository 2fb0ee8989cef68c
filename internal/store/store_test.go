package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/IMohy/portfolio-imohy/internal/loaders"
	"github.com/IMohy/portfolio-imohy/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client, err := loaders.NewSQLiteClient(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return NewStore(client.DB)
}

func TestSkillListOrdering(t *testing.T) {
	st := newTestStore(t)

	for _, skill := range []types.Skill{
		{ID: uuid.NewString(), Name: "TypeScript", Category: "Languages", Order: 2},
		{ID: uuid.NewString(), Name: "JavaScript", Category: "Languages", Order: 0},
		{ID: uuid.NewString(), Name: "HTML5", Category: "Languages", Order: 1},
	} {
		s := skill
		if err := st.Skills.Create(&s); err != nil {
			t.Fatalf("create skill: %v", err)
		}
	}

	skills, err := st.Skills.List()
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(skills))
	}
	for i := 1; i < len(skills); i++ {
		if skills[i-1].Order > skills[i].Order {
			t.Errorf("skills out of order at %d: %d > %d", i, skills[i-1].Order, skills[i].Order)
		}
	}
}

func TestSingletonUpsertKeepsID(t *testing.T) {
	st := newTestStore(t)

	first, err := st.Hero.Upsert(
		map[string]interface{}{"headline": "Mohamed Mohy"},
		&types.Hero{ID: uuid.NewString()},
	)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.Headline != "Mohamed Mohy" {
		t.Errorf("headline = %q, want %q", first.Headline, "Mohamed Mohy")
	}

	second, err := st.Hero.Upsert(
		map[string]interface{}{"subtitle": "Frontend Web Developer"},
		&types.Hero{ID: uuid.NewString()},
	)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("id changed across upserts: %q then %q", first.ID, second.ID)
	}
	if second.Headline != "Mohamed Mohy" {
		t.Errorf("first change lost: headline = %q", second.Headline)
	}
	if second.Subtitle != "Frontend Web Developer" {
		t.Errorf("second change missing: subtitle = %q", second.Subtitle)
	}
}

func TestSettingsGetOrCreateDefaults(t *testing.T) {
	st := newTestStore(t)

	settings, err := st.Settings.GetOrCreate(&types.SiteSettings{ID: "settings"})
	if err != nil {
		t.Fatalf("get or create settings: %v", err)
	}
	if settings.ID != "settings" {
		t.Errorf("id = %q, want %q", settings.ID, "settings")
	}
	if settings.PrimaryHue != 199 || settings.DefaultTheme != "dark" {
		t.Errorf("defaults not applied: hue=%d theme=%q", settings.PrimaryHue, settings.DefaultTheme)
	}

	again, err := st.Settings.GetOrCreate(&types.SiteSettings{ID: "other"})
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != "settings" {
		t.Errorf("second read created a new row: id = %q", again.ID)
	}
}

func TestEducationDeleteDoesNotTouchCertifications(t *testing.T) {
	st := newTestStore(t)

	edu := types.Education{ID: uuid.NewString(), Institution: "Obour Institute", Degree: "Bachelor's Degree"}
	cert := types.Certification{ID: uuid.NewString(), Title: "React Development Cross-Skilling", Issuer: "Udacity"}
	if err := st.Education.Create(&edu); err != nil {
		t.Fatalf("create education: %v", err)
	}
	if err := st.Certifications.Create(&cert); err != nil {
		t.Fatalf("create certification: %v", err)
	}

	if err := st.Education.Delete(edu.ID); err != nil {
		t.Fatalf("delete education: %v", err)
	}
	if _, err := st.Certifications.GetByID(cert.ID); err != nil {
		t.Errorf("certification affected by education delete: %v", err)
	}

	// Deleting with the wrong kind's repo must miss.
	if err := st.Certifications.Delete(edu.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-kind delete: got %v, want ErrNotFound", err)
	}
}

func TestMarkReadTouchesOnlyFlag(t *testing.T) {
	st := newTestStore(t)

	msg := types.ContactMessage{
		ID:      uuid.NewString(),
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "This is a long enough message.",
	}
	if err := st.Messages.Create(&msg); err != nil {
		t.Fatalf("create message: %v", err)
	}

	updated, err := st.Messages.MarkRead(msg.ID, true)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !updated.IsRead {
		t.Error("isRead not set")
	}
	if updated.Message != msg.Message || updated.Subject != msg.Subject {
		t.Error("other fields changed by MarkRead")
	}

	back, err := st.Messages.MarkRead(msg.ID, false)
	if err != nil {
		t.Fatalf("mark unread: %v", err)
	}
	if back.IsRead {
		t.Error("isRead not cleared")
	}
}

func TestProjectSlugUnique(t *testing.T) {
	st := newTestStore(t)

	first := types.Project{ID: uuid.NewString(), Slug: "portfolio-website", Title: "Personal Portfolio"}
	if err := st.Projects.Create(&first); err != nil {
		t.Fatalf("create project: %v", err)
	}

	dup := types.Project{ID: uuid.NewString(), Slug: "portfolio-website", Title: "Duplicate"}
	if err := st.Projects.Create(&dup); err == nil {
		t.Error("duplicate slug accepted")
	}

	found, err := st.Projects.GetBySlug("portfolio-website")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if found.ID != first.ID {
		t.Errorf("slug lookup returned %q, want %q", found.ID, first.ID)
	}
}

func TestStatsCounts(t *testing.T) {
	st := newTestStore(t)

	if err := st.Projects.Create(&types.Project{ID: uuid.NewString(), Slug: "p1", Title: "P1"}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if err := st.Skills.Create(&types.Skill{ID: uuid.NewString(), Name: "Go", Category: "Languages"}); err != nil {
		t.Fatalf("create skill: %v", err)
	}
	if err := st.Skills.Create(&types.Skill{ID: uuid.NewString(), Name: "SQL", Category: "Languages"}); err != nil {
		t.Fatalf("create skill: %v", err)
	}

	stats, err := st.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Projects != 1 || stats.Skills != 2 || stats.Messages != 0 || stats.Experience != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
