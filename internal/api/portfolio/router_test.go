package portfolio

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
	"github.com/IMohy/portfolio-imohy/internal/loaders"
	"github.com/IMohy/portfolio-imohy/internal/store"
	"github.com/IMohy/portfolio-imohy/internal/types"
)

type testAPI struct {
	router   *gin.Engine
	store    *store.Store
	sessions *auth.SessionManager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := loaders.NewSQLiteClient(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	st := store.NewStore(client.DB)
	sessions := auth.NewSessionManager("test-secret", time.Hour)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), st, sessions)
	return &testAPI{router: router, store: st, sessions: sessions}
}

func (a *testAPI) request(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := a.sessions.Issue("admin")
		if err != nil {
			t.Fatalf("issue session: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestWritesRequireSession(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPost, "/api/skills",
		map[string]interface{}{"name": "Go", "category": "Languages"}, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	resp := decode[types.ErrorResponse](t, rec)
	if resp.Error != "Unauthorized" {
		t.Errorf("error = %q, want %q", resp.Error, "Unauthorized")
	}

	count, err := api.store.Skills.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("unauthorized write reached the store: %d rows", count)
	}
}

func TestContactValidation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Hi",
		"message": "too short",
	}, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decode[types.ErrorResponse](t, rec)
	if resp.Error != "Invalid form data" {
		t.Errorf("error = %q, want %q", resp.Error, "Invalid form data")
	}

	count, _ := api.store.Messages.Count()
	if count != 0 {
		t.Errorf("rejected submission was stored: %d rows", count)
	}

	rec = api.request(t, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Hi there",
		"message": "This message is long enough to pass.",
	}, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	msg := decode[types.ContactMessage](t, rec)
	if msg.IsRead {
		t.Error("new message created as read")
	}
}

func TestHeroUpsert(t *testing.T) {
	api := newTestAPI(t)

	// Empty hero reads as null.
	rec := api.request(t, http.MethodGet, "/api/hero", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "null" {
		t.Errorf("empty hero = %s, want null", body)
	}

	rec = api.request(t, http.MethodPut, "/api/hero",
		map[string]interface{}{"headline": "Mohamed Mohy"}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	first := decode[types.Hero](t, rec)

	rec = api.request(t, http.MethodPut, "/api/hero",
		map[string]interface{}{"subtitle": "Frontend Web Developer"}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	second := decode[types.Hero](t, rec)

	if second.ID != first.ID {
		t.Errorf("hero id changed: %q then %q", first.ID, second.ID)
	}
	if second.Headline != "Mohamed Mohy" || second.Subtitle != "Frontend Web Developer" {
		t.Errorf("partial updates not merged: %+v", second)
	}
}

func TestProjectLookupFallsBackToSlug(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPost, "/api/projects", map[string]interface{}{
		"title":     "Personal Portfolio",
		"slug":      "portfolio-website",
		"shortDesc": "This portfolio website.",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[types.Project](t, rec)

	rec = api.request(t, http.MethodGet, "/api/projects/"+created.ID, nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("by id status = %d", rec.Code)
	}

	rec = api.request(t, http.MethodGet, "/api/projects/portfolio-website", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("by slug status = %d", rec.Code)
	}
	bySlug := decode[types.Project](t, rec)
	if bySlug.ID != created.ID {
		t.Errorf("slug lookup returned %q, want %q", bySlug.ID, created.ID)
	}

	rec = api.request(t, http.MethodGet, "/api/projects/nope", nil, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing project status = %d, want 404", rec.Code)
	}
	resp := decode[types.ErrorResponse](t, rec)
	if resp.Error != "Project not found" {
		t.Errorf("error = %q, want %q", resp.Error, "Project not found")
	}
}

func TestExperienceUpdateKeepsStartDate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPost, "/api/experience", map[string]interface{}{
		"company":   "Brmaja",
		"title":     "Frontend Developer",
		"location":  "Cairo, Egypt",
		"workType":  "Full-time",
		"startDate": "2021-10-01",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[types.Experience](t, rec)
	if created.StartDate.Year() != 2021 {
		t.Fatalf("startDate = %v", created.StartDate)
	}

	// Dashboards echo the record back on edit, so an untouched date field
	// arrives as an empty string. It must not null the column.
	rec = api.request(t, http.MethodPut, "/api/experience", map[string]interface{}{
		"id":        created.ID,
		"title":     "Senior Frontend Developer",
		"startDate": "",
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}
	updated := decode[types.Experience](t, rec)

	if updated.Title != "Senior Frontend Developer" {
		t.Errorf("title = %q", updated.Title)
	}
	if !updated.StartDate.Equal(created.StartDate) {
		t.Errorf("startDate changed: %v, want %v", updated.StartDate, created.StartDate)
	}
}

func TestEducationTypeDiscriminator(t *testing.T) {
	api := newTestAPI(t)

	rec := api.request(t, http.MethodPost, "/api/education", map[string]interface{}{
		"type":   "certification",
		"title":  "React Development Cross-Skilling",
		"issuer": "Udacity",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create certification status = %d: %s", rec.Code, rec.Body.String())
	}
	cert := decode[types.Certification](t, rec)

	// No type field defaults to an education entry.
	rec = api.request(t, http.MethodPost, "/api/education", map[string]interface{}{
		"institution": "Obour Institute",
		"degree":      "Bachelor's Degree",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create education status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = api.request(t, http.MethodGet, "/api/education", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	list := decode[types.EducationList](t, rec)
	if len(list.Education) != 1 || len(list.Certifications) != 1 {
		t.Fatalf("got %d education, %d certifications, want 1 and 1",
			len(list.Education), len(list.Certifications))
	}

	// DELETE routes on the type query parameter.
	rec = api.request(t, http.MethodDelete, "/api/education?id="+cert.ID+"&type=certification", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}
	ok := decode[types.SuccessResponse](t, rec)
	if !ok.Success {
		t.Error("delete did not report success")
	}

	list = decode[types.EducationList](t, api.request(t, http.MethodGet, "/api/education", nil, false))
	if len(list.Certifications) != 0 {
		t.Errorf("certification not deleted")
	}
	if len(list.Education) != 1 {
		t.Errorf("education entry deleted by certification delete")
	}
}

func TestSkillDeleteEnvelope(t *testing.T) {
	api := newTestAPI(t)

	created := decode[types.Skill](t, api.request(t, http.MethodPost, "/api/skills",
		map[string]interface{}{"name": "Go", "category": "Languages"}, true))

	rec := api.request(t, http.MethodDelete, "/api/skills?id="+created.ID, nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}
	ok := decode[types.SuccessResponse](t, rec)
	if !ok.Success {
		t.Error("delete did not report success")
	}

	rec = api.request(t, http.MethodDelete, "/api/skills", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing id status = %d, want 400", rec.Code)
	}
}
