package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IMohy/portfolio-imohy/internal/api/auth"
	"github.com/IMohy/portfolio-imohy/internal/types"
)

func TestReadsServedFromCacheWithinWindow(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/skills" {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(&hits, 1)
		json.NewEncoder(w).Encode([]types.Skill{{ID: "s1", Name: "Go", Category: "Languages"}})
	}))
	defer server.Close()

	c := New(server.URL, WithStaleTime(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		skills, err := c.Skills(ctx)
		if err != nil {
			t.Fatalf("skills: %v", err)
		}
		if len(skills) != 1 {
			t.Fatalf("got %d skills", len(skills))
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("backend hit %d times within staleness window, want 1", n)
	}

	c.Invalidate(KeySkills)
	if _, err := c.Skills(ctx); err != nil {
		t.Fatalf("skills after invalidate: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("backend hit %d times after invalidation, want 2", n)
	}
}

func TestExpiredEntryRefetches(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		json.NewEncoder(w).Encode([]types.Skill{})
	}))
	defer server.Close()

	c := New(server.URL, WithStaleTime(time.Minute))
	fetched := time.Now()
	c.cache.now = func() time.Time { return fetched }

	ctx := context.Background()
	if _, err := c.Skills(ctx); err != nil {
		t.Fatalf("skills: %v", err)
	}

	// Move past the window; the cached entry is stale now.
	c.cache.now = func() time.Time { return fetched.Add(2 * time.Minute) }
	if _, err := c.Skills(ctx); err != nil {
		t.Fatalf("skills: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("backend hit %d times across the window, want 2", n)
	}
}

func TestMutationInvalidatesDashboardStats(t *testing.T) {
	var skills []types.Skill
	var statHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/skills", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var in types.SkillInput
			json.NewDecoder(r.Body).Decode(&in)
			skill := types.Skill{ID: "new", Name: in.Name, Category: in.Category}
			skills = append(skills, skill)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(skill)
		default:
			atomic.AddInt32(&statHits, 1)
			json.NewEncoder(w).Encode(skills)
		}
	})
	for _, path := range []string{"/api/projects", "/api/contact", "/api/experience"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		})
	}
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, WithSnapshotStaleTime(time.Minute), WithStaleTime(time.Minute))
	ctx := context.Background()

	stats := c.DashboardStats(ctx)
	if stats.Skills != 0 {
		t.Fatalf("initial skill count = %d", stats.Skills)
	}

	// Cached: no extra backend traffic.
	c.DashboardStats(ctx)
	if n := atomic.LoadInt32(&statHits); n != 1 {
		t.Fatalf("skills endpoint hit %d times before mutation, want 1", n)
	}

	if _, err := c.CreateSkill(ctx, types.SkillInput{Name: "Go", Category: "Languages"}); err != nil {
		t.Fatalf("create skill: %v", err)
	}

	stats = c.DashboardStats(ctx)
	if stats.Skills != 1 {
		t.Errorf("skill count after mutation = %d, want 1", stats.Skills)
	}
}

func TestSnapshotToleratesFailedKind(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/hero", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.Hero{ID: "h1", Headline: "Mohamed Mohy"})
	})
	mux.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(types.ErrorResponse{Error: "Failed to fetch projects"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL)
	snapshot := c.Snapshot(context.Background())

	if snapshot.Hero == nil || snapshot.Hero.Headline != "Mohamed Mohy" {
		t.Errorf("hero missing from snapshot: %+v", snapshot.Hero)
	}
	if snapshot.Projects == nil {
		t.Error("projects nil, want empty slice")
	}
	if len(snapshot.Projects) != 0 {
		t.Errorf("failed kind produced %d projects", len(snapshot.Projects))
	}
}

func TestSnapshotNotCachedWhenBackendDown(t *testing.T) {
	var down atomic.Bool
	down.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(types.ErrorResponse{Error: "Internal server error"})
			return
		}
		switch r.URL.Path {
		case "/api/hero":
			json.NewEncoder(w).Encode(types.Hero{ID: "h1", Headline: "Mohamed Mohy"})
		case "/api/skills":
			json.NewEncoder(w).Encode([]types.Skill{{ID: "s1", Name: "Go", Category: "Languages"}})
		default:
			w.Write([]byte("null"))
		}
	}))
	defer server.Close()

	c := New(server.URL, WithSnapshotStaleTime(time.Minute))
	ctx := context.Background()

	blank := c.Snapshot(ctx)
	if blank.Hero != nil || len(blank.Skills) != 0 {
		t.Fatalf("snapshot has data while backend is down: %+v", blank)
	}

	// The backend recovers well inside the staleness window. The blank
	// result must not have been cached, so the next call refetches.
	down.Store(false)
	recovered := c.Snapshot(ctx)
	if recovered.Hero == nil || recovered.Hero.Headline != "Mohamed Mohy" {
		t.Errorf("hero still missing after recovery: %+v", recovered.Hero)
	}
	if len(recovered.Skills) != 1 {
		t.Errorf("skills still missing after recovery: %+v", recovered.Skills)
	}

	// A partially successful snapshot is cached as usual.
	down.Store(true)
	cached := c.Snapshot(ctx)
	if cached.Hero == nil {
		t.Error("recovered snapshot not served from cache")
	}
}

func TestSessionCookieAttached(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
			gotToken = cookie.Value
		}
		json.NewEncoder(w).Encode([]types.ContactMessage{})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := WithSession(context.Background(), "session-token")
	if _, err := c.Messages(ctx); err != nil {
		t.Fatalf("messages: %v", err)
	}
	if gotToken != "session-token" {
		t.Errorf("session cookie = %q, want %q", gotToken, "session-token")
	}
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(types.ErrorResponse{Error: "Project not found"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Project(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Project not found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
