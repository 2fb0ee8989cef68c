package portfolio

import (
	"testing"
	"time"
)

func TestNormalizeChanges(t *testing.T) {
	body := map[string]interface{}{
		"id":        "abc",
		"type":      "education",
		"createdAt": "2025-01-01T00:00:00Z",
		"title":     "New Title",
		"shortDesc": "desc",
		"order":     float64(3),
		"startDate": "2025-01-01",
		"endDate":   "",
		"techStack": []interface{}{"Go", "SQLite"},
	}

	changes, err := normalizeChanges(body)
	if err != nil {
		t.Fatalf("normalizeChanges: %v", err)
	}

	for _, dropped := range []string{"id", "type", "created_at"} {
		if _, ok := changes[dropped]; ok {
			t.Errorf("%q should not reach the store", dropped)
		}
	}

	if changes["title"] != "New Title" {
		t.Errorf("title = %v", changes["title"])
	}
	if changes["short_desc"] != "desc" {
		t.Errorf("camelCase not mapped: %v", changes["short_desc"])
	}
	if changes["display_order"] != float64(3) {
		t.Errorf("order not mapped to display_order: %v", changes["display_order"])
	}

	start, ok := changes["start_date"].(time.Time)
	if !ok {
		t.Fatalf("start_date not parsed: %T", changes["start_date"])
	}
	if start.Year() != 2025 || start.Month() != time.January {
		t.Errorf("start_date = %v", start)
	}

	if end, ok := changes["end_date"]; !ok || end != nil {
		t.Errorf("empty date should become null, got %v (present=%v)", end, ok)
	}

	if changes["tech_stack"] != `["Go","SQLite"]` {
		t.Errorf("array not re-marshaled: %v", changes["tech_stack"])
	}
}

func TestNormalizeChangesDropsEmptyRequiredDate(t *testing.T) {
	changes, err := normalizeChanges(map[string]interface{}{
		"startDate": "",
		"current":   true,
	})
	if err != nil {
		t.Fatalf("normalizeChanges: %v", err)
	}
	if _, ok := changes["start_date"]; ok {
		t.Error("empty startDate should be dropped, not nulled")
	}
	if changes["current"] != true {
		t.Errorf("current = %v", changes["current"])
	}
}

func TestNormalizeChangesRejectsBadDate(t *testing.T) {
	if _, err := normalizeChanges(map[string]interface{}{"startDate": "not-a-date"}); err == nil {
		t.Error("malformed date accepted")
	}
}

func TestColumnName(t *testing.T) {
	cases := map[string]string{
		"order":        "display_order",
		"shortDesc":    "short_desc",
		"thumbnailUrl": "thumbnail_url",
		"isRead":       "is_read",
		"title":        "title",
	}
	for in, want := range cases {
		if got := columnName(in); got != want {
			t.Errorf("columnName(%q) = %q, want %q", in, got, want)
		}
	}
}
