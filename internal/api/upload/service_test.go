package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IMohy/portfolio-imohy/internal/loaders"
	"github.com/IMohy/portfolio-imohy/internal/store"
)

func multipartFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	client, err := loaders.NewSQLiteClient(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	defer client.Close()

	st := store.NewStore(client.DB)
	service := NewService(st, filepath.Join(dir, "uploads"))
	fixed := time.UnixMilli(1756700000000)
	service.now = func() time.Time { return fixed }

	header := multipartFile(t, "my photo (1).png", "fake image bytes")
	result, err := service.SaveFile(header)
	if err != nil {
		t.Fatalf("save file: %v", err)
	}

	// Unsafe characters collapse to underscores under a timestamp prefix.
	wantURL := "/uploads/1756700000000-my_photo__1_.png"
	if result.URL != wantURL {
		t.Errorf("url = %q, want %q", result.URL, wantURL)
	}
	if result.Filename != "my photo (1).png" {
		t.Errorf("filename = %q", result.Filename)
	}
	if result.Size != int64(len("fake image bytes")) {
		t.Errorf("size = %d", result.Size)
	}

	data, err := os.ReadFile(filepath.Join(dir, "uploads", "1756700000000-my_photo__1_.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}

	files, err := st.Media.List()
	if err != nil {
		t.Fatalf("list media: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d media rows, want 1", len(files))
	}
	if files[0].URL != wantURL || files[0].Filename != "my photo (1).png" {
		t.Errorf("media row = %+v", files[0])
	}
}
