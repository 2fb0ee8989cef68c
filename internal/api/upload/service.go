package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IMohy/portfolio-imohy/internal/store"
	"github.com/IMohy/portfolio-imohy/internal/types"
	"github.com/IMohy/portfolio-imohy/internal/utils"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Service stores uploaded files on disk under collision-resistant names
// and records them in the media library.
type Service struct {
	store     *store.Store
	uploadDir string
	now       func() time.Time
}

func NewService(st *store.Store, uploadDir string) *Service {
	return &Service{store: st, uploadDir: uploadDir, now: time.Now}
}

// SaveFile writes the upload to disk and records a media row. The declared
// content type is trusted as-is.
func (s *Service) SaveFile(header *multipart.FileHeader) (*types.UploadResult, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	uniqueName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), unsafeChars.ReplaceAllString(header.Filename, "_"))
	dst := filepath.Join(s.uploadDir, uniqueName)

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	result := &types.UploadResult{
		URL:      "/uploads/" + uniqueName,
		Filename: header.Filename,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
	}

	media := &types.Media{
		ID:       uuid.NewString(),
		URL:      result.URL,
		Filename: header.Filename,
		MimeType: result.MimeType,
		Size:     header.Size,
	}
	if err := s.store.Media.Create(media); err != nil {
		return nil, fmt.Errorf("record media: %w", err)
	}

	utils.Zlog.Info("File uploaded",
		zap.String("filename", header.Filename),
		zap.String("url", result.URL),
		zap.Int64("size", header.Size))
	return result, nil
}
