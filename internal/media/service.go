package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/config"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// Uploader pushes an object to storage and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}

// Service handles admin image uploads.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
}

// UploadInput is a single file upload request.
type UploadInput struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult reports where the uploaded file is served from.
type UploadResult struct {
	URL      string `json:"url"`
	Folder   string `json:"folder"`
	Filename string `json:"filename"`
}

type service struct {
	uploader       Uploader
	allowedFolders map[string]struct{}
	maxBytes       int64
}

// NewService builds the media service from the media configuration.
func NewService(uploader Uploader, cfg config.MediaConfig) (Service, error) {
	if uploader == nil {
		return nil, fmt.Errorf("uploader required")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	folders := make(map[string]struct{}, len(cfg.AllowedFolders))
	for _, folder := range cfg.AllowedFolders {
		folder = strings.TrimSpace(strings.ToLower(folder))
		if folder != "" {
			folders[folder] = struct{}{}
		}
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("at least one allowed folder required")
	}
	return &service{
		uploader:       uploader,
		allowedFolders: folders,
		maxBytes:       int64(cfg.MaxUploadMB) * 1024 * 1024,
	}, nil
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	folder := strings.TrimSpace(strings.ToLower(input.Folder))
	if _, ok := s.allowedFolders[folder]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown upload folder").
			WithDetails(map[string]any{"folder": input.Folder})
	}
	if _, ok := allowedContentTypes[strings.ToLower(input.ContentType)]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported file type")
	}
	if input.Size > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file exceeds the upload size limit").
			WithDetails(map[string]any{"max_bytes": s.maxBytes})
	}

	filename := sanitizeFilename(input.Filename)
	if filename == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "filename required")
	}

	// Cap the read as well; Size comes from the client.
	body := io.LimitReader(input.Body, s.maxBytes+1)
	url, err := s.uploader.Upload(ctx, folder, filename, input.ContentType, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload file")
	}

	return &UploadResult{URL: url, Folder: folder, Filename: filename}, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-.")
}
