package media

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"

	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

type gatewayClient interface {
	UploadImage(ctx context.Context, upload gateway.ImageUpload) (string, error)
}

// Service validates and stores member profile images.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
}

type service struct {
	gw       gatewayClient
	logg     *logger.Logger
	maxBytes int64
}

// NewService constructs the media service. maxBytes caps the accepted
// image size.
func NewService(gw gatewayClient, logg *logger.Logger, maxBytes int64) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway client required")
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{gw: gw, logg: logg, maxBytes: maxBytes}, nil
}

// UploadInput models one submitted profile image.
type UploadInput struct {
	FileName     string
	DeclaredType string
	Data         []byte
}

// UploadOutput carries the stored image reference.
type UploadOutput struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif"}

// Upload checks name, size, declared type, and sniffed content before the
// image is forwarded for storage. The declared type and the sniffed type
// must both be on the allow list.
func (s *service) Upload(ctx context.Context, input UploadInput) (*UploadOutput, error) {
	fileName := sanitizeFileName(input.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}

	size := int64(len(input.Data))
	if size == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image data is empty")
	}
	if size > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodePayloadSize,
			fmt.Sprintf("image exceeds the %d byte limit", s.maxBytes))
	}

	declared, err := parseDeclaredType(input.DeclaredType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "content type invalid")
	}
	if !isAllowedImageType(declared) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("content type must be %s", humanReadableList(allowedImageTypes)))
	}

	sniffed := mimetype.Detect(input.Data).String()
	if base, _, parseErr := mime.ParseMediaType(sniffed); parseErr == nil {
		sniffed = base
	}
	if !isAllowedImageType(sniffed) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image content does not match an approved image type")
	}

	url, err := s.gw.UploadImage(ctx, gateway.ImageUpload{
		Filename:    fileName,
		ContentType: sniffed,
		Data:        input.Data,
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(ctx, fmt.Sprintf("media.uploaded %s (%d bytes)", fileName, size))
	}

	return &UploadOutput{URL: url, ContentType: sniffed, SizeBytes: size}, nil
}

func parseDeclaredType(value string) (string, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return "", fmt.Errorf("content type required")
	}
	mediaType, _, err := mime.ParseMediaType(clean)
	if err != nil {
		return "", err
	}
	return strings.ToLower(mediaType), nil
}

func isAllowedImageType(mimeType string) bool {
	for _, candidate := range allowedImageTypes {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}

func humanReadableList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	default:
		return fmt.Sprintf("%s, or %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}
}

func sanitizeFileName(name string) string {
	if name == "" {
		return ""
	}
	clean := path.Base(strings.TrimSpace(name))
	if clean == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-_.")
}
