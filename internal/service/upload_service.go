package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/rs/zerolog"

	"adminconsole/internal/config"
	"adminconsole/internal/ids"
	"adminconsole/internal/media/sniffer"
	"adminconsole/internal/media/svg"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
	ErrEmptyImage       = errors.New("empty file")
)

// ImageStore is where product images end up.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

type UploadInput struct {
	File         io.Reader
	DeclaredType string
}

type UploadResult struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	MIME      string `json:"mime"`
	SizeBytes int64  `json:"sizeBytes"`
}

// UploadService stores product images and hands back the URL the product
// form saves as imageUrl.
type UploadService struct {
	store   ImageStore
	maxSize int64
	log     zerolog.Logger
	now     func() time.Time
}

func NewUploadService(store ImageStore, cfg config.StorageConfig, log zerolog.Logger) *UploadService {
	maxSize := cfg.MaxImageSize
	if maxSize <= 0 {
		maxSize = 5 << 20
	}
	return &UploadService{store: store, maxSize: maxSize, log: log, now: time.Now}
}

func (s *UploadService) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	if input.File == nil {
		return UploadResult{}, ErrEmptyImage
	}

	data, err := io.ReadAll(io.LimitReader(input.File, s.maxSize+1))
	if err != nil {
		return UploadResult{}, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return UploadResult{}, ErrEmptyImage
	}
	if int64(len(data)) > s.maxSize {
		return UploadResult{}, ErrImageTooLarge
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	result, err := sniffer.DetectHead(head)
	if err != nil {
		return UploadResult{}, ErrUnsupportedImage
	}

	// Browsers often send octet-stream for drag-and-drop uploads.
	if declared := input.DeclaredType; declared != "" && declared != "application/octet-stream" && declared != result.MIME {
		return UploadResult{}, fmt.Errorf("%w: declared %s, actual %s", ErrUnsupportedImage, declared, result.MIME)
	}

	if result.Type == sniffer.TypeSVG {
		clean, err := svg.Sanitize(data)
		if err != nil {
			return UploadResult{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		data = clean
	}

	key := s.objectKey(string(result.Type))
	if err := s.store.Put(ctx, key, data, result.MIME); err != nil {
		return UploadResult{}, fmt.Errorf("put object: %w", err)
	}

	s.log.Info().Str("key", key).Str("mime", result.MIME).Int("size", len(data)).Msg("product image stored")

	return UploadResult{
		URL:       s.store.PublicURL(key),
		Key:       key,
		MIME:      result.MIME,
		SizeBytes: int64(len(data)),
	}, nil
}

func (s *UploadService) objectKey(ext string) string {
	datePrefix := s.now().UTC().Format("2006/01/02")
	return path.Join("products", datePrefix, fmt.Sprintf("%s.%s", ids.New(), ext))
}
