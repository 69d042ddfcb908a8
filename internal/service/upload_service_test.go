package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/config"
)

type memoryImages struct {
	objects map[string][]byte
	types   map[string]string
}

func (m *memoryImages) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if m.objects == nil {
		m.objects = map[string][]byte{}
		m.types = map[string]string{}
	}
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memoryImages) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

var pngHead = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newUploadService(store ImageStore, limit int64) *UploadService {
	svc := NewUploadService(store, config.StorageConfig{MaxImageSize: limit}, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestUploadPNG(t *testing.T) {
	store := &memoryImages{}
	svc := newUploadService(store, 1024)

	res, err := svc.Upload(context.Background(), UploadInput{File: bytes.NewReader(pngHead), DeclaredType: "image/png"})
	require.NoError(t, err)

	assert.Equal(t, "image/png", res.MIME)
	assert.True(t, strings.HasPrefix(res.Key, "products/2024/03/09/"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+res.Key, res.URL)
	assert.Equal(t, pngHead, store.objects[res.Key])
}

func TestUploadRejects(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		declared string
		max      int64
		want     error
	}{
		{name: "empty", data: nil, want: ErrEmptyImage},
		{name: "text", data: []byte("hello world"), want: ErrUnsupportedImage},
		{name: "declared mismatch", data: pngHead, declared: "image/jpeg", want: ErrUnsupportedImage},
		{name: "too large", data: pngHead, max: 4, want: ErrImageTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := tt.max
			if limit == 0 {
				limit = 1024
			}
			store := &memoryImages{}
			svc := newUploadService(store, limit)

			_, err := svc.Upload(context.Background(), UploadInput{File: bytes.NewReader(tt.data), DeclaredType: tt.declared})
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, store.objects)
		})
	}
}

func TestUploadSanitizesSVG(t *testing.T) {
	store := &memoryImages{}
	svc := newUploadService(store, 1024)
	doc := `<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"><script>alert(2)</script><rect/></svg>`

	res, err := svc.Upload(context.Background(), UploadInput{File: strings.NewReader(doc), DeclaredType: "application/octet-stream"})
	require.NoError(t, err)

	stored := string(store.objects[res.Key])
	assert.NotContains(t, stored, "script")
	assert.NotContains(t, stored, "onload")
	assert.Contains(t, stored, "<rect/>")
	assert.Equal(t, "image/svg+xml", store.types[res.Key])
}
