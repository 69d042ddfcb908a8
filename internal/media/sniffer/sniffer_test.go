package sniffer

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectHead(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want MediaType
		mime string
	}{
		{name: "jpeg", head: []byte{0xff, 0xd8, 0xff, 0xe0}, want: TypeJPEG, mime: "image/jpeg"},
		{name: "png", head: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, want: TypePNG, mime: "image/png"},
		{name: "gif", head: []byte("GIF89a...."), want: TypeGIF, mime: "image/gif"},
		{name: "webp", head: []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), want: TypeWEBP, mime: "image/webp"},
		{name: "svg", head: []byte("  <svg xmlns=\"http://www.w3.org/2000/svg\"/>"), want: TypeSVG, mime: "image/svg+xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DetectHead(tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Type)
			assert.Equal(t, tt.mime, res.MIME)
		})
	}
}

func TestDetectUnknown(t *testing.T) {
	_, err := DetectHead(nil)
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = DetectHead([]byte("%PDF-1.7"))
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDetectReader(t *testing.T) {
	res, head, err := Detect(bytes.NewReader([]byte("GIF87a")))
	require.NoError(t, err)
	assert.Equal(t, TypeGIF, res.Type)
	assert.Equal(t, []byte("GIF87a"), head)
}

func TestMimeTypeFromHTTP(t *testing.T) {
	h := http.Header{}
	assert.Empty(t, MimeTypeFromHTTP(h))

	h.Set("Content-Type", "image/png; charset=binary")
	assert.Equal(t, "image/png", MimeTypeFromHTTP(h))
}
