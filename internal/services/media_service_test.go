package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"newlife/pkg/utils"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestUploadImage_ForwardsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "trips", r.FormValue("upload_preset"))
		f, h, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, pngHeader, data)
			assert.Equal(t, "beach.png", h.Filename)
			assert.Equal(t, "image/png", h.Header.Get("Content-Type"))
		}
		_, _ = w.Write([]byte(`{"public_id":"nl/abc","secure_url":"https://cdn.example.com/abc.png","width":1,"height":1}`))
	}))
	defer srv.Close()

	svc := NewMediaService(srv.URL, "trips", 0)
	got, err := svc.UploadImage(context.Background(), fileHeader(t, "../../beach.png", pngHeader))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/abc.png", got.URL)
	assert.Equal(t, "nl/abc", got.PublicID)
	assert.Equal(t, 1, got.Width)
}

func TestUploadImage_Rejections(t *testing.T) {
	svc := NewMediaService("http://127.0.0.1:1", "", 16)

	_, err := svc.UploadImage(context.Background(), fileHeader(t, "notes.txt", []byte("plain text")))
	assert.ErrorIs(t, err, utils.ErrUnsupportedMedia)

	_, err = svc.UploadImage(context.Background(), fileHeader(t, "big.png", append(pngHeader, make([]byte, 32)...)))
	assert.ErrorIs(t, err, utils.ErrMediaTooLarge)

	_, err = NewMediaService("", "", 0).UploadImage(context.Background(), fileHeader(t, "a.png", pngHeader))
	assert.ErrorIs(t, err, utils.ErrFeatureNotConfigured)
}

func TestUploadImage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	_, err := NewMediaService(srv.URL, "nope", 0).UploadImage(context.Background(), fileHeader(t, "a.png", pngHeader))
	assert.ErrorIs(t, err, utils.ErrUpstreamService)
	assert.Contains(t, err.Error(), "Upload preset not found")
}
