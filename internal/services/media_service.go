package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	resp "newlife/internal/models/response_models"
	"newlife/pkg/utils"
)

type MediaServiceInterface interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*resp.UploadedMedia, error)
}

// MediaService forwards images to an unsigned-upload endpoint (Cloudinary style).
type MediaService struct {
	HTTP      *http.Client
	UploadURL string
	Preset    string
	MaxBytes  int64
}

func NewMediaService(uploadURL, preset string, maxBytes int64) MediaServiceInterface {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &MediaService{
		HTTP:      &http.Client{Timeout: 60 * time.Second},
		UploadURL: uploadURL,
		Preset:    preset,
		MaxBytes:  maxBytes,
	}
}

func (m *MediaService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*resp.UploadedMedia, error) {
	if m.UploadURL == "" {
		return nil, utils.ErrFeatureNotConfigured
	}
	if file == nil {
		return nil, utils.ErrInvalidInput
	}
	if file.Size > m.MaxBytes {
		return nil, utils.ErrMediaTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// one byte over the limit is enough to reject
	data, err := io.ReadAll(io.LimitReader(src, m.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > m.MaxBytes {
		return nil, utils.ErrMediaTooLarge
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, utils.ErrUnsupportedMedia
	}

	body, formType, err := m.buildForm(filepath.Base(file.Filename), contentType, data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.UploadURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", formType)

	res, err := m.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media upload: %v: %w", err, utils.ErrUpstreamService)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("media upload: status %d %s: %w",
			res.StatusCode, gjson.GetBytes(raw, "error.message").String(), utils.ErrUpstreamService)
	}

	parsed := gjson.ParseBytes(raw)
	url := parsed.Get("secure_url").String()
	if url == "" {
		url = parsed.Get("url").String()
	}
	if url == "" {
		return nil, fmt.Errorf("media upload: no url in response: %w", utils.ErrUpstreamService)
	}

	return &resp.UploadedMedia{
		URL:      url,
		PublicID: parsed.Get("public_id").String(),
		Width:    int(parsed.Get("width").Int()),
		Height:   int(parsed.Get("height").Int()),
	}, nil
}

func (m *MediaService) buildForm(filename, contentType string, data []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}

	if m.Preset != "" {
		if err := w.WriteField("upload_preset", m.Preset); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
