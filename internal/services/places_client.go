package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"newlife/pkg/utils"
)

type PlaceCandidate struct {
	ID          string
	Name        string
	Address     string
	Latitude    float64
	Longitude   float64
	Rating      float64
	ReviewCount int
	Types       []string
	Photos      []string // photo resource names, pass to PhotoURL
}

type PlacesClientInterface interface {
	TextSearch(ctx context.Context, query string) ([]PlaceCandidate, error)
	NearbySearch(ctx context.Context, lat, lng, radius float64, placeType string) ([]PlaceCandidate, error)
	PhotoURL(ctx context.Context, photoName string, maxWidth int) (string, error)
}

const placesFieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
	"places.rating,places.userRatingCount,places.types,places.photos"

// GooglePlacesClient talks to the Places API (New).
type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient(apiKey, baseURL string) *GooglePlacesClient {
	if baseURL == "" {
		baseURL = "https://places.googleapis.com/v1"
	}
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *GooglePlacesClient) TextSearch(ctx context.Context, query string) ([]PlaceCandidate, error) {
	return c.search(ctx, "/places:searchText", map[string]any{
		"textQuery":      query,
		"maxResultCount": 10,
	})
}

func (c *GooglePlacesClient) NearbySearch(ctx context.Context, lat, lng, radius float64, placeType string) ([]PlaceCandidate, error) {
	body := map[string]any{
		"maxResultCount": 20,
		"locationRestriction": map[string]any{
			"circle": map[string]any{
				"center": map[string]float64{"latitude": lat, "longitude": lng},
				"radius": radius,
			},
		},
	}
	if placeType != "" {
		body["includedTypes"] = []string{placeType}
	}
	return c.search(ctx, "/places:searchNearby", body)
}

func (c *GooglePlacesClient) search(ctx context.Context, path string, body map[string]any) ([]PlaceCandidate, error) {
	if c.APIKey == "" {
		return nil, utils.ErrFeatureNotConfigured
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return parsePlaces(raw), nil
}

func (c *GooglePlacesClient) PhotoURL(ctx context.Context, photoName string, maxWidth int) (string, error) {
	if c.APIKey == "" {
		return "", utils.ErrFeatureNotConfigured
	}
	if maxWidth <= 0 {
		maxWidth = 1200
	}

	q := url.Values{}
	q.Set("maxWidthPx", fmt.Sprint(maxWidth))
	q.Set("skipHttpRedirect", "true")
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+strings.TrimLeft(photoName, "/")+"/media?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}
	uri := gjson.GetBytes(raw, "photoUri").String()
	if uri == "" {
		return "", fmt.Errorf("places photo: empty photoUri: %w", utils.ErrUpstreamService)
	}
	return uri, nil
}

func (c *GooglePlacesClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: %v: %w", err, utils.ErrUpstreamService)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(raw, "error.message").String()
		return nil, fmt.Errorf("places: status %d %s: %w", resp.StatusCode, msg, utils.ErrUpstreamService)
	}
	return raw, nil
}

func parsePlaces(raw []byte) []PlaceCandidate {
	var out []PlaceCandidate
	gjson.GetBytes(raw, "places").ForEach(func(_, p gjson.Result) bool {
		cand := PlaceCandidate{
			ID:          p.Get("id").String(),
			Name:        p.Get("displayName.text").String(),
			Address:     p.Get("formattedAddress").String(),
			Latitude:    p.Get("location.latitude").Float(),
			Longitude:   p.Get("location.longitude").Float(),
			Rating:      p.Get("rating").Float(),
			ReviewCount: int(p.Get("userRatingCount").Int()),
		}
		for _, t := range p.Get("types").Array() {
			cand.Types = append(cand.Types, t.String())
		}
		for _, ph := range p.Get("photos.#.name").Array() {
			cand.Photos = append(cand.Photos, ph.String())
		}
		out = append(out, cand)
		return true
	})
	return out
}
