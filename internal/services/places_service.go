package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"newlife/internal/models/db_models"
	resp "newlife/internal/models/response_models"
	mem "newlife/pkg/memcache"
	"newlife/pkg/utils"
)

type PlacesServiceInterface interface {
	Search(ctx context.Context, query string) ([]resp.PlaceSummary, error)
	Nearby(ctx context.Context, lat, lng, radius float64, placeType string) ([]resp.PlaceSummary, error)
	PhotoFor(ctx context.Context, destination string) (*resp.DestinationPhoto, error)
}

var landmarkTypes = map[string]bool{
	"tourist_attraction":  true,
	"historical_landmark": true,
	"monument":            true,
	"museum":              true,
	"church":              true,
	"place_of_worship":    true,
	"landmark":            true,
}

var naturalTypes = map[string]bool{
	"natural_feature": true,
	"park":            true,
	"national_park":   true,
	"beach":           true,
	"mountain":        true,
	"lake":            true,
}

const (
	photoQueryConcurrency = 4
	photoMaxWidth         = 1200
	maxPhotoCountWeight   = 10
	nearbyMaxRadius       = 50000
)

// photoQueries is the fixed list of text searches issued for a destination.
func photoQueries(destination string) []string {
	return []string{
		destination + " landmark",
		destination + " tourist attraction",
		destination + " famous places",
		destination,
	}
}

// ScoreCandidate ranks a place as a photo source for destination.
// rating * log10(reviews + 10) * min(photos, 10), boosted for landmark or natural tags and a name match.
func ScoreCandidate(c PlaceCandidate, destination string) float64 {
	photos := len(c.Photos)
	if photos > maxPhotoCountWeight {
		photos = maxPhotoCountWeight
	}
	score := c.Rating * math.Log10(float64(c.ReviewCount)+10) * float64(photos)

	if hasAnyType(c.Types, landmarkTypes) {
		score *= 1.5
	}
	if hasAnyType(c.Types, naturalTypes) {
		score *= 1.3
	}
	if d := strings.ToLower(strings.TrimSpace(destination)); d != "" && strings.Contains(strings.ToLower(c.Name), d) {
		score *= 1.2
	}
	return score
}

func hasAnyType(types []string, set map[string]bool) bool {
	for _, t := range types {
		if set[t] {
			return true
		}
	}
	return false
}

// bestCandidate skips candidates without photos; ties keep the first seen.
func bestCandidate(cands []PlaceCandidate, destination string) (PlaceCandidate, bool) {
	var best PlaceCandidate
	bestScore := -1.0
	for _, c := range cands {
		if len(c.Photos) == 0 {
			continue
		}
		if s := ScoreCandidate(c, destination); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore >= 0
}

type PlacesService struct {
	client       PlacesClientInterface
	cache        mem.PhotoCache
	destinations DestinationServiceInterface
	logger       *zap.Logger
}

func NewPlacesService(
	client PlacesClientInterface,
	cache mem.PhotoCache,
	destinations DestinationServiceInterface,
	logger *zap.Logger,
) PlacesServiceInterface {
	return &PlacesService{
		client:       client,
		cache:        cache,
		destinations: destinations,
		logger:       logger,
	}
}

func (p *PlacesService) Search(ctx context.Context, query string) ([]resp.PlaceSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	cands, err := p.client.TextSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	return toPlaceSummaries(cands), nil
}

func (p *PlacesService) Nearby(ctx context.Context, lat, lng, radius float64, placeType string) ([]resp.PlaceSummary, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, utils.ErrInvalidInput
	}
	if radius <= 0 || radius > nearbyMaxRadius {
		return nil, utils.ErrInvalidInput
	}
	cands, err := p.client.NearbySearch(ctx, lat, lng, radius, strings.TrimSpace(placeType))
	if err != nil {
		return nil, err
	}
	return toPlaceSummaries(cands), nil
}

func (p *PlacesService) PhotoFor(ctx context.Context, destination string) (*resp.DestinationPhoto, error) {
	display := strings.Join(strings.Fields(destination), " ")
	key := db_models.NormalizeDestination(destination)
	if key == "" {
		return nil, utils.ErrInvalidInput
	}

	if url, ok := p.cache.Get(ctx, key); ok {
		if p.destinations != nil {
			if err := p.destinations.Touch(ctx, key); err != nil {
				p.logger.Warn("count destination lookup", zap.String("destination", key), zap.Error(err))
			}
		}
		return &resp.DestinationPhoto{Destination: display, PhotoURL: url, Cached: true}, nil
	}

	queries := photoQueries(display)
	results := make([][]PlaceCandidate, len(queries))
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(photoQueryConcurrency)
	for i, q := range queries {
		g.Go(func() error {
			cands, err := p.client.TextSearch(gctx, q)
			if err != nil {
				failed.Add(1)
				p.logger.Warn("photo query failed", zap.String("query", q), zap.Error(err))
				return nil
			}
			results[i] = cands
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if int(failed.Load()) == len(queries) {
		return nil, fmt.Errorf("all photo queries failed for %q: %w", display, utils.ErrUpstreamService)
	}

	seen := make(map[string]bool)
	var merged []PlaceCandidate
	for _, cands := range results {
		for _, c := range cands {
			id := c.ID
			if id == "" {
				id = c.Name + "|" + c.Address
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, c)
		}
	}

	winner, ok := bestCandidate(merged, display)
	if !ok {
		return nil, utils.ErrPlaceNotFound
	}

	url, err := p.client.PhotoURL(ctx, winner.Photos[0], photoMaxWidth)
	if err != nil {
		return nil, err
	}
	p.cache.Set(ctx, key, url)

	if p.destinations != nil {
		err := p.destinations.Record(ctx, DestinationRecord{
			Name:        key,
			DisplayName: display,
			Address:     winner.Address,
			Latitude:    winner.Latitude,
			Longitude:   winner.Longitude,
			PlaceID:     winner.ID,
			PhotoURL:    url,
		})
		if err != nil {
			p.logger.Warn("record destination", zap.String("destination", key), zap.Error(err))
		}
	}

	return &resp.DestinationPhoto{Destination: display, PhotoURL: url}, nil
}

func toPlaceSummaries(cands []PlaceCandidate) []resp.PlaceSummary {
	out := make([]resp.PlaceSummary, 0, len(cands))
	for _, c := range cands {
		out = append(out, resp.PlaceSummary{
			PlaceID:     c.ID,
			Name:        c.Name,
			Address:     c.Address,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			Rating:      c.Rating,
			ReviewCount: c.ReviewCount,
			Types:       c.Types,
		})
	}
	return out
}
