package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"newlife/internal/models/db_models"
	"newlife/internal/models/request_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/repositories"
	"newlife/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, userID, tripID uuid.UUID, request request_models.GenerateItineraryRequest) (*resp.ItineraryResponse, error)
	Get(ctx context.Context, userID, tripID uuid.UUID) (*resp.ItineraryResponse, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	trips         TripServiceInterface
	ai            utils.GenerativeClientInterface
	modelName     string
	logger        *zap.Logger
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	trips TripServiceInterface,
	ai utils.GenerativeClientInterface,
	modelName string,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		trips:         trips,
		ai:            ai,
		modelName:     modelName,
		logger:        logger,
	}
}

// generatedItinerary mirrors the JSON document the model is asked to return.
type generatedItinerary struct {
	Summary string         `json:"summary"`
	Days    []generatedDay `json:"days"`
}

type generatedDay struct {
	Day        int                 `json:"day"`
	Title      string              `json:"title"`
	Activities []generatedActivity `json:"activities"`
}

type generatedActivity struct {
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// ItineraryDayCount is the trip length in days, clamped to what a single generation may cover.
func ItineraryDayCount(trip *db_models.Trip) int {
	n := trip.DayCount()
	if n < 1 {
		return 1
	}
	if n > utils.MaxItineraryDays {
		return utils.MaxItineraryDays
	}
	return n
}

func (s *ItineraryService) Generate(ctx context.Context, userID, tripID uuid.UUID, request request_models.GenerateItineraryRequest) (*resp.ItineraryResponse, error) {
	trip, err := s.trips.OwnedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if s.ai == nil {
		return nil, utils.ErrFeatureNotConfigured
	}

	interests := cleanList(request.Interests)
	if len(interests) == 0 {
		interests = cleanList(trip.Interests)
	}
	notes := strings.TrimSpace(request.Notes)
	if notes == "" {
		notes = trip.Notes
	}

	dayCount := ItineraryDayCount(trip)
	raw, err := s.ai.GenerateItineraryJSON(ctx, utils.ItineraryPromptInput{
		Destination: trip.Destination,
		StartDate:   utils.FormatDate(trip.StartDate),
		DayCount:    dayCount,
		Travelers:   trip.Travelers,
		Budget:      trip.Budget,
		Currency:    trip.Currency,
		Interests:   interests,
		Notes:       notes,
	})
	if err != nil {
		s.logger.Warn("itinerary generation failed", zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, fmt.Errorf("generate itinerary: %v: %w", err, utils.ErrUpstreamService)
	}

	generated, err := ParseGeneratedItinerary(raw, dayCount)
	if err != nil {
		s.logger.Warn("itinerary rejected", zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, err
	}

	itinerary := materialize(trip, generated, s.modelName)
	if err := s.itineraryRepo.ReplaceForTrip(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toItineraryResponse(itinerary), nil
}

// ParseGeneratedItinerary decodes the model output and enforces its shape.
func ParseGeneratedItinerary(raw string, dayCount int) (*generatedItinerary, error) {
	var g generatedItinerary
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &g); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	if len(g.Days) != dayCount {
		return nil, fmt.Errorf("%w: got %d days, want %d", utils.ErrUnexpectedBehaviorOfAI, len(g.Days), dayCount)
	}
	for i, d := range g.Days {
		if d.Day != i+1 {
			return nil, fmt.Errorf("%w: day %d at position %d", utils.ErrUnexpectedBehaviorOfAI, d.Day, i+1)
		}
		if len(d.Activities) == 0 {
			return nil, fmt.Errorf("%w: day %d has no activities", utils.ErrUnexpectedBehaviorOfAI, d.Day)
		}
		for _, a := range d.Activities {
			if !utils.IsClock(a.StartTime) || !utils.IsClock(a.EndTime) {
				return nil, fmt.Errorf("%w: day %d bad time %q-%q", utils.ErrUnexpectedBehaviorOfAI, d.Day, a.StartTime, a.EndTime)
			}
			if strings.TrimSpace(a.Title) == "" {
				return nil, fmt.Errorf("%w: day %d activity without title", utils.ErrUnexpectedBehaviorOfAI, d.Day)
			}
			if a.EstimatedCost < 0 {
				return nil, fmt.Errorf("%w: negative cost", utils.ErrUnexpectedBehaviorOfAI)
			}
		}
	}
	return &g, nil
}

func materialize(trip *db_models.Trip, g *generatedItinerary, modelName string) *db_models.Itinerary {
	itinerary := &db_models.Itinerary{
		TripID:  trip.ID,
		UserID:  trip.UserID,
		Summary: strings.TrimSpace(g.Summary),
		Model:   modelName,
		Days:    make([]db_models.ItineraryDay, 0, len(g.Days)),
	}
	start := utils.NormalizeDate(trip.StartDate)
	for i, d := range g.Days {
		day := db_models.ItineraryDay{
			DayNumber:  d.Day,
			Date:       start.AddDate(0, 0, i),
			Title:      strings.TrimSpace(d.Title),
			Activities: make([]db_models.ItineraryActivity, 0, len(d.Activities)),
		}
		for j, a := range d.Activities {
			day.Activities = append(day.Activities, db_models.ItineraryActivity{
				Position:      j,
				StartTime:     a.StartTime,
				EndTime:       a.EndTime,
				Title:         strings.TrimSpace(a.Title),
				Description:   strings.TrimSpace(a.Description),
				Location:      strings.TrimSpace(a.Location),
				Category:      strings.ToLower(strings.TrimSpace(a.Category)),
				EstimatedCost: a.EstimatedCost,
			})
		}
		itinerary.Days = append(itinerary.Days, day)
	}
	return itinerary
}

func (s *ItineraryService) Get(ctx context.Context, userID, tripID uuid.UUID) (*resp.ItineraryResponse, error) {
	if _, err := s.trips.OwnedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	itinerary, err := s.itineraryRepo.FindByTripId(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return toItineraryResponse(itinerary), nil
}

func (s *ItineraryService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	if _, err := s.trips.OwnedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	itinerary, err := s.itineraryRepo.FindByTripId(ctx, tripID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if err := s.itineraryRepo.DeleteByTripId(ctx, tripID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func toItineraryResponse(it *db_models.Itinerary) *resp.ItineraryResponse {
	out := &resp.ItineraryResponse{
		ID:        it.ID,
		TripID:    it.TripID,
		Summary:   it.Summary,
		Model:     it.Model,
		TotalDays: len(it.Days),
		Days:      make([]resp.ItineraryDayResponse, 0, len(it.Days)),
		CreatedAt: it.CreatedAt,
	}
	var cost float64
	for _, d := range it.Days {
		day := resp.ItineraryDayResponse{
			ID:         d.ID,
			DayNumber:  d.DayNumber,
			Date:       utils.FormatDate(d.Date),
			Title:      d.Title,
			Activities: make([]resp.ActivityResponse, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			cost += a.EstimatedCost
			day.Activities = append(day.Activities, resp.ActivityResponse{
				ID:            a.ID,
				StartTime:     a.StartTime,
				EndTime:       a.EndTime,
				Title:         a.Title,
				Description:   a.Description,
				Location:      a.Location,
				Category:      a.Category,
				EstimatedCost: a.EstimatedCost,
			})
		}
		out.TotalActivities += len(d.Activities)
		out.Days = append(out.Days, day)
	}
	out.EstimatedCost = round2(cost)
	return out
}
