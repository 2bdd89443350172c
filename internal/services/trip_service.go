package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"newlife/internal/models/db_models"
	"newlife/internal/models/request_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/repositories"
	"newlife/pkg/utils"
)

const defaultCurrency = "USD"

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*resp.TripResponse, error)
	GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*resp.TripResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*resp.PaginatedTrips, error)
	UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, request request_models.UpdateTripRequest) (*resp.TripResponse, error)
	DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error
	// OwnedTrip loads a trip and fails with ErrForbidden for anyone but its owner.
	OwnedTrip(ctx context.Context, userID, tripID uuid.UUID) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	places   PlacesServiceInterface
	logger   *zap.Logger
	now      func() time.Time
}

func NewTripService(tripRepo repositories.TripRepository, places PlacesServiceInterface, logger *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		places:   places,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, request request_models.CreateTripRequest) (*resp.TripResponse, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		UserID:      userID,
		Title:       strings.TrimSpace(request.Title),
		Destination: strings.TrimSpace(request.Destination),
		StartDate:   start,
		EndDate:     end,
		Budget:      request.Budget,
		Currency:    strings.ToUpper(strings.TrimSpace(request.Currency)),
		Travelers:   request.Travelers,
		Interests:   cleanList(request.Interests),
		Notes:       strings.TrimSpace(request.Notes),
	}
	if trip.Currency == "" {
		trip.Currency = defaultCurrency
	}
	if trip.Travelers == 0 {
		trip.Travelers = 1
	}
	if err := validateTrip(trip); err != nil {
		return nil, err
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.attachCoverPhoto(ctx, trip)
	return s.toTripResponse(trip), nil
}

// attachCoverPhoto is best effort; a trip without a photo is still a trip.
func (s *TripService) attachCoverPhoto(ctx context.Context, trip *db_models.Trip) {
	if s.places == nil {
		return
	}
	photo, err := s.places.PhotoFor(ctx, trip.Destination)
	if err != nil {
		s.logger.Info("no cover photo", zap.String("destination", trip.Destination), zap.Error(err))
		return
	}
	if err := s.tripRepo.UpdateCoverPhoto(ctx, trip.ID, photo.PhotoURL); err != nil {
		s.logger.Warn("store cover photo", zap.String("trip_id", trip.ID.String()), zap.Error(err))
		return
	}
	trip.CoverPhotoURL = photo.PhotoURL
}

func validateTrip(t *db_models.Trip) error {
	switch {
	case t.Title == "" || t.Destination == "":
		return utils.ErrInvalidInput
	case t.EndDate.Before(t.StartDate):
		return utils.ErrInvalidInput
	case t.Travelers < 1:
		return utils.ErrInvalidInput
	case t.Budget < 0:
		return utils.ErrInvalidInput
	case len(t.Currency) != 3:
		return utils.ErrInvalidInput
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		out = append(out, v)
	}
	return out
}

func (s *TripService) OwnedTrip(ctx context.Context, userID, tripID uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !db_models.IsOwnedBy(trip.UserID, userID) {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (s *TripService) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*resp.TripResponse, error) {
	trip, err := s.OwnedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return s.toTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*resp.PaginatedTrips, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	filter := utils.TripStatus(strings.ToLower(strings.TrimSpace(status)))
	if filter != "" && !filter.Valid() {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// status is derived, so the filter runs after loading
	now := s.now()
	items := make([]resp.TripResponse, 0, len(trips))
	for i := range trips {
		if filter != "" && trips[i].Status(now) != filter {
			continue
		}
		items = append(items, *s.toTripResponseAt(&trips[i], now))
	}

	total := int64(len(items))
	from := (page - 1) * pageSize
	if from > len(items) {
		from = len(items)
	}
	to := from + pageSize
	if to > len(items) {
		to = len(items)
	}

	return &resp.PaginatedTrips{
		Items:    items[from:to],
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, request request_models.UpdateTripRequest) (*resp.TripResponse, error) {
	trip, err := s.OwnedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	destinationChanged := false
	if request.Title != nil {
		trip.Title = strings.TrimSpace(*request.Title)
	}
	if request.Destination != nil {
		d := strings.TrimSpace(*request.Destination)
		destinationChanged = !strings.EqualFold(d, trip.Destination)
		trip.Destination = d
	}
	if request.StartDate != nil {
		if trip.StartDate, err = utils.ParseDate(*request.StartDate); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}
	if request.EndDate != nil {
		if trip.EndDate, err = utils.ParseDate(*request.EndDate); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}
	if request.Budget != nil {
		trip.Budget = *request.Budget
	}
	if request.Currency != nil {
		trip.Currency = strings.ToUpper(strings.TrimSpace(*request.Currency))
	}
	if request.Travelers != nil {
		trip.Travelers = *request.Travelers
	}
	if request.Interests != nil {
		trip.Interests = cleanList(*request.Interests)
	}
	if request.Notes != nil {
		trip.Notes = strings.TrimSpace(*request.Notes)
	}

	if err := validateTrip(trip); err != nil {
		return nil, err
	}
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if destinationChanged {
		s.attachCoverPhoto(ctx, trip)
	}
	return s.toTripResponse(trip), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	if _, err := s.OwnedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	if err := s.tripRepo.DeleteCascade(ctx, tripID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *TripService) toTripResponse(t *db_models.Trip) *resp.TripResponse {
	return s.toTripResponseAt(t, s.now())
}

func (s *TripService) toTripResponseAt(t *db_models.Trip, now time.Time) *resp.TripResponse {
	interests := []string(t.Interests)
	if interests == nil {
		interests = []string{}
	}
	return &resp.TripResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		Title:         t.Title,
		Destination:   t.Destination,
		StartDate:     utils.FormatDate(t.StartDate),
		EndDate:       utils.FormatDate(t.EndDate),
		DurationDays:  t.DayCount(),
		Status:        string(t.Status(now)),
		Budget:        t.Budget,
		Currency:      t.Currency,
		Travelers:     t.Travelers,
		Interests:     interests,
		Notes:         t.Notes,
		CoverPhotoURL: t.CoverPhotoURL,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
