package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"newlife/internal/models/db_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/repositories"
	mem "newlife/pkg/memcache"
	"newlife/pkg/utils"
)

var (
	_ repositories.AccountRepository          = (*mockAccountRepo)(nil)
	_ repositories.TripRepository             = (*mockTripRepo)(nil)
	_ repositories.ExpenseRepositoryInterface = (*mockExpenseRepo)(nil)
	_ repositories.ItineraryRepository        = (*mockItineraryRepo)(nil)
	_ repositories.PostRepository             = (*mockPostRepo)(nil)
	_ repositories.CommentRepositoryInterface = (*mockCommentRepo)(nil)
	_ repositories.IDestinationRepository     = (*mockDestinationRepo)(nil)
	_ PlacesClientInterface                   = (*mockPlacesClient)(nil)
	_ PlacesServiceInterface                  = (*mockPlacesService)(nil)
	_ DestinationServiceInterface             = (*mockDestinationService)(nil)
	_ IMailService                            = (*mockMail)(nil)
	_ GoogleIdentityVerifier                  = (*mockGoogle)(nil)
	_ utils.GenerativeClientInterface         = (*mockAI)(nil)
	_ utils.EmbeddingClientInterface          = (*mockEmbedder)(nil)
	_ mem.OtpStore                            = (*mockOtpStore)(nil)
)

// ---- repositories ----

type mockAccountRepo struct {
	InsertTxFunc              func(ctx context.Context, a *db_models.Account) error
	FindByIdFunc              func(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*db_models.Account, error)
	FindByProviderSubjectFunc func(ctx context.Context, provider, subject string) (*db_models.Account, error)
	UpdateFunc                func(ctx context.Context, a *db_models.Account) error
	UpdatePasswordHashFunc    func(ctx context.Context, id uuid.UUID, hash string) error
}

func (m *mockAccountRepo) InsertTx(ctx context.Context, a *db_models.Account) error {
	if m.InsertTxFunc != nil {
		return m.InsertTxFunc(ctx, a)
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (m *mockAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindByProviderSubject(ctx context.Context, provider, subject string) (*db_models.Account, error) {
	if m.FindByProviderSubjectFunc != nil {
		return m.FindByProviderSubjectFunc(ctx, provider, subject)
	}
	return nil, nil
}

func (m *mockAccountRepo) Update(ctx context.Context, a *db_models.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	if m.UpdatePasswordHashFunc != nil {
		return m.UpdatePasswordHashFunc(ctx, id, hash)
	}
	return nil
}

type mockTripRepo struct {
	CreateFunc           func(ctx context.Context, t *db_models.Trip) error
	FindByIdFunc         func(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	UpdateFunc           func(ctx context.Context, t *db_models.Trip) error
	UpdateCoverPhotoFunc func(ctx context.Context, id uuid.UUID, url string) error
	DeleteCascadeFunc    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, t *db_models.Trip) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (m *mockTripRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTripRepo) Update(ctx context.Context, t *db_models.Trip) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTripRepo) UpdateCoverPhoto(ctx context.Context, id uuid.UUID, url string) error {
	if m.UpdateCoverPhotoFunc != nil {
		return m.UpdateCoverPhotoFunc(ctx, id, url)
	}
	return nil
}

func (m *mockTripRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

type mockExpenseRepo struct {
	CreateFunc        func(ctx context.Context, e *db_models.Expense) error
	FindByIdFunc      func(ctx context.Context, id uuid.UUID) (*db_models.Expense, error)
	ListByTripFunc    func(ctx context.Context, tripID uuid.UUID) ([]db_models.Expense, error)
	UpdateFunc        func(ctx context.Context, e *db_models.Expense) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	SumByCategoryFunc func(ctx context.Context, tripID uuid.UUID) ([]repositories.CategorySum, error)
}

func (m *mockExpenseRepo) Create(ctx context.Context, e *db_models.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Expense, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockExpenseRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Expense, error) {
	if m.ListByTripFunc != nil {
		return m.ListByTripFunc(ctx, tripID)
	}
	return nil, nil
}

func (m *mockExpenseRepo) Update(ctx context.Context, e *db_models.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockExpenseRepo) SumByCategory(ctx context.Context, tripID uuid.UUID) ([]repositories.CategorySum, error) {
	if m.SumByCategoryFunc != nil {
		return m.SumByCategoryFunc(ctx, tripID)
	}
	return nil, nil
}

type mockItineraryRepo struct {
	ReplaceForTripFunc func(ctx context.Context, it *db_models.Itinerary) error
	FindByTripIdFunc   func(ctx context.Context, tripID uuid.UUID) (*db_models.Itinerary, error)
	DeleteByTripIdFunc func(ctx context.Context, tripID uuid.UUID) error
}

func (m *mockItineraryRepo) ReplaceForTrip(ctx context.Context, it *db_models.Itinerary) error {
	if m.ReplaceForTripFunc != nil {
		return m.ReplaceForTripFunc(ctx, it)
	}
	return nil
}

func (m *mockItineraryRepo) FindByTripId(ctx context.Context, tripID uuid.UUID) (*db_models.Itinerary, error) {
	if m.FindByTripIdFunc != nil {
		return m.FindByTripIdFunc(ctx, tripID)
	}
	return nil, nil
}

func (m *mockItineraryRepo) DeleteByTripId(ctx context.Context, tripID uuid.UUID) error {
	if m.DeleteByTripIdFunc != nil {
		return m.DeleteByTripIdFunc(ctx, tripID)
	}
	return nil
}

type mockPostRepo struct {
	CreateFunc        func(ctx context.Context, p *db_models.Post) error
	FindByIdFunc      func(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	UpdateFunc        func(ctx context.Context, p *db_models.Post) error
	ListFeedFunc      func(ctx context.Context, page, pageSize int) ([]db_models.Post, int64, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Post, int64, error)
	ListSavedByFunc   func(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Post, int64, error)
	LikedPostIDsFunc  func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	SavedPostIDsFunc  func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	ToggleLikeFunc    func(ctx context.Context, userID, postID uuid.UUID) (bool, int, error)
	ToggleSaveFunc    func(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	DeleteCascadeFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPostRepo) Create(ctx context.Context, p *db_models.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(ctx context.Context, p *db_models.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) ListFeed(ctx context.Context, page, pageSize int) ([]db_models.Post, int64, error) {
	if m.ListFeedFunc != nil {
		return m.ListFeedFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Post, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) ListSavedBy(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Post, int64, error) {
	if m.ListSavedByFunc != nil {
		return m.ListSavedByFunc(ctx, userID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) LikedPostIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if m.LikedPostIDsFunc != nil {
		return m.LikedPostIDsFunc(ctx, userID, ids)
	}
	return map[uuid.UUID]bool{}, nil
}

func (m *mockPostRepo) SavedPostIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if m.SavedPostIDsFunc != nil {
		return m.SavedPostIDsFunc(ctx, userID, ids)
	}
	return map[uuid.UUID]bool{}, nil
}

func (m *mockPostRepo) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, int, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, userID, postID)
	}
	return false, 0, nil
}

func (m *mockPostRepo) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if m.ToggleSaveFunc != nil {
		return m.ToggleSaveFunc(ctx, userID, postID)
	}
	return false, nil
}

func (m *mockPostRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

type mockCommentRepo struct {
	CreateCommentFunc func(ctx context.Context, c *db_models.Comment) error
	FindByIdFunc      func(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	ListCommentsFunc  func(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]db_models.Comment, error)
	DeleteCommentFunc func(ctx context.Context, c *db_models.Comment) error
}

func (m *mockCommentRepo) CreateComment(ctx context.Context, c *db_models.Comment) error {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepo) ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]db_models.Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, postID, page, pageSize)
	}
	return nil, nil
}

func (m *mockCommentRepo) DeleteComment(ctx context.Context, c *db_models.Comment) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, c)
	}
	return nil
}

type mockDestinationRepo struct {
	UpsertFunc           func(ctx context.Context, d *db_models.Destination) error
	FindByNameFunc       func(ctx context.Context, name string) (*db_models.Destination, error)
	IncrementLookupsFunc func(ctx context.Context, name string) error
	SetEmbeddingFunc     func(ctx context.Context, id uuid.UUID, model string, v pgvector.Vector) error
	ListPopularFunc      func(ctx context.Context, limit int) ([]db_models.Destination, error)
	SearchByVectorFunc   func(ctx context.Context, model string, v pgvector.Vector, limit int) ([]db_models.Destination, error)
}

func (m *mockDestinationRepo) Upsert(ctx context.Context, d *db_models.Destination) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, d)
	}
	return nil
}

func (m *mockDestinationRepo) FindByName(ctx context.Context, name string) (*db_models.Destination, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockDestinationRepo) IncrementLookups(ctx context.Context, name string) error {
	if m.IncrementLookupsFunc != nil {
		return m.IncrementLookupsFunc(ctx, name)
	}
	return nil
}

func (m *mockDestinationRepo) SetEmbedding(ctx context.Context, id uuid.UUID, model string, v pgvector.Vector) error {
	if m.SetEmbeddingFunc != nil {
		return m.SetEmbeddingFunc(ctx, id, model, v)
	}
	return nil
}

func (m *mockDestinationRepo) ListPopular(ctx context.Context, limit int) ([]db_models.Destination, error) {
	if m.ListPopularFunc != nil {
		return m.ListPopularFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockDestinationRepo) SearchByVector(ctx context.Context, model string, v pgvector.Vector, limit int) ([]db_models.Destination, error) {
	if m.SearchByVectorFunc != nil {
		return m.SearchByVectorFunc(ctx, model, v, limit)
	}
	return nil, nil
}

// ---- collaborators ----

type mockPlacesClient struct {
	TextSearchFunc   func(ctx context.Context, query string) ([]PlaceCandidate, error)
	NearbySearchFunc func(ctx context.Context, lat, lng, radius float64, placeType string) ([]PlaceCandidate, error)
	PhotoURLFunc     func(ctx context.Context, name string, maxWidth int) (string, error)

	mu      sync.Mutex
	queries []string
}

func (m *mockPlacesClient) TextSearch(ctx context.Context, query string) ([]PlaceCandidate, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.TextSearchFunc != nil {
		return m.TextSearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockPlacesClient) NearbySearch(ctx context.Context, lat, lng, radius float64, placeType string) ([]PlaceCandidate, error) {
	if m.NearbySearchFunc != nil {
		return m.NearbySearchFunc(ctx, lat, lng, radius, placeType)
	}
	return nil, nil
}

func (m *mockPlacesClient) PhotoURL(ctx context.Context, name string, maxWidth int) (string, error) {
	if m.PhotoURLFunc != nil {
		return m.PhotoURLFunc(ctx, name, maxWidth)
	}
	return "https://img.example.com/" + name, nil
}

func (m *mockPlacesClient) queryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

type mockPlacesService struct {
	SearchFunc   func(ctx context.Context, q string) ([]resp.PlaceSummary, error)
	NearbyFunc   func(ctx context.Context, lat, lng, radius float64, t string) ([]resp.PlaceSummary, error)
	PhotoForFunc func(ctx context.Context, d string) (*resp.DestinationPhoto, error)
}

func (m *mockPlacesService) Search(ctx context.Context, q string) ([]resp.PlaceSummary, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockPlacesService) Nearby(ctx context.Context, lat, lng, radius float64, t string) ([]resp.PlaceSummary, error) {
	if m.NearbyFunc != nil {
		return m.NearbyFunc(ctx, lat, lng, radius, t)
	}
	return nil, nil
}

func (m *mockPlacesService) PhotoFor(ctx context.Context, d string) (*resp.DestinationPhoto, error) {
	if m.PhotoForFunc != nil {
		return m.PhotoForFunc(ctx, d)
	}
	return nil, utils.ErrPlaceNotFound
}

type mockDestinationService struct {
	mu      sync.Mutex
	records []DestinationRecord
	touched []string
	err     error
}

func (m *mockDestinationService) Touch(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched = append(m.touched, name)
	return m.err
}

func (m *mockDestinationService) Record(_ context.Context, in DestinationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, in)
	return m.err
}

func (m *mockDestinationService) ListPopular(context.Context, int) ([]resp.DestinationResponse, error) {
	return nil, nil
}

func (m *mockDestinationService) SearchSimilar(context.Context, string, int) ([]resp.DestinationResponse, error) {
	return nil, nil
}

type mockMail struct {
	SendOtpCodeFunc func(ctx context.Context, to, name, code string, ttl time.Duration) error
	welcomed        []string
}

func (m *mockMail) SendOtpCode(ctx context.Context, to, name, code string, ttl time.Duration) error {
	if m.SendOtpCodeFunc != nil {
		return m.SendOtpCodeFunc(ctx, to, name, code, ttl)
	}
	return nil
}

func (m *mockMail) SendWelcome(_ context.Context, to, _ string) error {
	m.welcomed = append(m.welcomed, to)
	return nil
}

type mockGoogle struct {
	identity *GoogleIdentity
	err      error
}

func (m *mockGoogle) Verify(context.Context, string) (*GoogleIdentity, error) {
	return m.identity, m.err
}

type mockAI struct {
	ItineraryFunc      func(ctx context.Context, in utils.ItineraryPromptInput) (string, error)
	RecommendationFunc func(ctx context.Context, in utils.RecommendationPromptInput) (string, error)
}

func (m *mockAI) GenerateItineraryJSON(ctx context.Context, in utils.ItineraryPromptInput) (string, error) {
	if m.ItineraryFunc != nil {
		return m.ItineraryFunc(ctx, in)
	}
	return "{}", nil
}

func (m *mockAI) GenerateRecommendationsJSON(ctx context.Context, in utils.RecommendationPromptInput) (string, error) {
	if m.RecommendationFunc != nil {
		return m.RecommendationFunc(ctx, in)
	}
	return "{}", nil
}

type mockEmbedder struct {
	vec   pgvector.Vector
	model string
	err   error
	calls int
}

func (m *mockEmbedder) EmbeddingModel() string {
	if m.model == "" {
		return "test/embed"
	}
	return m.model
}

func (m *mockEmbedder) GetEmbedding(context.Context, string) (pgvector.Vector, error) {
	m.calls++
	return m.vec, m.err
}

type mockOtpStore struct {
	codes map[string]string
}

func newMockOtpStore() *mockOtpStore {
	return &mockOtpStore{codes: map[string]string{}}
}

func (m *mockOtpStore) Set(email, code string, _ time.Duration) { m.codes[email] = code }

func (m *mockOtpStore) Peek(email, code string) bool {
	c, ok := m.codes[email]
	return ok && c == code
}

func (m *mockOtpStore) Consume(email, code string) bool {
	if !m.Peek(email, code) {
		return false
	}
	delete(m.codes, email)
	return true
}

// ---- fixtures ----

func ownedTrip(owner uuid.UUID) *db_models.Trip {
	start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return &db_models.Trip{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		UserID:      owner,
		Title:       "Summer in Lisbon",
		Destination: "Lisbon",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Budget:      1500,
		Currency:    "EUR",
		Travelers:   2,
	}
}

func tripRepoWith(trip *db_models.Trip) *mockTripRepo {
	return &mockTripRepo{
		FindByIdFunc: func(_ context.Context, id uuid.UUID) (*db_models.Trip, error) {
			if trip != nil && id == trip.ID {
				cp := *trip
				return &cp, nil
			}
			return nil, nil
		},
	}
}
