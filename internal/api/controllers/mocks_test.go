package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"newlife/internal/models/db_models"
	"newlife/internal/models/request_models"
	resp "newlife/internal/models/response_models"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Set only the fields a test needs; calling an unset one panics.

type mockTripService struct {
	create func(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*resp.TripResponse, error)
	get    func(ctx context.Context, userID, tripID uuid.UUID) (*resp.TripResponse, error)
	list   func(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*resp.PaginatedTrips, error)
	update func(ctx context.Context, userID, tripID uuid.UUID, req request_models.UpdateTripRequest) (*resp.TripResponse, error)
	delete func(ctx context.Context, userID, tripID uuid.UUID) error
}

func (m *mockTripService) CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*resp.TripResponse, error) {
	return m.create(ctx, userID, req)
}
func (m *mockTripService) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*resp.TripResponse, error) {
	return m.get(ctx, userID, tripID)
}
func (m *mockTripService) ListTrips(ctx context.Context, userID uuid.UUID, status string, page, pageSize int) (*resp.PaginatedTrips, error) {
	return m.list(ctx, userID, status, page, pageSize)
}
func (m *mockTripService) UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, req request_models.UpdateTripRequest) (*resp.TripResponse, error) {
	return m.update(ctx, userID, tripID, req)
}
func (m *mockTripService) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}
func (m *mockTripService) OwnedTrip(context.Context, uuid.UUID, uuid.UUID) (*db_models.Trip, error) {
	panic("not used by controllers")
}

var _ services.TripServiceInterface = (*mockTripService)(nil)

type mockExpenseService struct {
	add     func(ctx context.Context, userID, tripID uuid.UUID, req request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error)
	list    func(ctx context.Context, userID, tripID uuid.UUID) ([]resp.ExpenseResponse, error)
	update  func(ctx context.Context, userID, tripID, expenseID uuid.UUID, req request_models.UpdateExpenseRequest) (*resp.ExpenseResponse, error)
	delete  func(ctx context.Context, userID, tripID, expenseID uuid.UUID) error
	summary func(ctx context.Context, userID, tripID uuid.UUID) (*resp.BudgetSummary, error)
}

func (m *mockExpenseService) AddExpense(ctx context.Context, userID, tripID uuid.UUID, req request_models.CreateExpenseRequest) (*resp.ExpenseResponse, error) {
	return m.add(ctx, userID, tripID, req)
}
func (m *mockExpenseService) ListExpenses(ctx context.Context, userID, tripID uuid.UUID) ([]resp.ExpenseResponse, error) {
	return m.list(ctx, userID, tripID)
}
func (m *mockExpenseService) UpdateExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID, req request_models.UpdateExpenseRequest) (*resp.ExpenseResponse, error) {
	return m.update(ctx, userID, tripID, expenseID, req)
}
func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID, tripID, expenseID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, expenseID)
}
func (m *mockExpenseService) GetBudgetSummary(ctx context.Context, userID, tripID uuid.UUID) (*resp.BudgetSummary, error) {
	return m.summary(ctx, userID, tripID)
}

var _ services.ExpenseServiceInterface = (*mockExpenseService)(nil)

type mockItineraryService struct {
	generate func(ctx context.Context, userID, tripID uuid.UUID, req request_models.GenerateItineraryRequest) (*resp.ItineraryResponse, error)
	get      func(ctx context.Context, userID, tripID uuid.UUID) (*resp.ItineraryResponse, error)
	delete   func(ctx context.Context, userID, tripID uuid.UUID) error
}

func (m *mockItineraryService) Generate(ctx context.Context, userID, tripID uuid.UUID, req request_models.GenerateItineraryRequest) (*resp.ItineraryResponse, error) {
	return m.generate(ctx, userID, tripID, req)
}
func (m *mockItineraryService) Get(ctx context.Context, userID, tripID uuid.UUID) (*resp.ItineraryResponse, error) {
	return m.get(ctx, userID, tripID)
}
func (m *mockItineraryService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}

var _ services.ItineraryServiceInterface = (*mockItineraryService)(nil)

type mockRecommendationService struct {
	recommend func(ctx context.Context, req request_models.RecommendationRequest) ([]resp.Recommendation, error)
}

func (m *mockRecommendationService) Recommend(ctx context.Context, req request_models.RecommendationRequest) ([]resp.Recommendation, error) {
	return m.recommend(ctx, req)
}

var _ services.RecommendationServiceInterface = (*mockRecommendationService)(nil)

type mockPlacesService struct {
	search func(ctx context.Context, q string) ([]resp.PlaceSummary, error)
	nearby func(ctx context.Context, lat, lng, radius float64, placeType string) ([]resp.PlaceSummary, error)
	photo  func(ctx context.Context, destination string) (*resp.DestinationPhoto, error)
}

func (m *mockPlacesService) Search(ctx context.Context, q string) ([]resp.PlaceSummary, error) {
	return m.search(ctx, q)
}
func (m *mockPlacesService) Nearby(ctx context.Context, lat, lng, radius float64, placeType string) ([]resp.PlaceSummary, error) {
	return m.nearby(ctx, lat, lng, radius, placeType)
}
func (m *mockPlacesService) PhotoFor(ctx context.Context, destination string) (*resp.DestinationPhoto, error) {
	return m.photo(ctx, destination)
}

var _ services.PlacesServiceInterface = (*mockPlacesService)(nil)

type mockWeatherService struct {
	timing func(ctx context.Context, destination string, start, end *time.Time) (*resp.TravelTiming, error)
}

func (m *mockWeatherService) TravelTiming(ctx context.Context, destination string, start, end *time.Time) (*resp.TravelTiming, error) {
	return m.timing(ctx, destination, start, end)
}

var _ services.WeatherServiceInterface = (*mockWeatherService)(nil)

type mockMediaService struct {
	upload func(ctx context.Context, file *multipart.FileHeader) (*resp.UploadedMedia, error)
}

func (m *mockMediaService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*resp.UploadedMedia, error) {
	return m.upload(ctx, file)
}

var _ services.MediaServiceInterface = (*mockMediaService)(nil)

type mockPostService struct {
	create        func(ctx context.Context, userID uuid.UUID, req request_models.CreatePostRequest) (*resp.PostResponse, error)
	update        func(ctx context.Context, userID, postID uuid.UUID, req request_models.UpdatePostRequest) (*resp.PostResponse, error)
	get           func(ctx context.Context, viewerID, postID uuid.UUID) (*resp.PostResponse, error)
	feed          func(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error)
	userPosts     func(ctx context.Context, viewerID, authorID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error)
	saved         func(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error)
	like          func(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error)
	save          func(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error)
	delete        func(ctx context.Context, userID, postID uuid.UUID) error
	addComment    func(ctx context.Context, userID, postID uuid.UUID, req request_models.CreateCommentRequest) (*resp.CommentResponse, error)
	listComments  func(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]resp.CommentResponse, error)
	deleteComment func(ctx context.Context, userID, postID, commentID uuid.UUID) error
}

func (m *mockPostService) CreatePost(ctx context.Context, userID uuid.UUID, req request_models.CreatePostRequest) (*resp.PostResponse, error) {
	return m.create(ctx, userID, req)
}
func (m *mockPostService) UpdatePost(ctx context.Context, userID, postID uuid.UUID, req request_models.UpdatePostRequest) (*resp.PostResponse, error) {
	return m.update(ctx, userID, postID, req)
}
func (m *mockPostService) GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*resp.PostResponse, error) {
	return m.get(ctx, viewerID, postID)
}
func (m *mockPostService) GetFeed(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error) {
	return m.feed(ctx, viewerID, page, pageSize)
}
func (m *mockPostService) ListUserPosts(ctx context.Context, viewerID, authorID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error) {
	return m.userPosts(ctx, viewerID, authorID, page, pageSize)
}
func (m *mockPostService) ListSaved(ctx context.Context, viewerID uuid.UUID, page, pageSize int) (*resp.PaginatedPosts, error) {
	return m.saved(ctx, viewerID, page, pageSize)
}
func (m *mockPostService) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error) {
	return m.like(ctx, userID, postID)
}
func (m *mockPostService) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (*resp.ToggleResponse, error) {
	return m.save(ctx, userID, postID)
}
func (m *mockPostService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	return m.delete(ctx, userID, postID)
}
func (m *mockPostService) AddComment(ctx context.Context, userID, postID uuid.UUID, req request_models.CreateCommentRequest) (*resp.CommentResponse, error) {
	return m.addComment(ctx, userID, postID, req)
}
func (m *mockPostService) ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) ([]resp.CommentResponse, error) {
	return m.listComments(ctx, postID, page, pageSize)
}
func (m *mockPostService) DeleteComment(ctx context.Context, userID, postID, commentID uuid.UUID) error {
	return m.deleteComment(ctx, userID, postID, commentID)
}

var _ services.PostServiceInterface = (*mockPostService)(nil)

type mockAccountService struct {
	register       func(ctx context.Context, req request_models.SignUpRequest) (*resp.UserProfile, error)
	login          func(ctx context.Context, req request_models.LoginRequest) (*resp.AccountLoginResponse, error)
	google         func(ctx context.Context, idToken string) (*resp.AccountLoginResponse, error)
	getProfile     func(ctx context.Context, userID uuid.UUID) (*resp.UserProfile, error)
	updateProfile  func(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*resp.UserProfile, error)
	forgotPassword func(ctx context.Context, email string) error
	verifyOtp      func(ctx context.Context, email, code string) error
	resetPassword  func(ctx context.Context, req request_models.ResetPasswordRequest) error
}

func (m *mockAccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*resp.UserProfile, error) {
	return m.register(ctx, req)
}
func (m *mockAccountService) Login(ctx context.Context, req request_models.LoginRequest) (*resp.AccountLoginResponse, error) {
	return m.login(ctx, req)
}
func (m *mockAccountService) LoginWithGoogle(ctx context.Context, idToken string) (*resp.AccountLoginResponse, error) {
	return m.google(ctx, idToken)
}
func (m *mockAccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*resp.UserProfile, error) {
	return m.getProfile(ctx, userID)
}
func (m *mockAccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*resp.UserProfile, error) {
	return m.updateProfile(ctx, userID, req)
}
func (m *mockAccountService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPassword(ctx, email)
}
func (m *mockAccountService) VerifyOtp(ctx context.Context, email, code string) error {
	return m.verifyOtp(ctx, email, code)
}
func (m *mockAccountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	return m.resetPassword(ctx, req)
}

var _ services.AccountServiceInterface = (*mockAccountService)(nil)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// ---- helpers ---------------------------------------------------------------

// asUser stands in for JWTAuthMiddleware.
func asUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id.String())
		c.Next()
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func serve(r http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unwraps the APIResponse envelope into data.
func decode(t *testing.T, w *httptest.ResponseRecorder, data any) utils.APIResponse {
	t.Helper()
	var envelope struct {
		utils.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
	return envelope.APIResponse
}
