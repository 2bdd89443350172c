package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/internal/api/controllers"
	"newlife/internal/config"
	"newlife/pkg/middleware"
)

type RouterParams struct {
	fx.In

	Config      config.Config
	Logger      *zap.Logger
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
	AuthLimiter *middleware.RateLimiter `name:"auth"`

	Accounts        *controllers.AccountController
	Trips           *controllers.TripController
	Expenses        *controllers.ExpenseController
	Itineraries     *controllers.ItineraryController
	Recommendations *controllers.RecommendationController
	Places          *controllers.PlacesController
	Destinations    *controllers.DestinationController
	Weather         *controllers.WeatherController
	Media           *controllers.MediaController
	Posts           *controllers.PostController
	Health          *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))
	r.Use(middleware.RequestLogger(p.Logger.Named("http")))
	r.Use(p.Metrics.Middleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware([]byte(p.Config.JWTSecret))
	limited := p.RateLimiter.Handler()
	guarded := p.AuthLimiter.Handler()

	r.GET("/metrics", p.Metrics.Handler())
	r.GET("/health", p.Health.Health)

	accounts := r.Group("/accounts")
	accounts.POST("/register", guarded, p.Accounts.Register)
	accounts.POST("/login", guarded, p.Accounts.Login)
	accounts.POST("/google", guarded, p.Accounts.LoginWithGoogle)
	accounts.POST("/forgot-password", guarded, p.Accounts.ForgotPassword)
	accounts.POST("/verify-otp", guarded, p.Accounts.VerifyOtp)
	accounts.POST("/reset-password", guarded, p.Accounts.ResetPassword)
	accounts.GET("/me", auth, p.Accounts.GetProfile)
	accounts.PUT("/me", auth, p.Accounts.UpdateProfile)

	trips := r.Group("/trips", auth)
	trips.POST("", p.Trips.CreateTrip)
	trips.GET("", p.Trips.ListTrips)
	trips.GET("/:tripId", p.Trips.GetTrip)
	trips.PUT("/:tripId", p.Trips.UpdateTrip)
	trips.DELETE("/:tripId", p.Trips.DeleteTrip)

	trips.POST("/:tripId/expenses", p.Expenses.AddExpense)
	trips.GET("/:tripId/expenses", p.Expenses.ListExpenses)
	trips.PUT("/:tripId/expenses/:expenseId", p.Expenses.UpdateExpense)
	trips.DELETE("/:tripId/expenses/:expenseId", p.Expenses.DeleteExpense)
	trips.GET("/:tripId/budget", p.Expenses.GetBudgetSummary)

	trips.POST("/:tripId/itinerary/generate", limited, p.Itineraries.GenerateItinerary)
	trips.GET("/:tripId/itinerary", p.Itineraries.GetItinerary)
	trips.DELETE("/:tripId/itinerary", p.Itineraries.DeleteItinerary)

	r.POST("/recommendations", auth, limited, p.Recommendations.Recommend)

	places := r.Group("/places")
	places.GET("/search", p.Places.Search)
	places.GET("/nearby", p.Places.Nearby)
	places.GET("/photo", p.Places.Photo)

	destinations := r.Group("/destinations")
	destinations.GET("", p.Destinations.ListPopular)
	destinations.GET("/search", p.Destinations.SearchSimilar)

	r.GET("/weather/timing", p.Weather.TravelTiming)

	r.POST("/media/upload", auth, limited, p.Media.Upload)

	posts := r.Group("/posts", auth)
	posts.POST("", p.Posts.CreatePost)
	posts.GET("/feed", p.Posts.GetFeed)
	posts.GET("/saved", p.Posts.ListSaved)
	posts.GET("/:postId", p.Posts.GetPost)
	posts.PUT("/:postId", p.Posts.UpdatePost)
	posts.DELETE("/:postId", p.Posts.DeletePost)
	posts.POST("/:postId/like", p.Posts.ToggleLike)
	posts.POST("/:postId/save", p.Posts.ToggleSave)
	posts.POST("/:postId/comments", p.Posts.AddComment)
	posts.GET("/:postId/comments", p.Posts.ListComments)
	posts.DELETE("/:postId/comments/:commentId", p.Posts.DeleteComment)

	r.GET("/users/:userId/posts", auth, p.Posts.ListUserPosts)
}
