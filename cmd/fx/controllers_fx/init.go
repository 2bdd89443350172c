package controllers_fx

import (
	"go.uber.org/fx"
	"newlife/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewMediaController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewHealthController))
