package request_models

type GenerateItineraryRequest struct {
	Interests []string `json:"interests"`
	Notes     string   `json:"notes" binding:"max=1000"`
}

type RecommendationRequest struct {
	Interests   []string `json:"interests"`
	Budget      string   `json:"budget"`
	TravelMonth string   `json:"travel_month"`
	Travelers   int      `json:"travelers" binding:"omitempty,gte=1"`
	Origin      string   `json:"origin"`
	Count       int      `json:"count"`
}
