package request_models

type CreatePostRequest struct {
	Content  string   `json:"content" binding:"max=5000"`
	Images   []string `json:"images" binding:"omitempty,max=10,dive,url"`
	Location string   `json:"location" binding:"max=120"`
	TripID   string   `json:"trip_id" binding:"omitempty,uuid"`
}

type UpdatePostRequest struct {
	Content  *string   `json:"content" binding:"omitempty,max=5000"`
	Images   *[]string `json:"images" binding:"omitempty,max=10,dive,url"`
	Location *string   `json:"location" binding:"omitempty,max=120"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
