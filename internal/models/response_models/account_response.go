package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	IsNewUser bool   `json:"is_new_user"`
}

type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Provider  string `json:"provider"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	HomeCity  string `json:"home_city,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type OtpVerificationResponse struct {
	Valid bool `json:"valid"`
}
