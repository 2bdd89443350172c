package db_models

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"

	RoleUser = "user"
)

type Account struct {
	BaseModel
	Name            string
	Email           string `gorm:"uniqueIndex;not null"`
	PasswordHash    string
	Provider        string `gorm:"default:password"`
	ProviderSubject string `gorm:"index"`
	AvatarURL       string
	Bio             string
	HomeCity        string
	Role            string `gorm:"default:user"`

	Trips []Trip `gorm:"foreignKey:UserID"`
}
