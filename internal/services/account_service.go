package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
	"newlife/internal/models/db_models"
	"newlife/internal/models/request_models"
	"newlife/internal/models/response_models"
	"newlife/internal/repositories"
	mem "newlife/pkg/memcache"
	"newlife/pkg/utils"
)

const (
	otpLength = 6
	otpTTL    = 10 * time.Minute
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserProfile, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*response_models.AccountLoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type GoogleIdentity struct {
	Subject  string
	Email    string
	Name     string
	Picture  string
	Verified bool
}

type GoogleIdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type googleIDTokenVerifier struct {
	clientID string
}

func NewGoogleIDTokenVerifier(clientID string) GoogleIdentityVerifier {
	return &googleIDTokenVerifier{clientID: clientID}
}

func (g *googleIDTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if g.clientID == "" {
		return nil, utils.ErrFeatureNotConfigured
	}
	payload, err := idtoken.Validate(ctx, idToken, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidIDToken, err)
	}

	claim := func(k string) string {
		v, _ := payload.Claims[k].(string)
		return v
	}
	verified, _ := payload.Claims["email_verified"].(bool)
	return &GoogleIdentity{
		Subject:  payload.Subject,
		Email:    claim("email"),
		Name:     claim("name"),
		Picture:  claim("picture"),
		Verified: verified,
	}, nil
}

type AccountSettings struct {
	JWTSecret []byte
	JWTTTL    time.Duration
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	otpStore    mem.OtpStore
	mail        IMailService
	google      GoogleIdentityVerifier
	settings    AccountSettings
	logger      *zap.Logger
	now         func() time.Time
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	otpStore mem.OtpStore,
	mail IMailService,
	google GoogleIdentityVerifier,
	settings AccountSettings,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		otpStore:    otpStore,
		mail:        mail,
		google:      google,
		settings:    settings,
		logger:      logger,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserProfile, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Provider:     db_models.ProviderPassword,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := a.mail.SendWelcome(ctx, newAccount.Email, newAccount.Name); err != nil {
		a.logger.Warn("welcome mail", zap.String("account_id", newAccount.ID.String()), zap.Error(err))
	}

	return toUserProfile(newAccount), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.PasswordHash == "" {
		// google-only account
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueToken(account, false)
}

func (a *AccountService) LoginWithGoogle(ctx context.Context, idToken string) (*response_models.AccountLoginResponse, error) {
	identity, err := a.google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if identity.Email == "" || !identity.Verified {
		return nil, utils.ErrInvalidIDToken
	}

	account, err := a.accountRepo.FindByProviderSubject(ctx, db_models.ProviderGoogle, identity.Subject)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		return a.issueToken(account, false)
	}

	// link by email when a password account already exists
	account, err = a.accountRepo.FindByEmail(ctx, normalizeEmail(identity.Email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		account.ProviderSubject = identity.Subject
		if account.AvatarURL == "" {
			account.AvatarURL = identity.Picture
		}
		if account.PasswordHash == "" {
			account.Provider = db_models.ProviderGoogle
		}
		if err := a.accountRepo.Update(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return a.issueToken(account, false)
	}

	account = &db_models.Account{
		Name:            identity.Name,
		Email:           normalizeEmail(identity.Email),
		Provider:        db_models.ProviderGoogle,
		ProviderSubject: identity.Subject,
		AvatarURL:       identity.Picture,
		Role:            db_models.RoleUser,
	}
	if err := a.accountRepo.InsertTx(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return a.issueToken(account, true)
}

func (a *AccountService) issueToken(account *db_models.Account, isNew bool) (*response_models.AccountLoginResponse, error) {
	token, err := utils.CreateToken(a.settings.JWTSecret, account.ID, account.Role, a.settings.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: a.now().Add(a.settings.JWTTTL).Unix(),
		IsNewUser: isNew,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserProfile, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toUserProfile(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserProfile, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.DisplayName != nil {
		account.Name = strings.TrimSpace(*request.DisplayName)
	}
	if request.AvatarURL != nil {
		account.AvatarURL = strings.TrimSpace(*request.AvatarURL)
	}
	if request.Bio != nil {
		account.Bio = strings.TrimSpace(*request.Bio)
	}
	if request.HomeCity != nil {
		account.HomeCity = strings.TrimSpace(*request.HomeCity)
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toUserProfile(account), nil
}

// ForgotPassword succeeds for unknown emails so callers cannot probe for accounts.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		a.logger.Info("password reset for unknown email")
		return nil
	}

	code, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return err
	}
	a.otpStore.Set(email, code, otpTTL)

	if err := a.mail.SendOtpCode(ctx, email, account.Name, code, otpTTL); err != nil {
		a.logger.Error("send reset code", zap.String("account_id", account.ID.String()), zap.Error(err))
		return fmt.Errorf("send reset code: %v: %w", err, utils.ErrUpstreamService)
	}
	return nil
}

func (a *AccountService) VerifyOtp(ctx context.Context, email, code string) error {
	if !a.otpStore.Peek(normalizeEmail(email), code) {
		return utils.ErrInvalidOtp
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := normalizeEmail(request.Email)

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil || !a.otpStore.Consume(email, request.Otp) {
		return utils.ErrInvalidOtp
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toUserProfile(a *db_models.Account) *response_models.UserProfile {
	return &response_models.UserProfile{
		ID:        a.ID.String(),
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		Provider:  a.Provider,
		AvatarURL: a.AvatarURL,
		Bio:       a.Bio,
		HomeCity:  a.HomeCity,
		CreatedAt: a.CreatedAt,
	}
}
