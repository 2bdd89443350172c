package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"newlife/internal/config"
	"newlife/internal/repositories"
	"newlife/internal/services"
	mem "newlife/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideGoogleVerifier)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideGoogleVerifier(cfg config.Config) services.GoogleIdentityVerifier {
	return services.NewGoogleIDTokenVerifier(cfg.GoogleOAuthClientID)
}

func provideAccountService(
	cfg config.Config,
	accountRepo repositories.AccountRepository,
	otpStore mem.OtpStore,
	mailService services.IMailService,
	google services.GoogleIdentityVerifier,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, otpStore, mailService, google, services.AccountSettings{
		JWTSecret: []byte(cfg.JWTSecret),
		JWTTTL:    cfg.JWTTTL,
	}, log.Named("accounts"))
}
