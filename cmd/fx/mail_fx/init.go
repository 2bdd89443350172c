package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"newlife/internal/config"
	"newlife/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.Config, log *zap.Logger) services.IMailService {
	if cfg.SMTP.Host == "" {
		log.Warn("SMTP_HOST not set, mail is logged instead of sent")
		return services.NewLogMailService(log.Named("mail"))
	}

	log.Info("smtp mail enabled",
		zap.String("host", cfg.SMTP.Host),
		zap.Int("port", cfg.SMTP.Port),
		zap.Bool("ssl", cfg.SMTP.UseSSL))
	return services.NewSMTPMailService(cfg.SMTP, services.MailBranding{
		AppName:    cfg.AppName,
		AppBaseURL: cfg.AppBaseURL,
	})
}
