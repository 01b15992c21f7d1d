package email

import (
	"fmt"

	"parcel_tracking/internal/config"
	"parcel_tracking/internal/logger"
)

// NewSender creates an e-mail sender based on the configuration.
func NewSender(cfg config.EmailConfig, log *logger.Logger) (Sender, error) {
	switch cfg.Provider {
	case "", "log":
		return NewLogSender(cfg.From, log), nil
	case "smtp":
		if cfg.SMTP.Host == "" {
			return nil, fmt.Errorf("email provider is 'smtp' but email.smtp.host is not set")
		}
		return NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.From), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Provider)
	}
}
