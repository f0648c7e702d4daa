package module

import "assistant/internal/platform/config"

// Options holds SMTP settings for the subscription mailer
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Schedule string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	mf := cfg.Prefix("MAIL_")
	return Options{
		Host:     mf.MayString("HOST", ""),
		Port:     mf.MayInt("PORT", 587),
		Username: mf.MayString("USER", ""),
		Password: mf.MayString("PASS", ""),
		From:     mf.MayString("FROM", ""),
		Schedule: mf.MayString("DIGEST_SCHEDULE", "@weekly"),
	}
}
