package email

import "time"

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// Enabled - без хоста письма не отправляются, только логируются
func (c *SMTPConfig) Enabled() bool {
	return c != nil && c.Host != ""
}
