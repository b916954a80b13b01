package email

import (
	"fmt"

	"jobtracker_backend/internal/logger"
)

// LogProvider используется в разработке и тестах, когда SMTP не настроен.
// Письма не отправляются, только пишутся в лог.
type LogProvider struct {
	renderer *TemplateManager
}

func NewLogProvider(renderer *TemplateManager) *LogProvider {
	return &LogProvider{renderer: renderer}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("email skipped, smtp not configured",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	html, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return p.Send(&Email{To: to, Subject: subject, HTMLBody: html})
}

// NewProvider выбирает SMTP или журнал в зависимости от конфигурации
func NewProvider(config *SMTPConfig, renderer *TemplateManager) Provider {
	if config.Enabled() {
		return NewGomailProvider(config, renderer)
	}
	return NewLogProvider(renderer)
}
