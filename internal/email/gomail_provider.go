package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider отправляет письма через SMTP с помощью gomail
type GomailProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *TemplateManager
}

func NewGomailProvider(config *SMTPConfig, renderer *TemplateManager) *GomailProvider {
	return &GomailProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

func (p *GomailProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return errors.New("email has no recipients")
	}
	return p.dialer.DialAndSend(p.buildMessage(email))
}

func (p *GomailProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	html, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return p.Send(&Email{To: to, Subject: subject, HTMLBody: html})
}

func (p *GomailProvider) buildMessage(email *Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	switch {
	case email.HTMLBody != "" && email.Body != "":
		m.SetBody("text/plain", email.Body)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.Body)
	}
	return m
}
