package email

// Email - исходящее письмо
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData - данные для шаблонов писем
type TemplateData map[string]interface{}

// Provider определяет интерфейс для отправки email
type Provider interface {
	Send(email *Email) error
	// SendTemplate рендерит шаблон и отправляет письмо
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error
}
