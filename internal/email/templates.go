package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const TemplateApplicationSubmitted = "application_submitted"

const applicationSubmittedHTML = `<p>Hello {{.EmployerName}},</p>
<p><strong>{{.ApplicantName}}</strong> has applied to your posting <strong>{{.JobTitle}}</strong> at {{.Company}}.</p>
<p>Submitted at {{.AppliedAt}}.</p>
<p>Open the job board to review the resume and cover letter.</p>`

// TemplateManager хранит html-шаблоны писем
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер со встроенными шаблонами
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.AddTemplate(TemplateApplicationSubmitted, applicationSubmittedHTML); err != nil {
		panic(err)
	}
	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate добавляет или заменяет шаблон
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Option("missingkey=zero").Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
