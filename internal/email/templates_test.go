package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_ApplicationSubmitted(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateApplicationSubmitted, TemplateData{
		"EmployerName":  "Acme HR",
		"ApplicantName": "<Alice>",
		"JobTitle":      "Backend Engineer",
		"Company":       "Acme",
		"AppliedAt":     "2024-01-01",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Backend Engineer")
	assert.Contains(t, html, "&lt;Alice&gt;", "html/template экранирует ввод пользователя")
}

func TestTemplateManager_Unknown(t *testing.T) {
	_, err := NewTemplateManager().Render("nope", nil)
	assert.Error(t, err)
}

func TestGomailProvider_BuildMessage(t *testing.T) {
	p := NewGomailProvider(&SMTPConfig{Host: "smtp.test", Port: 25, FromEmail: "noreply@test", FromName: "Board"}, NewTemplateManager())

	m := p.buildMessage(&Email{To: []string{"hr@acme.io"}, Subject: "New application", Body: "hi"})
	assert.Equal(t, []string{"hr@acme.io"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New application"}, m.GetHeader("Subject"))

	assert.Error(t, p.Send(&Email{Subject: "no recipients"}))
}

func TestNewProvider_FallsBackToLog(t *testing.T) {
	p := NewProvider(&SMTPConfig{}, NewTemplateManager())
	_, isLog := p.(*LogProvider)
	assert.True(t, isLog)

	assert.NoError(t, p.SendTemplate([]string{"hr@acme.io"}, "subj", TemplateApplicationSubmitted, TemplateData{}))
	assert.Error(t, p.SendTemplate([]string{"hr@acme.io"}, "subj", "missing", nil))

	_, isSMTP := NewProvider(&SMTPConfig{Host: "smtp.test", Port: 25}, NewTemplateManager()).(*GomailProvider)
	assert.True(t, isSMTP)
}
