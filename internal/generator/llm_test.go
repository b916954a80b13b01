package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel - заглушка llms.Model, запоминает последний промпт
type fakeModel struct {
	reply      string
	err        error
	lastPrompt string
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.lastPrompt += text.Text
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestLLMGenerator_UsesPrompt(t *testing.T) {
	model := &fakeModel{reply: "Generated letter\n"}
	g := NewLLMGenerator(model)

	text, err := g.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "Generated letter", text)
	assert.Contains(t, model.lastPrompt, "cover letter")
	assert.Contains(t, model.lastPrompt, "Company: Acme")
	assert.Contains(t, model.lastPrompt, "Skills: Go, SQL")
}

func TestLLMGenerator_ProviderErrorIsUnavailable(t *testing.T) {
	g := NewLLMGenerator(&fakeModel{err: errors.New("503 from provider")})

	_, err := g.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLLMGenerator_EmptyReplyRejectedByAdapter(t *testing.T) {
	a := NewAdapter(NewLLMGenerator(&fakeModel{reply: ""}))

	_, err := a.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrRejected)
}
