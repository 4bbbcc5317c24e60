package notes

import (
	"context"
	"fmt"

	"cloud.google.com/go/auth"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
)

type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel creates a Model that calls Gemini through Vertex AI. A nil
// creds falls back to application default credentials.
func NewGeminiModel(ctx context.Context, cfg config.VertexConfig, creds *auth.Credentials) (Model, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     cfg.Project,
		Location:    cfg.Location,
		Credentials: creds,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &geminiModel{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateContent sends the audio part followed by the prompt as one user turn.
func (m *geminiModel) GenerateContent(ctx context.Context, audioURI, mimeType, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromURI(audioURI, mimeType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := m.client.Models.GenerateContent(ctx, m.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			text += part.Text
		}
	}
	return text, nil
}
