package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/nutriplan/backend/config"
)

// TextGenerator is the single capability the request pipeline needs from the
// generative model: hand it a prompt, get raw response text back. Handlers
// depend on this interface so tests can substitute a stub.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiService calls the Google Gemini API through the official SDK. The
// client and model are constructed once at startup and shared across
// requests; both are safe for concurrent use.
type GeminiService struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  *zerolog.Logger
}

// NewGeminiService creates a GeminiService from the process configuration.
func NewGeminiService(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
	}

	logger.Info().Str("model", cfg.GeminiModel).Msg("Gemini client configured")

	return &GeminiService{
		client:  client,
		model:   model,
		timeout: cfg.GeminiTimeout,
		logger:  logger,
	}, nil
}

// GenerateText sends a single synchronous generation request. There are no
// retries; any SDK failure or empty candidate list surfaces as an
// UpstreamError for the handler boundary to recover.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Info().Msg("calling Gemini API")
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	text := firstText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Err: fmt.Errorf("no content found in Gemini response")}
	}
	return text, nil
}

// Close releases the underlying SDK client.
func (s *GeminiService) Close() error {
	return s.client.Close()
}

// firstText returns the first text part of the first candidate that has one.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
