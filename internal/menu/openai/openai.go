package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/vbonduro/menuscan/internal/menu"
)

const maxTokens = 8192

// OpenAIAnalyzer talks to any OpenAI-compatible chat completions endpoint
// that accepts image_url content parts.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
	now    func() time.Time
}

// NewOpenAIAnalyzer uses the public endpoint when baseURL is empty.
func NewOpenAIAnalyzer(apiKey, model, baseURL string) (*OpenAIAnalyzer, error) {
	if apiKey == "" {
		return nil, menu.ErrMissingCredential
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIAnalyzer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		now:    time.Now,
	}, nil
}

func buildParts(images []menu.Image, targetLanguage string) []openai.ChatMessagePart {
	parts := make([]openai.ChatMessagePart, 0, len(images)+1)
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: menu.Prompt(targetLanguage),
	})
	for _, img := range menu.EncodeImages(images) {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    "data:" + img.MimeType + ";base64," + img.Data,
				Detail: openai.ImageURLDetailHigh,
			},
		})
	}
	return parts
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, images []menu.Image, targetLanguage string) (*menu.Result, error) {
	if err := menu.CheckImages(images); err != nil {
		return nil, err
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: buildParts(images, targetLanguage),
		}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, menu.ErrEmptyResponse
	}

	return menu.ParseResponse(resp.Choices[0].Message.Content, a.now())
}

func classify(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
		if menu.MentionsAPIKey(apiErr.Message) {
			status = http.StatusUnauthorized
		}
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: openai: %w", menu.ErrInvalidCredential, err)
	}
	return fmt.Errorf("%w: openai: %w", menu.ErrUpstream, err)
}
