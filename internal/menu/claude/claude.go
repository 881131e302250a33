package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/vbonduro/menuscan/internal/menu"
)

// maxTokens leaves room for a dense multi-page menu: roughly 150 items at
// ~40 output tokens each.
const maxTokens = 8192

type ClaudeAnalyzer struct {
	client *anthropic.Client
	model  string
	now    func() time.Time
}

func NewClaudeAnalyzer(apiKey, model string, opts ...anthropic.ClientOption) (*ClaudeAnalyzer, error) {
	if apiKey == "" {
		return nil, menu.ErrMissingCredential
	}
	return &ClaudeAnalyzer{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
		now:    time.Now,
	}, nil
}

// buildMessage constructs a single user turn: one base64 image block per page
// followed by the instruction text.
func buildMessage(images []menu.Image, targetLanguage string) anthropic.Message {
	content := make([]anthropic.MessageContent, 0, len(images)+1)
	for _, img := range menu.EncodeImages(images) {
		content = append(content, anthropic.NewImageMessageContent(anthropic.MessageContentSource{
			Type:      anthropic.MessagesContentSourceTypeBase64,
			MediaType: img.MimeType,
			Data:      img.Data,
		}))
	}
	content = append(content, anthropic.NewTextMessageContent(menu.Prompt(targetLanguage)))
	return anthropic.Message{Role: anthropic.RoleUser, Content: content}
}

func (a *ClaudeAnalyzer) Analyze(ctx context.Context, images []menu.Image, targetLanguage string) (*menu.Result, error) {
	if err := menu.CheckImages(images); err != nil {
		return nil, err
	}

	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages:  []anthropic.Message{buildMessage(images, targetLanguage)},
	})
	if err != nil {
		return nil, classify(err)
	}

	return menu.ParseResponse(resp.GetFirstContentText(), a.now())
}

func classify(err error) error {
	var apiErr *anthropic.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Type {
		case "authentication_error", "permission_error":
			return fmt.Errorf("%w: claude: %w", menu.ErrInvalidCredential, err)
		}
	}
	var reqErr *anthropic.RequestError
	if errors.As(err, &reqErr) &&
		(reqErr.StatusCode == http.StatusUnauthorized || reqErr.StatusCode == http.StatusForbidden) {
		return fmt.Errorf("%w: claude: %w", menu.ErrInvalidCredential, err)
	}
	return fmt.Errorf("%w: claude: %w", menu.ErrUpstream, err)
}
