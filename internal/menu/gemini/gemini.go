package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vbonduro/menuscan/internal/menu"
)

// generator is the subset of *genai.GenerativeModel the analyzer uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"orderingPhrase": {
			Type:        genai.TypeString,
			Description: "The phrase 'Excuse me, I would like to order this' in the MENU'S original language.",
		},
		"categories": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString, Description: "Category name in target language"},
					"items": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"originalName":   {Type: genai.TypeString},
								"translatedName": {Type: genai.TypeString},
								"description":    {Type: genai.TypeString},
								"price":          {Type: genai.TypeNumber},
							},
						},
					},
				},
			},
		},
	},
}

type GeminiAnalyzer struct {
	client *genai.Client
	model  generator
	now    func() time.Time
}

// NewGeminiAnalyzer returns menu.ErrMissingCredential without dialing when
// apiKey is empty.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, menu.ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = responseSchema

	return &GeminiAnalyzer{client: client, model: m, now: time.Now}, nil
}

func (a *GeminiAnalyzer) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, images []menu.Image, targetLanguage string) (*menu.Result, error) {
	if err := menu.CheckImages(images); err != nil {
		return nil, err
	}

	parts := make([]genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, genai.Blob{MIMEType: menu.NormaliseMIME(img.MimeType), Data: img.Data})
	}
	parts = append(parts, genai.Text(menu.Prompt(targetLanguage)))

	resp, err := a.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, classify(err)
	}

	return menu.ParseResponse(responseText(resp), a.now())
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// classify maps a genai error onto the menu error taxonomy. The client talks
// gRPC, so rejections usually arrive as status codes; REST fallbacks surface
// as *googleapi.Error. A bad key is sometimes reported as InvalidArgument, in
// which case only the message tells it apart.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: gemini: %w", menu.ErrInvalidCredential, err)
	}
	switch status.Code(err) {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: gemini: %w", menu.ErrInvalidCredential, err)
	}
	if menu.MentionsAPIKey(err.Error()) {
		return fmt.Errorf("%w: gemini: %w", menu.ErrInvalidCredential, err)
	}
	return fmt.Errorf("%w: gemini: %w", menu.ErrUpstream, err)
}
