package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vbonduro/menuscan/internal/menu"
)

// stubModel records the parts it receives and returns a canned response.
type stubModel struct {
	parts []genai.Part
	resp  *genai.GenerateContentResponse
	err   error
}

func (s *stubModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	s.parts = parts
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}},
		}},
	}
}

func newTestAnalyzer(m generator) *GeminiAnalyzer {
	return &GeminiAnalyzer{model: m, now: func() time.Time { return time.Unix(1700000000, 0) }}
}

func TestGeminiAnalyze(t *testing.T) {
	m := &stubModel{resp: textResponse(`{"orderingPhrase":"すみません、これを注文したいです","categories":[{"name":"Drinks","items":[{"originalName":"ビール","translatedName":"Beer","price":500}]}]}`)}
	a := newTestAnalyzer(m)

	images := []menu.Image{
		{Data: []byte{0xFF, 0xD8}, MimeType: "image/jpeg"},
		{Data: []byte{0x89, 0x50}, MimeType: "image/png"},
	}
	result, err := a.Analyze(context.Background(), images, "English")
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Beer", result.Categories[0].Items[0].TranslatedName)
	assert.Equal(t, "すみません、これを注文したいです", result.OrderingPhrase)

	require.Len(t, m.parts, 3, "one blob per image plus the prompt")
	assert.Equal(t, genai.Blob{MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}}, m.parts[0])
	assert.Equal(t, genai.Blob{MIMEType: "image/png", Data: []byte{0x89, 0x50}}, m.parts[1])
	prompt, ok := m.parts[2].(genai.Text)
	require.True(t, ok)
	assert.Contains(t, string(prompt), "into English")
}

func TestGeminiAnalyzeStripsFence(t *testing.T) {
	a := newTestAnalyzer(&stubModel{resp: textResponse("```json\n{\"categories\":[{\"items\":[{\"originalName\":\"Pho\"}]}]}\n```")})

	result, err := a.Analyze(context.Background(), []menu.Image{{Data: []byte{1}, MimeType: "image/jpeg"}}, "English")
	require.NoError(t, err)
	assert.Equal(t, "General", result.Categories[0].Name)
}

func TestGeminiAnalyzeEmptyResponse(t *testing.T) {
	a := newTestAnalyzer(&stubModel{resp: &genai.GenerateContentResponse{}})

	_, err := a.Analyze(context.Background(), []menu.Image{{Data: []byte{1}, MimeType: "image/jpeg"}}, "English")
	assert.ErrorIs(t, err, menu.ErrEmptyResponse)
}

func TestGeminiAnalyzeNoImages(t *testing.T) {
	m := &stubModel{}
	a := newTestAnalyzer(m)

	_, err := a.Analyze(context.Background(), nil, "English")
	assert.ErrorIs(t, err, menu.ErrNoImages)
	assert.Nil(t, m.parts, "no request is sent")
}

func TestGeminiAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "denied"), want: menu.ErrInvalidCredential},
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "no auth"), want: menu.ErrInvalidCredential},
		{name: "invalid argument naming the key", err: status.Error(codes.InvalidArgument, "API key not valid. Please pass a valid API key."), want: menu.ErrInvalidCredential},
		{name: "rest 403", err: &googleapi.Error{Code: 403, Message: "forbidden"}, want: menu.ErrInvalidCredential},
		{name: "quota", err: status.Error(codes.ResourceExhausted, "quota"), want: menu.ErrUpstream},
		{name: "transport", err: errors.New("connection reset"), want: menu.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(&stubModel{err: tt.err})
			_, err := a.Analyze(context.Background(), []menu.Image{{Data: []byte{1}, MimeType: "image/jpeg"}}, "English")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGeminiAnalyzerMissingKey(t *testing.T) {
	_, err := NewGeminiAnalyzer(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorIs(t, err, menu.ErrMissingCredential)
}

func TestCloseWithoutClient(t *testing.T) {
	assert.NoError(t, newTestAnalyzer(&stubModel{}).Close())
}
