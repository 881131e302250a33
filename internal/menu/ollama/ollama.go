package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vbonduro/menuscan/internal/menu"
)

// maxErrorBody caps how much of a failed response is kept for the error.
const maxErrorBody = 4 << 10

type OllamaAnalyzer struct {
	host   string
	model  string
	client *http.Client
	now    func() time.Time
}

func NewOllamaAnalyzer(host, model string) *OllamaAnalyzer {
	return &OllamaAnalyzer{
		host:   host,
		model:  model,
		client: &http.Client{},
		now:    time.Now,
	}
}

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Format string   `json:"format"`
	Stream bool     `json:"stream"`
}

func (a *OllamaAnalyzer) Analyze(ctx context.Context, images []menu.Image, targetLanguage string) (*menu.Result, error) {
	if err := menu.CheckImages(images); err != nil {
		return nil, err
	}

	encoded := make([]string, 0, len(images))
	for _, img := range menu.EncodeImages(images) {
		encoded = append(encoded, img.Data)
	}

	payload, err := json.Marshal(generateRequest{
		Model:  a.model,
		Prompt: menu.Prompt(targetLanguage),
		Images: encoded,
		Format: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to call ollama: %w", menu.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, menu.StatusError("ollama", resp.StatusCode, string(body))
	}

	var respBody struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", menu.ErrUpstream, err)
	}

	return menu.ParseResponse(respBody.Response, a.now())
}
