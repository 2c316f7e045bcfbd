package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// inferenceProvider posts images to an OpenAI-compatible embeddings endpoint
// and parses the dense vector out of the response.
type inferenceProvider struct {
	baseURL    string
	token      string
	model      string
	httpClient *http.Client
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing EMBEDDING_ENDPOINT")
	}

	return &inferenceProvider{
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		token:      cfg.ServiceToken,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// EmbedImage sends the base64 image payload to the /embeddings endpoint.
// Identical input under a fixed model version yields an identical vector.
func (p *inferenceProvider) EmbedImage(ctx context.Context, imageBase64 string) ([]float32, error) {
	if imageBase64 == "" {
		return nil, fmt.Errorf("inference: empty image payload")
	}

	reqBody := map[string]any{
		"model": p.model,
		"input": []map[string]any{
			{"type": "image", "image": imageBase64},
		},
	}

	var parsed struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	url := p.baseURL + "/embeddings"
	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("%w: empty embedding in response", ErrUnavailable)
	}

	return parsed.Data[0].Embedding, nil
}

// Dimension reports the deployed model's vector length.
func (p *inferenceProvider) Dimension() int { return Dimension }

func (p *inferenceProvider) postJSON(ctx context.Context, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("inference: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("inference: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("inference: unexpected status %d: %s", resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("inference: decode response: %w", err)
	}
	return nil
}
