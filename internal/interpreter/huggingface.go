package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sakif/omen/internal/apperror"
)

// DefaultHuggingFaceURL is the inference router endpoint for Mistral 7B Instruct.
const DefaultHuggingFaceURL = "https://router.huggingface.co/mistralai/Mistral-7B-Instruct-v0.3"

// maxErrorBody bounds how much of an error response is copied into messages.
const maxErrorBody = 2048

// HuggingFace calls a HuggingFace inference endpoint with {"inputs": prompt}.
type HuggingFace struct {
	http   *http.Client
	apiKey string
	url    string
}

type hfRequest struct {
	Inputs string `json:"inputs"`
}

// NewHuggingFace creates a client for url (DefaultHuggingFaceURL when empty)
// authenticated with apiKey as a bearer token.
func NewHuggingFace(apiKey, url string, timeout time.Duration) *HuggingFace {
	if url == "" {
		url = DefaultHuggingFaceURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HuggingFace{
		http:   &http.Client{Timeout: timeout},
		apiKey: apiKey,
		url:    url,
	}
}

// Name identifies the backend in logs.
func (h *HuggingFace) Name() string { return "huggingface" }

// Generate sends prompt and returns the response body as JSON.
//
// A non-2xx status is an upstream failure whose message carries the body
// text. A body that is not JSON is returned as a JSON string so the decoder
// treats it as raw text.
func (h *HuggingFace) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	b, err := json.Marshal(hfRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("huggingface: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("huggingface: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, apperror.Transport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Transport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, apperror.Upstream("HF API error: " + string(body))
	}

	if !json.Valid(body) {
		quoted, err := json.Marshal(string(body))
		if err != nil {
			return nil, fmt.Errorf("huggingface: quoting output: %w", err)
		}
		return quoted, nil
	}
	return json.RawMessage(body), nil
}
