// Package proxy is the client side of the interpretation endpoint: it sends a
// query to the backend and normalizes the reply into a model.SymbolResult.
//
// Every failure comes back as a single *apperror.AppError whose Error() is the
// message to show the user. Nothing is retried.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/model"
)

const (
	DefaultBackendURL = "http://localhost:8080/api/omen"

	msgBackendFailed = "Failed to fetch symbol info from backend."
	msgIncomplete    = "Backend did not return the expected symbol info or image."
)

// Client posts interpretation requests to the backend.
type Client struct {
	http   *http.Client
	url    string
	logger *slog.Logger
}

// NewClient creates a Client for the endpoint at url.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultBackendURL
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		url:    url,
		logger: logger,
	}
}

// request is the wire body. Absent location and practice are sent as null.
type request struct {
	Query             string             `json:"query"`
	Location          *model.Geolocation `json:"location"`
	SpiritualPractice *string            `json:"spiritualPractice"`
}

// response is decoded loosely: info is kept raw for decodeInfo, and the
// other fields accept any JSON value.
type response struct {
	Info     json.RawMessage `json:"info"`
	ImageURL text            `json:"imageUrl"`
	Error    text            `json:"error"`
}

// Fetch sends one query and returns the normalized result.
//
// It fails when the backend is unreachable, answers with a non-2xx status
// (the body text becomes the message), returns an error field, or omits
// info or imageUrl. The info object is not checked against a schema: fields
// of an unexpected type are kept as text.
func (c *Client) Fetch(ctx context.Context, query string, location *model.Geolocation, practice model.SpiritualPractice) (*model.SymbolResult, error) {
	body := request{Query: query, Location: location}
	if practice != "" {
		p := string(practice)
		body.SpiritualPractice = &p
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("proxy: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("proxy: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend unreachable",
			slog.String("url", c.url),
			slog.String("error", err.Error()),
		)
		return nil, apperror.Transport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Transport(err)
	}

	c.logger.Debug("backend responded",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(raw)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = msgBackendFailed
		}
		return nil, apperror.Upstream(msg)
	}

	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.Upstream(fmt.Sprintf("Backend returned an unreadable response: %v", err))
	}
	if out.Error != "" {
		return nil, apperror.Upstream(string(out.Error))
	}

	info, ok := decodeInfo(out.Info)
	if !ok || out.ImageURL == "" {
		return nil, apperror.Upstream(msgIncomplete)
	}

	return &model.SymbolResult{
		Info:     info,
		ImageURL: string(out.ImageURL),
	}, nil
}
