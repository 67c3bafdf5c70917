// Package interpreter turns a symbol query into structured interpretive text
// using a hosted text-generation model.
//
// THE PIPELINE:
//
//	BuildPrompt      query + optional practice/location → instruction text
//	Model.Generate   one outbound call → raw JSON response
//	DecodeOutput     raw response → generated text (shape-tolerant)
//	ExtractJSON      generated text → the embedded JSON object
//
// Only successful parsing is required of the extracted object. It is passed
// through to the caller untouched.
package interpreter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/rs/xid"

	"github.com/sakif/omen/internal/model"
)

// Model is a hosted text-generation backend.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Request is one interpretation request.
type Request struct {
	Query             string             `json:"query"`
	Location          *model.Geolocation `json:"location,omitempty"`
	SpiritualPractice string             `json:"spiritualPractice,omitempty"`
}

// Response is the backend's answer. Info is the extracted object as-is;
// ImageURL is nil when no image source is configured.
type Response struct {
	Info     json.RawMessage `json:"info"`
	ImageURL *string         `json:"imageUrl"`
}

// Interpreter runs the pipeline against one Model.
type Interpreter struct {
	model         Model
	imageTemplate string
	logger        *slog.Logger
}

// New creates an Interpreter. imageTemplate may be empty; otherwise every
// "{name}" in it is replaced with the URL-escaped symbol name to form the
// image URL.
func New(m Model, imageTemplate string, logger *slog.Logger) *Interpreter {
	return &Interpreter{
		model:         m,
		imageTemplate: imageTemplate,
		logger:        logger,
	}
}

// Interpret runs one request through the model. Errors are *apperror.AppError
// values whose message is suitable for the caller.
func (i *Interpreter) Interpret(ctx context.Context, req Request) (*Response, error) {
	id := xid.New().String()
	logger := i.logger.With(
		slog.String("interpretation_id", id),
		slog.String("model", i.model.Name()),
	)

	prompt := BuildPrompt(req.Query, req.Location, req.SpiritualPractice)

	raw, err := i.model.Generate(ctx, prompt)
	if err != nil {
		logger.Error("model call failed", slog.String("error", err.Error()))
		return nil, err
	}

	text, shape := DecodeOutput(raw)
	logger.Debug("model raw output",
		slog.String("shape", string(shape)),
		slog.String("raw", string(raw)),
	)

	info, err := ExtractJSON(text)
	if err != nil {
		logger.Warn("extraction failed",
			slog.String("shape", string(shape)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("omen interpreted", slog.String("query", req.Query))

	return &Response{
		Info:     info,
		ImageURL: i.imageURL(info),
	}, nil
}

// imageURL fills the template with the extracted name, or returns nil when
// there is no template or no name.
func (i *Interpreter) imageURL(info json.RawMessage) *string {
	if i.imageTemplate == "" {
		return nil
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(info, &named); err != nil || named.Name == "" {
		return nil
	}

	u := strings.ReplaceAll(i.imageTemplate, "{name}", url.PathEscape(named.Name))
	return &u
}
