package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("key", "pastOmens_guest"),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("query", "query is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Transport wraps ErrTransport",
			err:       Transport(errors.New("connection refused")),
			target:    ErrTransport,
			wantMatch: true,
		},
		{
			name:      "Transport keeps its cause",
			err:       Transport(fmt.Errorf("dial: %w", context.DeadlineExceeded)),
			target:    context.DeadlineExceeded,
			wantMatch: true,
		},
		{
			name:      "Upstream wraps ErrUpstream",
			err:       Upstream("HF API error: overloaded"),
			target:    ErrUpstream,
			wantMatch: true,
		},
		{
			name:      "ExtractionFailed wraps ErrExtraction",
			err:       ExtractionFailed("no JSON object", nil),
			target:    ErrExtraction,
			wantMatch: true,
		},
		{
			name:      "wrapped with fmt.Errorf still matches",
			err:       fmt.Errorf("interpreting: %w", Upstream("boom")),
			target:    ErrUpstream,
			wantMatch: true,
		},
		{
			name:      "Upstream does NOT match ErrTransport",
			err:       Upstream("boom"),
			target:    ErrTransport,
			wantMatch: false,
		},
		{
			name:      "ValidationFailed does NOT match ErrNotFound",
			err:       ValidationFailed("name", "too long"),
			target:    ErrNotFound,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "NotFound message includes resource and id",
			err:         NotFound("omen", "Owl"),
			wantMessage: "omen not found with id Owl",
		},
		{
			name:        "ValidationFailed uses custom message",
			err:         ValidationFailed("query", "Missing query field."),
			wantMessage: "Missing query field.",
		},
		{
			name:        "Transport uses the cause verbatim",
			err:         Transport(errors.New("dial tcp: connection refused")),
			wantMessage: "dial tcp: connection refused",
		},
		{
			name:        "Upstream uses custom message",
			err:         Upstream("HF API error: rate limited"),
			wantMessage: "HF API error: rate limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("proxy: %w", Upstream("backend says no"))

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("errors.As did not find *AppError in %v", err)
	}
	if appErr.Message != "backend says no" {
		t.Errorf("Message = %q, want %q", appErr.Message, "backend says no")
	}
}

func TestValidationFailedField(t *testing.T) {
	err := ValidationFailed("theme", "unknown theme")

	if err.Field != "theme" {
		t.Errorf("Field = %q, want %q", err.Field, "theme")
	}
}
