package interpreter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOutput(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantText  string
		wantShape OutputShape
	}{
		{
			name:      "array with generated_text",
			raw:       `[{"generated_text":"Here: {\"name\":\"Owl\"}"}]`,
			wantText:  `Here: {"name":"Owl"}`,
			wantShape: ShapeArray,
		},
		{
			name:      "object with generated_text",
			raw:       `{"generated_text":"{\"name\":\"Raven\"}"}`,
			wantText:  `{"name":"Raven"}`,
			wantShape: ShapeObject,
		},
		{
			name:      "raw string",
			raw:       `"{\"name\":\"Lotus\"}"`,
			wantText:  `{"name":"Lotus"}`,
			wantShape: ShapeString,
		},
		{
			name:      "object without generated_text is used verbatim",
			raw:       `{ "name": "Snake",  "history": "old" }`,
			wantText:  `{"name":"Snake","history":"old"}`,
			wantShape: ShapeOther,
		},
		{
			name:      "array with empty generated_text falls through",
			raw:       `[{"generated_text":""}]`,
			wantText:  `[{"generated_text":""}]`,
			wantShape: ShapeOther,
		},
		{
			name:      "empty array",
			raw:       `[]`,
			wantText:  `[]`,
			wantShape: ShapeOther,
		},
		{
			name:      "null",
			raw:       `null`,
			wantText:  `null`,
			wantShape: ShapeOther,
		},
		{
			name:      "number",
			raw:       `42`,
			wantText:  `42`,
			wantShape: ShapeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, shape := DecodeOutput(json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantShape, shape)
			assert.Equal(t, tt.wantText, text)
		})
	}
}
