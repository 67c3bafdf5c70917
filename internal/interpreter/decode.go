package interpreter

import (
	"bytes"
	"encoding/json"
)

// OutputShape names the form in which a model returned its text.
type OutputShape string

const (
	ShapeArray  OutputShape = "array"  // [{"generated_text": "..."}]
	ShapeObject OutputShape = "object" // {"generated_text": "..."}
	ShapeString OutputShape = "string" // "..."
	ShapeOther  OutputShape = "other"  // anything else, used verbatim
)

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

// DecodeOutput extracts the generated text from a raw model response.
//
// The known shapes are tried in a fixed order and each one falls through to
// the next when it does not match or carries no text:
//
//  1. array whose first element has a non-empty generated_text
//  2. object with a non-empty generated_text
//  3. JSON string
//  4. anything else: the compact JSON text itself
func DecodeOutput(raw json.RawMessage) (string, OutputShape) {
	var arr []generatedText
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 && arr[0].GeneratedText != "" {
		return arr[0].GeneratedText, ShapeArray
	}

	var obj generatedText
	if err := json.Unmarshal(raw, &obj); err == nil && obj.GeneratedText != "" {
		return obj.GeneratedText, ShapeObject
	}

	// null also unmarshals into a string, so check for the quote first.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s, ShapeString
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw), ShapeOther
	}
	return buf.String(), ShapeOther
}
