package interpreter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sakif/omen/internal/apperror"
)

// ExtractJSON returns the JSON object embedded in free-form model output.
//
// It takes everything from the first '{' to the last '}' inclusive and
// requires that slice to parse. The parsed value is not checked against any
// schema. Output holding several objects, or a stray '}' after the real one,
// yields a slice that fails to parse.
func ExtractJSON(text string) (json.RawMessage, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, apperror.ExtractionFailed("Model output did not contain a JSON object.", nil)
	}

	candidate := text[start : end+1]

	var scratch any
	if err := json.Unmarshal([]byte(candidate), &scratch); err != nil {
		return nil, apperror.ExtractionFailed(
			fmt.Sprintf("Model output did not contain valid JSON: %v", err), err)
	}

	return json.RawMessage(candidate), nil
}
