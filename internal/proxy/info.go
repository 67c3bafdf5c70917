package proxy

import (
	"bytes"
	"encoding/json"

	"github.com/sakif/omen/internal/model"
)

// text decodes any JSON value as display text. Strings are kept as they are,
// null is empty, and anything else becomes its compact JSON form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*t = text(buf.String())
	return nil
}

type wireInterpretations struct {
	Indigenous    text `json:"indigenous"`
	Cultural      text `json:"cultural"`
	Psychological text `json:"psychological"`
}

type wireInfo struct {
	Name            text            `json:"name"`
	History         text            `json:"history"`
	Meaning         text            `json:"meaning"`
	Interpretations json.RawMessage `json:"interpretations"`
}

// decodeInfo reads the backend's info object without enforcing a schema.
// Mistyped fields are kept as text; a value that is not an object at all is
// shown as the legacy meaning. It reports false when info is missing or falsy
// (null, false, 0 or "").
func decodeInfo(raw json.RawMessage) (model.SymbolInfo, bool) {
	if isFalsy(raw) {
		return model.SymbolInfo{}, false
	}

	var w wireInfo
	if raw[0] != '{' || json.Unmarshal(raw, &w) != nil {
		var t text
		if err := json.Unmarshal(raw, &t); err != nil {
			return model.SymbolInfo{}, false
		}
		return model.SymbolInfo{Meaning: string(t)}, true
	}

	info := model.SymbolInfo{
		Name:    string(w.Name),
		History: string(w.History),
		Meaning: string(w.Meaning),
	}

	switch {
	case isFalsy(w.Interpretations):
	case w.Interpretations[0] == '{':
		var wi wireInterpretations
		if err := json.Unmarshal(w.Interpretations, &wi); err == nil {
			info.Interpretations = &model.Interpretations{
				Indigenous:    string(wi.Indigenous),
				Cultural:      string(wi.Cultural),
				Psychological: string(wi.Psychological),
			}
		}
	case info.Meaning == "":
		var t text
		if err := json.Unmarshal(w.Interpretations, &t); err == nil {
			info.Meaning = string(t)
		}
	}

	return info, true
}

// isFalsy reports whether raw is absent or one of the JSON values a loose
// truthiness check rejects.
func isFalsy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}
