// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data. The same structs are shared by
// the backend (which produces them) and the client (which stores them).
package model

import "strings"

// Interpretations is the three-perspective breakdown of a symbol's meaning.
//
// When present on a SymbolInfo it always carries all three fields; the model
// is asked for exactly this shape.
type Interpretations struct {
	Indigenous    string `json:"indigenous"`    // folklore, spiritual, mythic meanings
	Cultural      string `json:"cultural"`      // modern society meaning
	Psychological string `json:"psychological"` // archetypes, Jungian symbolism
}

// SymbolInfo is the interpretive text returned for one query.
//
// The `json:"..."` tags match the wire format used by the backend and the
// persisted format used by the local store, so one struct serves both.
//
// Meaning is a legacy field: entries saved before the three-perspective
// breakdown existed only carry Meaning. Either Interpretations or Meaning is
// present for display purposes.
type SymbolInfo struct {
	Name            string           `json:"name"`
	History         string           `json:"history"`
	Interpretations *Interpretations `json:"interpretations,omitempty"`
	Meaning         string           `json:"meaning,omitempty"`
}

// ShareText formats the symbol as plain text suitable for sharing.
//
// Cultural and psychological paragraphs are only added when non-empty.
// Legacy entries without Interpretations fall back to Meaning.
func (s SymbolInfo) ShareText() string {
	var b strings.Builder
	b.WriteString(s.Name)

	if s.Interpretations == nil {
		b.WriteString("\n\n")
		b.WriteString(s.Meaning)
		return b.String()
	}

	b.WriteString("\n\nIndigenous: ")
	b.WriteString(s.Interpretations.Indigenous)
	if s.Interpretations.Cultural != "" {
		b.WriteString("\n\nCultural: ")
		b.WriteString(s.Interpretations.Cultural)
	}
	if s.Interpretations.Psychological != "" {
		b.WriteString("\n\nPsychological: ")
		b.WriteString(s.Interpretations.Psychological)
	}
	return b.String()
}

// Omen is one completed interpretation: the symbol info plus the generated
// image reference, the original search text and the creation instant.
//
// EMBEDDING:
// SymbolInfo is embedded, so its fields are promoted (omen.Name works) and
// encoding/json inlines them: an Omen serialises as one flat object
// {"name":...,"history":...,"imageUrl":...,"query":...,"timestamp":...}.
//
// Identity for dedup and lookup is Name, compared case-insensitively.
type Omen struct {
	SymbolInfo
	ImageURL  string `json:"imageUrl"`
	Query     string `json:"query"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// SameName reports whether two names identify the same omen (case-insensitive).
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Geolocation is an optional position attached to a query.
type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SymbolResult is the normalized response of one interpretation request.
type SymbolResult struct {
	Info     SymbolInfo `json:"info"`
	ImageURL string     `json:"imageUrl"`
}
