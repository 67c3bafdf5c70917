package interpreter

import (
	"fmt"
	"strconv"

	"github.com/sakif/omen/internal/model"
)

// BuildPrompt composes the instruction sent to the model for one query.
//
// A practice sentence is added when practice is non-empty, and a location
// sentence when location is non-nil. Each appears on its own line, or the
// line is left blank.
func BuildPrompt(query string, location *model.Geolocation, practice string) string {
	return fmt.Sprintf(promptTemplate, query, practiceLine(practice), locationLine(location))
}

const promptTemplate = `
You are Omen, a spiritual symbologist. Analyze the symbol:

"%s"

Return a structured JSON object with EXACTLY these fields:

{
  "name": string,
  "interpretations": {
    "indigenous": string,
    "cultural": string,
    "psychological": string
  },
  "history": string
}

Guidelines:
- Be concise but meaningful.
- Avoid fictional cultures.
- Indigenous interpretation = folklore, spiritual, mythic meanings.
- Cultural interpretation = modern society meaning.
- Psychological interpretation = subconscious, archetypes, Jungian symbolism.
- History = origin + how the symbol evolved.

%s
%s

Respond ONLY with JSON. No prose outside JSON.
`

func practiceLine(practice string) string {
	if practice == "" {
		return ""
	}
	return fmt.Sprintf("The user practices: %s. Tailor the cultural or spiritual interpretation toward that background if appropriate.", practice)
}

func locationLine(location *model.Geolocation) string {
	if location == nil {
		return ""
	}
	return fmt.Sprintf("The user is located at latitude %s, longitude %s. If relevant folklore from this region exists, include it in the indigenous interpretation.",
		formatCoord(location.Latitude), formatCoord(location.Longitude))
}

// formatCoord prints the shortest exact representation: 51.5, not 51.500000.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
