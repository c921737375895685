package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/coursegen/backend/internal/clients"
)

// ExtractJSON returns the outermost JSON object or array embedded in a model reply,
// dropping markdown code fences and any prose around it
func ExtractJSON(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}

	closing := "}"
	if text[start] == '[' {
		closing = "]"
	}
	end := strings.LastIndex(text, closing)
	if end < start {
		return "", false
	}

	return text[start : end+1], true
}

// DecodeJSON extracts and unmarshals the JSON payload of a model reply into v
func DecodeJSON(text string, v any) error {
	const op = "llm.decode"
	payload, ok := ExtractJSON(text)
	if !ok {
		return clients.NewError(clients.KindDecode, op, errors.New("no json in completion"))
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return clients.NewError(clients.KindDecode, op, err)
	}
	return nil
}
