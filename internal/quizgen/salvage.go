package quizgen

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// flatObject matches a JSON object with no nested objects. Arrays and
// escaped strings inside it are fine.
var flatObject = regexp.MustCompile(`\{(?:[^{}"]|"(?:\\.|[^"\\])*")*\}`)

// salvageItems pulls well-formed question objects out of a broken or
// truncated arguments payload.
func salvageItems(raw string) []json.RawMessage {
	var items []json.RawMessage
	for _, m := range flatObject.FindAllString(raw, -1) {
		b := []byte(m)
		if !json.Valid(b) || !bytes.Contains(b, []byte(`"question_text"`)) {
			continue
		}
		items = append(items, json.RawMessage(b))
	}
	return items
}

// decodeItems reads {"questions":[...]} or a bare array.
func decodeItems(raw string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	var items []json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &items)
		return items, err
	}
	var envelope struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Questions, nil
}
