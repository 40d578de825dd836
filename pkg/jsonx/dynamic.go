// Package jsonx holds small JSON helpers shared by the tool adapters.
package jsonx

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// ToDynamicJSON converts any Go value to a dynamic JSON object represented as a map[string]any.
// It first marshals the input value to JSON bytes and then unmarshals those bytes into a map.
// SDKs that take tool parameters as loose maps (openai-go, mcp-go) get their schemas this way.
func ToDynamicJSON(val any) (map[string]any, error) {
	result := make(map[string]any)
	b, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Pretty renders val as JSON indented with two spaces.
// HTML characters are left unescaped so results read naturally in an LLM transcript.
func Pretty(val any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(val); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// IsEmpty reports whether raw carries no value: empty, whitespace or a JSON null.
func IsEmpty(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
