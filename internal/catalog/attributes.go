package catalog

import (
	"bytes"
	"encoding/json"

	"travel-backend/internal/models"

	"gorm.io/datatypes"
)

// AttributeParse is the outcome of reading an amenities/activities value.
// Exactly one of Parsed or Unparsed reports ok.
type AttributeParse struct {
	parsed   json.RawMessage
	original string
	ok       bool
}

// ParseAttributes accepts a structured JSON value as-is. A JSON string is
// parsed as a JSON document; if that fails the result is Unparsed and keeps
// the original text.
func ParseAttributes(raw json.RawMessage) AttributeParse {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return AttributeParse{parsed: trimmed, ok: true}
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return AttributeParse{original: string(trimmed)}
	}
	inner := bytes.TrimSpace([]byte(text))
	if !json.Valid(inner) {
		return AttributeParse{original: text}
	}
	return AttributeParse{parsed: inner, ok: true}
}

func (p AttributeParse) Parsed() (json.RawMessage, bool) { return p.parsed, p.ok }

func (p AttributeParse) Unparsed() (string, bool) { return p.original, !p.ok }

// Document is the value to store. Unparsed input is kept as a single-element
// list holding the original text.
func (p AttributeParse) Document() datatypes.JSON {
	if v, ok := p.Parsed(); ok {
		if len(v) == 0 {
			return models.JSONNull
		}
		return datatypes.JSON(v)
	}
	orig, _ := p.Unparsed()
	b, _ := json.Marshal([]string{orig})
	return datatypes.JSON(b)
}

// attributeDocument maps an optional request field to the stored document.
// Absent and null both store JSON null.
func attributeDocument(raw json.RawMessage) datatypes.JSON {
	if isNull(raw) {
		return models.JSONNull
	}
	return ParseAttributes(raw).Document()
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
