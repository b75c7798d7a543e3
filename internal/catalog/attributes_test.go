package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	t.Run("structured value is kept", func(t *testing.T) {
		p := ParseAttributes(json.RawMessage(`["wifi","pool"]`))
		v, ok := p.Parsed()
		require.True(t, ok)
		assert.JSONEq(t, `["wifi","pool"]`, string(v))
		_, unparsed := p.Unparsed()
		assert.False(t, unparsed)
	})

	t.Run("string holding JSON is decoded", func(t *testing.T) {
		p := ParseAttributes(json.RawMessage(`"[\"spa\", \"gym\"]"`))
		v, ok := p.Parsed()
		require.True(t, ok)
		assert.JSONEq(t, `["spa","gym"]`, string(v))
	})

	t.Run("plain text is unparsed", func(t *testing.T) {
		p := ParseAttributes(json.RawMessage(`"wifi, pool"`))
		_, ok := p.Parsed()
		assert.False(t, ok)
		orig, unparsed := p.Unparsed()
		require.True(t, unparsed)
		assert.Equal(t, "wifi, pool", orig)
		assert.JSONEq(t, `["wifi, pool"]`, string(p.Document()))
	})
}

func TestAttributeDocument(t *testing.T) {
	cases := []struct {
		name string
		raw  json.RawMessage
		want string
	}{
		{"absent", nil, `null`},
		{"null", json.RawMessage(`null`), `null`},
		{"object", json.RawMessage(`{"guide":true}`), `{"guide":true}`},
		{"encoded string", json.RawMessage(`"{\"guide\":true}"`), `{"guide":true}`},
		{"free text", json.RawMessage(`"hiking"`), `["hiking"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.JSONEq(t, tc.want, string(attributeDocument(tc.raw)))
		})
	}
}
