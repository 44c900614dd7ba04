package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentTextPlain(t *testing.T) {
	text, err := DocumentText("text/plain", []byte("Ada Lovelace\nada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\nada@example.com", text)
}

func TestDocumentTextUnsupportedMime(t *testing.T) {
	_, err := DocumentText("image/png", []byte{0x89, 0x50})
	assert.Error(t, err)
}

func TestDocumentTextCorruptPDF(t *testing.T) {
	_, err := DocumentText("application/pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", `{"name":"Ada"}`, `{"name":"Ada"}`},
		{"json fence", "```json\n{\"name\":\"Ada\"}\n```", `{"name":"Ada"}`},
		{"plain fence", "```\n{\"name\":\"Ada\"}\n```", `{"name":"Ada"}`},
		{"surrounding whitespace", "  \n{\"name\":\"Ada\"}\n  ", `{"name":"Ada"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSON(tc.input))
		})
	}
}
