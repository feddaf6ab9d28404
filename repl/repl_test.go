package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPrintsDocumentPerLine(t *testing.T) {
	in := strings.NewReader("{ a }\nquery { }\n")
	var out bytes.Buffer

	require.NoError(t, Start(in, &out))

	lines := strings.Split(out.String(), PROMPT)
	require.Len(t, lines, 4)
	assert.Empty(t, lines[0])
	assert.Contains(t, lines[1], `"subType": "operation"`)
	assert.Contains(t, lines[1], `"name": "a"`)
	assert.Equal(t, "error: repl:1:9: Expected Selection near \"}\"\n", lines[2])
	assert.Equal(t, "\n", lines[3])
}
