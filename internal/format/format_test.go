package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, Text, f)

	_, err = Parse("yaml")
	require.Error(t, err)
}

func TestFormatOutput(t *testing.T) {
	t.Parallel()

	out, err := FormatOutput("a\nb\n", []string{"a", "b"}, Text)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = FormatOutput("a\nb\n", []string{"a", "b"}, JSON)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]\n", out)
}

func TestGetHelpText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Output format (text, json)", GetHelpText())
}
