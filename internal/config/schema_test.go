package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	schema := Schema([]string{"atelier-forest-dark", "atelier-forest-light"})
	assert.Equal(t, "Atelier Configuration", schema.Title)

	themeProp, ok := schema.Properties.Get("theme")
	require.True(t, ok)
	assert.Equal(t, []any{"atelier-forest-dark", "atelier-forest-light"}, themeProp.Enum)
	assert.Equal(t, "atelier-forest-dark", themeProp.Default)

	bts, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(bts), `"data_directory"`)
	assert.Contains(t, string(bts), `"preview_width"`)
}

func TestSchemaWithoutThemes(t *testing.T) {
	schema := Schema(nil)

	themeProp, ok := schema.Properties.Get("theme")
	require.True(t, ok)
	assert.Empty(t, themeProp.Enum)
}
