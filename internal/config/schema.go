package config

import (
	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of Config. themes, when given, becomes
// the enum of the theme property.
func Schema(themes []string) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		// Use anonymous schemas to avoid ID conflicts
		Anonymous: true,
		// Expand the root struct instead of referencing it
		ExpandedStruct: true,
	}

	schema := r.Reflect(&Config{})
	schema.Version = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = "Atelier Configuration"
	schema.Description = "Configuration schema for the atelier theme builder"

	addThemeEnum(schema, themes)
	return schema
}

func addThemeEnum(schema *jsonschema.Schema, themes []string) {
	if len(themes) == 0 || schema.Properties == nil {
		return
	}
	var ids []any
	for _, t := range themes {
		ids = append(ids, t)
	}
	if themeProp, exists := schema.Properties.Get("theme"); exists {
		themeProp.Enum = ids
	}
}
