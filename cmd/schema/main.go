package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yumosx/atelier/internal/config"
	"github.com/yumosx/atelier/internal/theme"
)

func main() {
	schema := config.Schema(theme.DefaultRegistry().List())

	// Pretty print the schema
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(schema); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding schema: %v\n", err)
		os.Exit(1)
	}
}
