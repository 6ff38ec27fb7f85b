package config

import (
	"bytes"
	"io"

	"github.com/qjebbs/go-jsons"
)

// Merge deep merges JSON documents; later readers win.
func Merge(data []io.Reader) (io.Reader, error) {
	got, err := jsons.Merge(data)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(got), nil
}
