package config

import (
	"io"
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	data1 := strings.NewReader(`{"theme": "atelier-forest-dark"}`)
	data2 := strings.NewReader(`{"options": {"samples": 5}}`)

	merged, err := Merge([]io.Reader{data1, data2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := `{"options":{"samples":5},"theme":"atelier-forest-dark"}`
	got, err := io.ReadAll(merged)
	if err != nil {
		t.Fatalf("expected no error reading merged data, got %v", err)
	}

	if string(got) != expected {
		t.Errorf("expected %s, got %s", expected, string(got))
	}
}
