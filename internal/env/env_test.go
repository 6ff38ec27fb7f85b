package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSEnv(t *testing.T) {
	t.Setenv("ATELIER_TEST_VAR", "forest")

	assert.Equal(t, "forest", New().Get("ATELIER_TEST_VAR"))
}

func TestMapEnv(t *testing.T) {
	t.Parallel()

	e := NewFromMap(map[string]string{"HOME": "/home/bram"})
	assert.Equal(t, "/home/bram", e.Get("HOME"))
	assert.Equal(t, "", e.Get("MISSING"))

	assert.Equal(t, "", NewFromMap(nil).Get("HOME"))
}

func TestGetFirst(t *testing.T) {
	t.Parallel()

	e := NewFromMap(map[string]string{"B": "b", "C": "c"})
	assert.Equal(t, "b", GetFirst(e, "A", "B", "C"))
	assert.Equal(t, "", GetFirst(e, "A"))
}
