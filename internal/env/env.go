package env

import "os"

// Env reads environment variables.
type Env interface {
	Get(key string) string
}

type osEnv struct{}

// Get implements Env.
func (o *osEnv) Get(key string) string {
	return os.Getenv(key)
}

// New returns an Env backed by the process environment.
func New() Env {
	return &osEnv{}
}

type mapEnv struct {
	m map[string]string
}

// Get implements Env.
func (m *mapEnv) Get(key string) string {
	return m.m[key]
}

// NewFromMap returns an Env backed by m, for tests.
func NewFromMap(m map[string]string) Env {
	if m == nil {
		m = make(map[string]string)
	}
	return &mapEnv{m: m}
}

// GetFirst returns the first non-empty value among keys.
func GetFirst(e Env, keys ...string) string {
	for _, k := range keys {
		if v := e.Get(k); v != "" {
			return v
		}
	}
	return ""
}
