package theme

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/yumosx/atelier/internal/csync"
	"github.com/yumosx/atelier/internal/palette"
)

// Factory builds a theme on demand.
type Factory func() (*ThemeConfig, error)

// Registry maps theme ids to their factories. Themes are built on every
// Get; nothing is cached, so factories must be pure.
type Registry struct {
	factories   *csync.Map[string, Factory]
	palettes    *csync.Map[string, palette.Variant]
	defaultName string
}

// NewRegistry returns an empty registry whose default is defaultName.
func NewRegistry(defaultName string) *Registry {
	return &Registry{
		factories:   csync.NewMap[string, Factory](),
		palettes:    csync.NewMap[string, palette.Variant](),
		defaultName: defaultName,
	}
}

// Register adds or replaces a factory.
func (r *Registry) Register(id string, f Factory) {
	r.factories.Set(id, f)
}

// RegisterVariant registers a theme built from v and remembers the palette
// so it can be checked before building. It returns the theme id.
func (r *Registry) RegisterVariant(meta Meta, appearance Appearance, v palette.Variant) string {
	id := ID(meta.Name + " " + v.Name)
	r.palettes.Set(id, v)
	r.Register(id, func() (*ThemeConfig, error) {
		return Build(meta, v.Name, appearance, v)
	})
	return id
}

// Palette returns the palette registered for id through RegisterVariant.
func (r *Registry) Palette(id string) (palette.Variant, bool) {
	return r.palettes.Get(id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.factories.Get(id)
	return ok
}

// Get builds the theme registered as id.
func (r *Registry) Get(id string) (*ThemeConfig, error) {
	f, ok := r.factories.Get(id)
	if !ok {
		return nil, fmt.Errorf("theme %s not found", id)
	}
	t, err := f()
	if err != nil {
		return nil, fmt.Errorf("failed to build theme %s: %w", id, err)
	}
	slog.Debug("Built theme", "id", id, "name", t.Name)
	return t, nil
}

// Default builds the default theme.
func (r *Registry) Default() (*ThemeConfig, error) {
	return r.Get(r.defaultName)
}

// DefaultName returns the id of the default theme.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// List returns the registered ids in sorted order.
func (r *Registry) List() []string {
	return slices.Sorted(r.factories.Keys())
}

// ID turns a display name such as "Atelier Forest Dark" into a registry id.
func ID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

const DefaultTheme = "atelier-forest-dark"

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process wide registry holding the built-in
// themes.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry(DefaultTheme)
		r.RegisterVariant(AtelierMeta, Dark, ForestDarkVariant)
		r.RegisterVariant(AtelierMeta, Light, ForestLightVariant)
		defaultRegistry = r
	})
	return defaultRegistry
}
