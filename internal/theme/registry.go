package theme

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultID is the theme used when none is configured.
const DefaultID = "classic"

// ErrUnknownTheme is returned when a theme ID is not in the registry.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []Theme `json:"themes"`
}

// Registry holds loaded themes keyed by ID.
type Registry struct {
	themes map[string]*Theme
	all    []Theme
}

// NewRegistry creates a registry from loaded theme definitions.
func NewRegistry(themes []Theme) *Registry {
	registry := &Registry{
		themes: make(map[string]*Theme),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadRegistry loads the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(file.Themes), nil
}

// MustLoadRegistry loads the registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the theme with the given ID. An empty ID selects DefaultID.
func (r *Registry) Get(id string) (*Theme, error) {
	if id == "" {
		id = DefaultID
	}
	t, ok := r.themes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, id, strings.Join(r.IDs(), ", "))
	}
	return t, nil
}

// IDs returns the theme IDs in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, t := range r.all {
		ids = append(ids, t.ID)
	}
	return ids
}
