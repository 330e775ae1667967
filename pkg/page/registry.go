// registry.go defines the component types a page may contain.
package page

import (
	"errors"
	"fmt"
	"sort"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// ErrUnknownTag is returned when a tag has no registered component type.
var ErrUnknownTag = errors.New("unknown tag")

// TagType defines the behavior for a specific component.
type TagType struct {
	Name        string               // tag name as written in shortcode
	Description string               // shown by `shortcode tags`
	Container   bool                 // true when the component holds children
	Defaults    shortcode.Attributes // applied when the attribute is missing
}

// Registry maps tag names to their type definitions.
// Adding a new component = adding one entry here.
type Registry struct {
	types map[string]TagType
}

// NewRegistry creates a registry holding the given types.
func NewRegistry(types ...TagType) *Registry {
	r := &Registry{types: make(map[string]TagType, len(types))}
	for _, t := range types {
		r.Register(t)
	}
	return r
}

// DefaultRegistry returns the built-in page builder components.
func DefaultRegistry() *Registry {
	return NewRegistry(
		TagType{
			Name:        "box",
			Description: "Rectangular container",
			Container:   true,
			Defaults:    shortcode.Attributes{{Name: "width", Value: "100"}, {Name: "height", Value: "100"}},
		},
		TagType{
			Name:        "circle",
			Description: "Circle shape",
			Container:   true,
			Defaults:    shortcode.Attributes{{Name: "radius", Value: "50"}},
		},
		TagType{
			Name:        "triangle",
			Description: "Triangle shape",
			Container:   true,
			Defaults:    shortcode.Attributes{{Name: "size", Value: "100"}},
		},
		TagType{
			Name:        "special-element_one",
			Description: "Free-form text block",
			Container:   true,
		},
	)
}

// Register adds or replaces a tag type.
func (r *Registry) Register(t TagType) {
	r.types[t.Name] = t
}

// Lookup returns the TagType for a given name. Names are case-sensitive.
func (r *Registry) Lookup(name string) (TagType, error) {
	t, ok := r.types[name]
	if !ok {
		return TagType{}, fmt.Errorf("%w: %s", ErrUnknownTag, name)
	}
	return t, nil
}

// AcceptedTags returns the registered tag names, sorted, for use as a parse
// allow-list.
func (r *Registry) AcceptedTags() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Types returns all tag types sorted by name.
func (r *Registry) Types() []TagType {
	types := make([]TagType, 0, len(r.types))
	for _, name := range r.AcceptedTags() {
		types = append(types, r.types[name])
	}
	return types
}
