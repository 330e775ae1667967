package page

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

func TestDefaultRegistry_ContainsExpectedTags(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, []string{"box", "circle", "special-element_one", "triangle"}, reg.AcceptedTags())

	for _, name := range reg.AcceptedTags() {
		t.Run(name, func(t *testing.T) {
			tt, err := reg.Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, tt.Name)
			assert.NotEmpty(t, tt.Description)
		})
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := DefaultRegistry().Lookup("hexagon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTag))
	assert.Equal(t, "unknown tag: hexagon", err.Error())
}

func TestRegistry_LookupIsCaseSensitive(t *testing.T) {
	_, err := DefaultRegistry().Lookup("BOX")
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestRegistry_Register(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register(TagType{
		Name:     "hexagon",
		Defaults: shortcode.Attributes{{Name: "side", Value: "20"}},
	})

	tt, err := reg.Lookup("hexagon")
	require.NoError(t, err)
	v, ok := tt.Defaults.Get("side")
	assert.True(t, ok)
	assert.Equal(t, "20", v)
	assert.Contains(t, reg.AcceptedTags(), "hexagon")

	// replacing keeps a single entry
	reg.Register(TagType{Name: "hexagon"})
	assert.Len(t, reg.Types(), 5)
}

func TestRegistry_TypesSorted(t *testing.T) {
	reg := NewRegistry(TagType{Name: "b"}, TagType{Name: "a"})
	types := reg.Types()
	require.Len(t, types, 2)
	assert.Equal(t, "a", types[0].Name)
	assert.Equal(t, "b", types[1].Name)
}
