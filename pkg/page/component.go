// component.go materializes parsed shortcode into an editable component tree.
package page

import (
	"strconv"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Component is one editable item on a page. A component with an empty Tag
// holds plain text.
type Component struct {
	ID         string               `json:"id" yaml:"id"`
	Tag        string               `json:"tag,omitempty" yaml:"tag,omitempty"`
	Text       string               `json:"text,omitempty" yaml:"text,omitempty"`
	Attributes shortcode.Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Children   []*Component         `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsText reports whether c holds plain text.
func (c *Component) IsText() bool {
	return c.Tag == ""
}

// Build converts parsed nodes into components. Ids are assigned in document
// order (c1, c2, ...) and missing attributes are filled from the tag's
// defaults. Unknown tags are an error.
func Build(nodes []shortcode.Node, reg *Registry) ([]*Component, error) {
	b := &builder{registry: reg}
	return b.build(nodes)
}

type builder struct {
	registry *Registry
	next     int
}

func (b *builder) id() string {
	b.next++
	return "c" + strconv.Itoa(b.next)
}

func (b *builder) build(nodes []shortcode.Node) ([]*Component, error) {
	components := make([]*Component, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case shortcode.Text:
			components = append(components, &Component{ID: b.id(), Text: string(n)})
		case *shortcode.Element:
			t, err := b.registry.Lookup(n.Tag)
			if err != nil {
				return nil, err
			}
			c := &Component{ID: b.id(), Tag: n.Tag}
			c.Attributes = append(c.Attributes, n.Attributes...)
			for _, d := range t.Defaults {
				if _, ok := c.Attributes.Get(d.Name); !ok {
					c.Attributes.Set(d.Name, d.Value)
				}
			}
			children, err := b.build(n.Children)
			if err != nil {
				return nil, err
			}
			if len(children) > 0 {
				c.Children = children
			}
			components = append(components, c)
		}
	}
	return components, nil
}

// Nodes converts components back into shortcode nodes.
func Nodes(components []*Component) []shortcode.Node {
	nodes := make([]shortcode.Node, 0, len(components))
	for _, c := range components {
		if c.IsText() {
			if c.Text == "" {
				continue
			}
			if n := len(nodes); n > 0 {
				if last, ok := nodes[n-1].(shortcode.Text); ok {
					nodes[n-1] = last + shortcode.Text(c.Text)
					continue
				}
			}
			nodes = append(nodes, shortcode.Text(c.Text))
			continue
		}
		attrs := shortcode.Attributes{}
		attrs = append(attrs, c.Attributes...)
		nodes = append(nodes, &shortcode.Element{
			Tag:        c.Tag,
			Attributes: attrs,
			Children:   Nodes(c.Children),
		})
	}
	return nodes
}

// Find returns the component with the given id, or nil.
func Find(components []*Component, id string) *Component {
	for _, c := range components {
		if c.ID == id {
			return c
		}
		if found := Find(c.Children, id); found != nil {
			return found
		}
	}
	return nil
}
