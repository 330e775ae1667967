// node.go defines the parsed shortcode tree.
package shortcode

// Node is either a Text run or an *Element.
type Node interface {
	node()
}

// Text is literal content between tags.
type Text string

// Element is a recognized tag with its attributes and nested content.
type Element struct {
	Tag        string
	Attributes Attributes
	Children   []Node
}

func (Text) node()     {}
func (*Element) node() {}

// NewElement creates an element with no attributes and no children.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, Children: []Node{}}
}

// Attribute is a single name/value pair on a tag.
type Attribute struct {
	Name  string
	Value string
}

// Attributes keeps tag attributes in the order they were written.
type Attributes []Attribute

// Get returns the value for name and whether it was set.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing attribute in place, or appends it.
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Map returns the attributes as a plain map.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Name] = attr.Value
	}
	return m
}

// Equal reports whether both lists hold the same pairs, ignoring order.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for _, attr := range a {
		v, ok := b.Get(attr.Name)
		if !ok || v != attr.Value {
			return false
		}
	}
	return true
}

// Equal reports whether two node sequences are structurally equal.
// Attribute order is not significant.
func Equal(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case *Element:
		y, ok := b.(*Element)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		return x.Tag == y.Tag && x.Attributes.Equal(y.Attributes) && Equal(x.Children, y.Children)
	default:
		return false
	}
}

// Walk visits nodes depth-first in document order. Returning false from fn
// skips the children of the visited element.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, n := range nodes {
		if !fn(n, depth) {
			continue
		}
		if el, ok := n.(*Element); ok {
			walk(el.Children, depth+1, fn)
		}
	}
}

// appendText adds s to nodes, merging it into a trailing Text node.
func appendText(nodes []Node, s string) []Node {
	if s == "" {
		return nodes
	}
	if n := len(nodes); n > 0 {
		if last, ok := nodes[n-1].(Text); ok {
			nodes[n-1] = last + Text(s)
			return nodes
		}
	}
	return append(nodes, Text(s))
}

// appendNodes adds each of extra to nodes, keeping adjacent text merged.
func appendNodes(nodes []Node, extra ...Node) []Node {
	for _, n := range extra {
		if t, ok := n.(Text); ok {
			nodes = appendText(nodes, string(t))
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}
