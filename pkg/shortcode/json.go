// json.go encodes Node trees as JSON: text nodes are strings and elements are
// {"tag", "attributes", "children"} objects.
package shortcode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MarshalJSON writes attributes as a JSON object in insertion order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string values, keeping key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("attributes must be a JSON object")
	}

	attrs := Attributes{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		attrs.Set(name, value)
	}
	*a = attrs
	return nil
}

type elementJSON struct {
	Tag        string            `json:"tag"`
	Attributes Attributes        `json:"attributes"`
	Children   []json.RawMessage `json:"children"`
}

// MarshalJSON implements json.Marshaler. A nil element encodes as null.
func (el *Element) MarshalJSON() ([]byte, error) {
	if el == nil {
		return []byte("null"), nil
	}
	children := make([]json.RawMessage, 0, len(el.Children))
	for _, child := range el.Children {
		data, err := marshalNode(child)
		if err != nil {
			return nil, err
		}
		if data != nil {
			children = append(children, data)
		}
	}
	attrs := el.Attributes
	if attrs == nil {
		attrs = Attributes{}
	}
	return json.Marshal(elementJSON{Tag: el.Tag, Attributes: attrs, Children: children})
}

// UnmarshalJSON implements json.Unmarshaler.
func (el *Element) UnmarshalJSON(data []byte) error {
	var raw elementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Tag == "" {
		return errors.New("element is missing a tag")
	}
	children := make([]Node, 0, len(raw.Children))
	for _, c := range raw.Children {
		n, err := unmarshalNode(c)
		if err != nil {
			return fmt.Errorf("%s: %w", raw.Tag, err)
		}
		children = append(children, n)
	}
	attrs := raw.Attributes
	if attrs == nil {
		attrs = Attributes{}
	}
	*el = Element{Tag: raw.Tag, Attributes: attrs, Children: children}
	return nil
}

// MarshalNodes encodes a node sequence as a JSON array. Nil elements are
// skipped, as in Stringify.
func MarshalNodes(nodes []Node) ([]byte, error) {
	items := make([]json.RawMessage, 0, len(nodes))
	for _, n := range nodes {
		data, err := marshalNode(n)
		if err != nil {
			return nil, err
		}
		if data != nil {
			items = append(items, data)
		}
	}
	return json.Marshal(items)
}

// UnmarshalNodes decodes a JSON array produced by MarshalNodes.
func UnmarshalNodes(data []byte) ([]Node, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse nodes: %w", err)
	}
	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		n, err := unmarshalNode(item)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// marshalNode returns nil data for a nil element.
func marshalNode(n Node) ([]byte, error) {
	switch n := n.(type) {
	case Text:
		return json.Marshal(string(n))
	case *Element:
		if n == nil {
			return nil, nil
		}
		return n.MarshalJSON()
	default:
		return nil, fmt.Errorf("unsupported node type %T", n)
	}
}

func unmarshalNode(data json.RawMessage) (Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty node")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	case '{':
		el := &Element{}
		if err := el.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return el, nil
	default:
		return nil, fmt.Errorf("node must be a string or an object, got %s", string(data))
	}
}
