package shortcode

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes attributes as a mapping in insertion order.
func (a Attributes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, attr := range a {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping of scalar values, keeping key order.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", value.Line)
	}
	attrs := Attributes{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		attrs.Set(k.Value, v.Value)
	}
	*a = attrs
	return nil
}
