// stringify.go renders Node trees back to shortcode syntax.
package shortcode

import "strings"

// Stringify renders nodes as shortcode text. Childless elements are written
// in self-closing form.
func Stringify(nodes []Node) string {
	var sb strings.Builder
	writeNodes(&sb, nodes)
	return sb.String()
}

func writeNodes(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(string(n))
		case *Element:
			if n != nil {
				writeElement(sb, n)
			}
		}
	}
}

func writeElement(sb *strings.Builder, el *Element) {
	sb.WriteString(OpenTag(el))
	if len(el.Children) == 0 {
		return
	}
	writeNodes(sb, el.Children)
	sb.WriteString("[/")
	sb.WriteString(el.Tag)
	sb.WriteString("]")
}

// OpenTag renders the opening tag of el: [tag attrs] when el has children,
// [tag attrs/] otherwise.
func OpenTag(el *Element) string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(el.Tag)
	for _, attr := range el.Attributes {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		if attr.Value == "" {
			continue
		}
		sb.WriteString("=")
		quote := `"`
		if strings.Contains(attr.Value, `"`) && !strings.Contains(attr.Value, "'") {
			quote = "'"
		}
		sb.WriteString(quote)
		sb.WriteString(attr.Value)
		sb.WriteString(quote)
	}
	if len(el.Children) == 0 {
		sb.WriteString("/]")
	} else {
		sb.WriteString("]")
	}
	return sb.String()
}
