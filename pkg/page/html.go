// html.go exports shortcode pages to HTML.
package page

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// mdRenderer is a pre-configured goldmark instance with GFM table extension.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

const (
	tagAttr   = "data-sc-tag"
	attrsAttr = "data-sc-attrs"
)

// ExportHTML renders nodes as an HTML fragment. Text nodes are treated as
// markdown. Elements become <div> blocks carrying their tag and attributes so
// ImportHTML can restore them.
func ExportHTML(nodes []shortcode.Node) (string, error) {
	var sb strings.Builder
	if err := writeHTML(&sb, nodes); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeHTML(sb *strings.Builder, nodes []shortcode.Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case shortcode.Text:
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(n), &buf); err != nil {
				return err
			}
			sb.Write(buf.Bytes())
		case *shortcode.Element:
			attrs, err := n.Attributes.MarshalJSON()
			if err != nil {
				return err
			}
			sb.WriteString(`<div class="sc-`)
			sb.WriteString(html.EscapeString(n.Tag))
			sb.WriteString(`" ` + tagAttr + `="`)
			sb.WriteString(html.EscapeString(n.Tag))
			sb.WriteString(`" ` + attrsAttr + `="`)
			sb.WriteString(html.EscapeString(string(attrs)))
			sb.WriteString(`">`)
			if err := writeHTML(sb, n.Children); err != nil {
				return err
			}
			sb.WriteString("</div>\n")
		}
	}
	return nil
}

// ExportHTMLPage renders a standalone HTML page.
func ExportHTMLPage(title string, nodes []shortcode.Node) (string, error) {
	body, err := ExportHTML(nodes)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</title>\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}
