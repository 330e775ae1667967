package page

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Placeholders survive markdown conversion because they contain no
// formatting characters.
const (
	openPlaceholderPrefix  = "SCOPEN"
	closePlaceholderPrefix = "SCCLOSE"
	placeholderSuffix      = "END"
)

var (
	// Matches any <div ...> opening or </div> closing tag
	divPattern = regexp.MustCompile(`(?i)<div\b[^>]*>|</div\s*>`)
	// Matches data-sc-tag="NAME"
	divTagPattern = regexp.MustCompile(tagAttr + `="([^"]*)"`)
	// Matches data-sc-attrs="JSON"
	divAttrsPattern = regexp.MustCompile(attrsAttr + `="([^"]*)"`)
)

// ImportHTML converts HTML back into shortcode text. Blocks written by
// ExportHTML become elements again; all other HTML is converted to markdown.
func ImportHTML(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	type openDiv struct {
		tag   string
		plain bool // not written by ExportHTML
	}
	var (
		tags     []string // bracket text per placeholder id
		stack    []openDiv
		attrsErr error
	)
	processed := divPattern.ReplaceAllStringFunc(input, func(match string) string {
		if strings.HasPrefix(match, "</") {
			if len(stack) == 0 {
				return match
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.plain {
				return match
			}
			tags = append(tags, "[/"+top.tag+"]")
			return "<p>" + placeholder(closePlaceholderPrefix, len(tags)-1) + "</p>"
		}

		m := divTagPattern.FindStringSubmatch(match)
		if m == nil {
			stack = append(stack, openDiv{plain: true})
			return match
		}
		el := &shortcode.Element{Tag: html.UnescapeString(m[1]), Children: []shortcode.Node{shortcode.Text("")}}
		if a := divAttrsPattern.FindStringSubmatch(match); a != nil {
			if err := el.Attributes.UnmarshalJSON([]byte(html.UnescapeString(a[1]))); err != nil && attrsErr == nil {
				attrsErr = fmt.Errorf("invalid %s on [%s]: %w", attrsAttr, el.Tag, err)
			}
		}
		tags = append(tags, shortcode.OpenTag(el))
		stack = append(stack, openDiv{tag: el.Tag})
		return "<p>" + placeholder(openPlaceholderPrefix, len(tags)-1) + "</p>"
	})

	if attrsErr != nil {
		return "", attrsErr
	}

	markdown, err := htmltomarkdown.ConvertString(processed)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}

	for id, tag := range tags {
		markdown = strings.Replace(markdown, placeholder(openPlaceholderPrefix, id), tag, 1)
		markdown = strings.Replace(markdown, placeholder(closePlaceholderPrefix, id), tag, 1)
	}
	return strings.TrimSpace(markdown), nil
}

func placeholder(prefix string, id int) string {
	return fmt.Sprintf("%s%d%s", prefix, id, placeholderSuffix)
}
