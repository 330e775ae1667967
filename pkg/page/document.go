// document.go saves and loads pages as JSON or YAML.
package page

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Document is a saved page.
type Document struct {
	Title      string       `json:"title" yaml:"title"`
	Components []*Component `json:"components" yaml:"components"`
}

// FromShortcode parses input with the registry's tags as the allow-list and
// builds a document from the result.
func FromShortcode(title, input string, reg *Registry) (*Document, error) {
	nodes := shortcode.Parse(input, reg.AcceptedTags()...)
	components, err := Build(nodes, reg)
	if err != nil {
		return nil, err
	}
	return &Document{Title: title, Components: components}, nil
}

// Nodes returns the document content as shortcode nodes.
func (d *Document) Nodes() []shortcode.Node {
	return Nodes(d.Components)
}

// Shortcode renders the document content as shortcode text.
func (d *Document) Shortcode() string {
	return shortcode.Stringify(d.Nodes())
}

// Format identifies a document file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q (use .json, .yml or .yaml)", filepath.Ext(path))
	}
}

// Encode serializes the document.
func (d *Document) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// Decode parses a serialized document.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	return &doc, nil
}

// Save writes the document to path, encoded by its extension.
func (d *Document) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := d.Encode(format)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Load reads a document from path, decoded by its extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Decode(data, format)
}
