// parser.go builds Node trees from the token stream.
package shortcode

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// WarningKind classifies markup that was recovered as plain text.
type WarningKind string

const (
	WarningRejectedTag WarningKind = "rejected-tag" // tag not in the accepted list
	WarningOrphanClose WarningKind = "orphan-close" // [/tag] with no open frame
	WarningUnclosedTag WarningKind = "unclosed-tag" // [tag] never closed
	WarningMalformed   WarningKind = "malformed-tag"
)

// Warning describes input that did not parse as markup.
// Warnings never change the parsed nodes.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Tag      string      `json:"tag"`
	Position int         `json:"position"` // byte offset in the input
	Message  string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%d: %s", w.Position, w.Message)
}

// Options configures parsing.
type Options struct {
	// AcceptedTags restricts which tags become elements. Nil accepts all;
	// a non-nil empty list accepts none.
	AcceptedTags []string
	// Logger receives a WARN record for every warning. Nil disables logging.
	Logger *slog.Logger
}

// Result contains the parsed nodes and any recovery warnings.
type Result struct {
	Nodes    []Node
	Warnings []Warning
}

// Parse parses shortcode input into a node sequence. When acceptedTags is
// given, tags not listed are kept as literal text.
func Parse(input string, acceptedTags ...string) []Node {
	return ParseWithOptions(input, Options{AcceptedTags: acceptedTags}).Nodes
}

// ParseWithOptions parses input and reports how malformed markup was recovered.
func ParseWithOptions(input string, opts Options) *Result {
	tz := newTokenizer(input).run()

	p := &parser{
		result: &Result{Nodes: []Node{}},
		logger: opts.Logger,
	}
	if opts.AcceptedTags != nil {
		p.accepted = make(map[string]bool, len(opts.AcceptedTags))
		for _, tag := range opts.AcceptedTags {
			p.accepted[tag] = true
		}
	}

	for _, tok := range tz.malformed {
		p.warn(WarningMalformed, tok.Tag, tok.Position, "malformed tag: %s", strings.TrimSpace(tok.Raw))
	}

	for _, tok := range tz.tokens {
		switch tok.Type {
		case TokenText:
			p.appendText(strings.TrimSpace(tok.Raw))

		case TokenOpenTag:
			if !p.accepts(tok.Tag) {
				p.warn(WarningRejectedTag, tok.Tag, tok.Position, "tag not accepted: %s", tok.Tag)
				p.appendText(tok.Raw)
				continue
			}
			el := &Element{Tag: tok.Tag, Attributes: tok.Attributes, Children: []Node{}}
			if tok.SelfClosing {
				p.appendNode(el)
				continue
			}
			p.stack = append(p.stack, &stackFrame{node: el, raw: tok.Raw, position: tok.Position})

		case TokenCloseTag:
			p.closeTag(tok)
		}
	}

	p.flush()
	sort.SliceStable(p.result.Warnings, func(i, j int) bool {
		return p.result.Warnings[i].Position < p.result.Warnings[j].Position
	})
	return p.result
}

// stackFrame tracks an open element waiting for its close tag.
type stackFrame struct {
	node     *Element
	raw      string
	position int
}

type parser struct {
	result   *Result
	stack    []*stackFrame
	accepted map[string]bool
	logger   *slog.Logger
}

func (p *parser) accepts(tag string) bool {
	return p.accepted == nil || p.accepted[tag]
}

// target returns the sequence new nodes are appended to.
func (p *parser) target() *[]Node {
	if len(p.stack) > 0 {
		return &p.stack[len(p.stack)-1].node.Children
	}
	return &p.result.Nodes
}

func (p *parser) appendText(s string) {
	t := p.target()
	*t = appendText(*t, s)
}

func (p *parser) appendNode(n Node) {
	t := p.target()
	*t = appendNodes(*t, n)
}

// closeTag closes the most recent open frame with the same tag. Frames opened
// after it are unclosed: their open tags become text at the front of the
// closed element and their content moves into it.
func (p *parser) closeTag(tok Token) {
	idx := -1
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].node.Tag == tok.Tag {
			idx = i
			break
		}
	}
	if idx < 0 {
		p.warn(WarningOrphanClose, tok.Tag, tok.Position, "orphan close tag: %s", tok.Raw)
		p.appendText(tok.Raw)
		return
	}

	matched := p.stack[idx]
	unclosed := p.stack[idx+1:]
	p.stack = p.stack[:idx]

	if len(unclosed) > 0 {
		var raw strings.Builder
		var moved []Node
		for _, f := range unclosed {
			p.warn(WarningUnclosedTag, f.node.Tag, f.position, "unclosed tag: %s", f.raw)
			raw.WriteString(f.raw)
			moved = append(moved, f.node.Children...)
		}
		children := appendNodes([]Node{Text(raw.String())}, matched.node.Children...)
		matched.node.Children = appendNodes(children, moved...)
	}

	p.appendNode(matched.node)
}

// flush emits every frame still open at end of input as text, in the order
// the frames were opened, splicing their content into the top level.
func (p *parser) flush() {
	frames := p.stack
	p.stack = nil
	for _, f := range frames {
		p.warn(WarningUnclosedTag, f.node.Tag, f.position, "unclosed tag: %s", f.raw)
		p.result.Nodes = appendText(p.result.Nodes, f.raw)
		p.result.Nodes = appendNodes(p.result.Nodes, f.node.Children...)
	}
}

func (p *parser) warn(kind WarningKind, tag string, pos int, format string, args ...interface{}) {
	w := Warning{
		Kind:     kind,
		Tag:      tag,
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	}
	p.result.Warnings = append(p.result.Warnings, w)
	if p.logger != nil {
		p.logger.Warn(w.Message, "kind", string(kind), "tag", tag, "position", pos)
	}
}
