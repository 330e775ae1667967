package shortcode

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// el builds an element for expectations.
func el(tag string, attrs Attributes, children ...Node) *Element {
	if attrs == nil {
		attrs = Attributes{}
	}
	if children == nil {
		children = []Node{}
	}
	return &Element{Tag: tag, Attributes: attrs, Children: children}
}

const nestedFixture = `[triangle] tlso db [box] [circle radius="1" ] [/box] [/circle] [/special-element_one] [/triangle]`

func TestParse_Fixtures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		accepted []string
		want     []Node
	}{
		{
			name:  "self-closing",
			input: "[box/]",
			want:  []Node{el("box", nil)},
		},
		{
			name:  "self-closing with space",
			input: "[box /]",
			want:  []Node{el("box", nil)},
		},
		{
			name:  "self-closing with attribute",
			input: `[circle radius="10" /]`,
			want:  []Node{el("circle", Attributes{{"radius", "10"}})},
		},
		{
			name:  "flag and bare integer",
			input: `[box radius height=9/]`,
			want:  []Node{el("box", Attributes{{"radius", ""}, {"height", "9"}})},
		},
		{
			name:  "names with dashes and underscores",
			input: `[special-element_one --attribute_one-1 -attr-2="_two-thirds" _attr-3="just anything"] this is text! [/special-element_one]`,
			want: []Node{
				el("special-element_one",
					Attributes{{"--attribute_one-1", ""}, {"-attr-2", "_two-thirds"}, {"_attr-3", "just anything"}},
					Text("this is text!")),
			},
		},
		{
			name:  "unclosed tag is text",
			input: "[box]",
			want:  []Node{Text("[box]")},
		},
		{
			name:  "space after bracket is text",
			input: "[ box /]",
			want:  []Node{Text("[ box /]")},
		},
		{
			name:  "space before bracket close is text",
			input: "[box / ]",
			want:  []Node{Text("[box / ]")},
		},
		{
			name:  "plain text",
			input: "  just words  ",
			want:  []Node{Text("just words")},
		},
		{
			name:  "blank",
			input: " \n\t ",
			want:  []Node{},
		},
		{
			name:  "empty",
			input: "",
			want:  []Node{},
		},
		{
			name:  "element between text",
			input: "before [box]inside[/box] after",
			want:  []Node{Text("before"), el("box", nil, Text("inside")), Text("after")},
		},
		{
			name:  "explicit empty close",
			input: "[box][/box]",
			want:  []Node{el("box", nil)},
		},
		{
			name:  "misnested close of ancestor",
			input: nestedFixture,
			want: []Node{
				el("triangle", nil,
					Text("tlso db"),
					el("box", nil, Text(`[circle radius="1" ]`)),
					Text("[/circle][/special-element_one]"),
				),
			},
		},
		{
			name:     "accepted tags",
			input:    nestedFixture,
			accepted: []string{"triangle", "circle"},
			want: []Node{
				el("triangle", nil,
					Text("tlso db[box]"),
					el("circle", Attributes{{"radius", "1"}}, Text("[/box]")),
					Text("[/special-element_one]"),
				),
			},
		},
		{
			name:  "orphan close",
			input: "text [/box] more",
			want:  []Node{Text("text[/box]more")},
		},
		{
			name:  "unclosed at end splices children",
			input: "[a] one [b/] two",
			want:  []Node{Text("[a]one"), el("b", nil), Text("two")},
		},
		{
			name:  "unclosed frames flush in opening order",
			input: "[a] x [b] y [c/]",
			want:  []Node{Text("[a]x[b]y"), el("c", nil)},
		},
		{
			name:  "interleaved tags",
			input: "[a][b]x[/a]y[/b]",
			want:  []Node{el("a", nil, Text("[b]x")), Text("y[/b]")},
		},
		{
			name:  "unclosed raw goes before existing children",
			input: "[a]x[b]y[/a]",
			want:  []Node{el("a", nil, Text("[b]xy"))},
		},
		{
			name:  "unclosed content keeps elements",
			input: "[a][b] [c/] [/a]",
			want:  []Node{el("a", nil, Text("[b]"), el("c", nil))},
		},
		{
			name:  "same name reopened",
			input: "[a]1[a]2[/a]3[/a]",
			want:  []Node{el("a", nil, Text("1"), el("a", nil, Text("2")), Text("3"))},
		},
		{
			name:  "close matches most recent same name",
			input: "[a][b][a]x[/b]",
			want:  []Node{Text("[a]"), el("b", nil, Text("[a]x"))},
		},
		{
			name:     "rejected tag and its close are text",
			input:    "[x]hi[/x]",
			accepted: []string{"box"},
			want:     []Node{Text("[x]hi[/x]")},
		},
		{
			name:     "rejected self-closing tag is text",
			input:    "[box][x/][/box]",
			accepted: []string{"box"},
			want:     []Node{el("box", nil, Text("[x/]"))},
		},
		{
			name:     "accepted tags are case sensitive",
			input:    "[Box/]",
			accepted: []string{"box"},
			want:     []Node{Text("[Box/]")},
		},
		{
			name:     "empty accepted list rejects every tag",
			input:    "[box/]",
			accepted: []string{},
			want:     []Node{Text("[box/]")},
		},
		{
			name:  "close tag matching is case sensitive",
			input: "[box]x[/Box]",
			want:  []Node{Text("[box]x[/Box]")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, tt.accepted...)
			assert.Equal(t, tt.want, got)
			assert.True(t, Equal(tt.want, got))
		})
	}
}

// A close tag for a rejected open tag has no frame to match, so it stays
// inside the accepted parent as ordinary text.
func TestParse_RejectedCloseStaysInsideAcceptedParent(t *testing.T) {
	nodes := Parse(nestedFixture, "triangle", "circle")
	require.Len(t, nodes, 1)

	triangle := nodes[0].(*Element)
	require.Len(t, triangle.Children, 3)
	circle, ok := triangle.Children[1].(*Element)
	require.True(t, ok)
	assert.Equal(t, []Node{Text("[/box]")}, circle.Children)
}

func TestParse_RejectedTagsAppearVerbatim(t *testing.T) {
	input := `[a][c k="v"]one[/c][b]two [c/][/b][/a]`
	nodes := Parse(input, "a", "b")

	var text string
	Walk(nodes, func(n Node, _ int) bool {
		if s, ok := n.(Text); ok {
			text += string(s)
		}
		if e, ok := n.(*Element); ok {
			assert.NotEqual(t, "c", e.Tag)
		}
		return true
	})
	assert.Contains(t, text, `[c k="v"]`)
	assert.Contains(t, text, "[/c]")
	assert.Contains(t, text, "[c/]")
}

func TestParse_NoSharedState(t *testing.T) {
	first := Parse("[box]a[/box]")
	second := Parse("[box]a[/box]")
	first[0].(*Element).Children[0] = Text("changed")
	assert.Equal(t, []Node{el("box", nil, Text("a"))}, second)
}

func TestParseWithOptions_Warnings(t *testing.T) {
	result := ParseWithOptions("[a][b]x[/a] [/c] [z/] [d", Options{AcceptedTags: []string{"a", "b"}})

	var kinds []WarningKind
	for _, w := range result.Warnings {
		kinds = append(kinds, w.Kind)
	}
	assert.Equal(t, []WarningKind{
		WarningUnclosedTag,
		WarningOrphanClose,
		WarningRejectedTag,
		WarningMalformed,
	}, kinds)

	assert.Equal(t, 3, result.Warnings[0].Position)
	assert.Equal(t, "b", result.Warnings[0].Tag)
	assert.Equal(t, "c", result.Warnings[1].Tag)
	assert.Equal(t, "z", result.Warnings[2].Tag)
	assert.Equal(t, "d", result.Warnings[3].Tag)
}

func TestParseWithOptions_WarningsDoNotChangeNodes(t *testing.T) {
	input := "[a][b]x[/a] [/c] [d"
	result := ParseWithOptions(input, Options{})
	assert.Equal(t, Parse(input), result.Nodes)
}

func TestParseWithOptions_CleanInputHasNoWarnings(t *testing.T) {
	result := ParseWithOptions(`[box a="1"]text [circle/][/box]`, Options{})
	assert.Empty(t, result.Warnings)
}

func TestParseWithOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ParseWithOptions("x [/box]", Options{Logger: logger})

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "orphan close tag")
	assert.Contains(t, buf.String(), "kind=orphan-close")
}

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: WarningOrphanClose, Tag: "box", Position: 7, Message: "orphan close tag: [/box]"}
	assert.Equal(t, "7: orphan close tag: [/box]", w.String())
}

func TestParseWithOptions_AcceptedTagsNilVersusEmpty(t *testing.T) {
	tests := []struct {
		name     string
		accepted []string
		want     []Node
	}{
		{"nil accepts every tag", nil, []Node{el("box", nil)}},
		{"empty accepts no tag", []string{}, []Node{Text("[box/]")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseWithOptions("[box/]", Options{AcceptedTags: tt.accepted})
			assert.Equal(t, tt.want, result.Nodes)
		})
	}
}
