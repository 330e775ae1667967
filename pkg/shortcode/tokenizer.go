// tokenizer.go implements tokenization for [tag]...[/tag] shortcode syntax.
package shortcode

import (
	"regexp"
	"strings"
)

const namePattern = `[A-Za-z_-][A-Za-z0-9_-]*`

// Patterns are matched against the remaining input, so each is anchored.
var (
	// Matches [/tag] with optional whitespace before ']'
	closeTagPattern = regexp.MustCompile(`^\[/(` + namePattern + `)\s*\]`)
	// Matches [tag and the whitespace after it; the name must follow '[' directly
	openTagPrefixPattern = regexp.MustCompile(`^\[(` + namePattern + `)\s*`)
	// Matches name, name=value, name="value" or name='value' plus trailing whitespace
	attributePattern = regexp.MustCompile(`^(` + namePattern + `)(?:\s*=\s*("[^"]*"|'[^']*'|[0-9]+|` + namePattern + `))?\s*`)
	// Matches the end of a self-closing tag
	selfCloseBracePattern = regexp.MustCompile(`^\s*/\]`)
	// Matches the end of an open tag
	closeBracePattern = regexp.MustCompile(`^\s*\]`)

	tagNamePattern = regexp.MustCompile(`^` + namePattern + `$`)
)

// ValidTagName reports whether name can be written as a shortcode tag.
func ValidTagName(name string) bool {
	return tagNamePattern.MatchString(name)
}

// Tokenize scans input for shortcode syntax and returns a token stream.
// Recognized forms:
//   - [tag] or [tag attrs] - open tag
//   - [tag/] or [tag attrs /] - self-closing open tag
//   - [/tag] - close tag
//
// Everything else, including tags whose body cannot be parsed, is returned as
// TokenText. Concatenating the Raw fields of the result reproduces input.
func Tokenize(input string) []Token {
	return newTokenizer(input).run().tokens
}

type tokenizer struct {
	input     string
	pos       int
	tokens    []Token
	malformed []Token // abandoned tag attempts, kept for diagnostics
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{input: input}
}

func (t *tokenizer) run() *tokenizer {
	for t.pos < len(t.input) {
		if t.input[t.pos] != '[' {
			end := strings.IndexByte(t.input[t.pos:], '[')
			if end < 0 {
				end = len(t.input)
			} else {
				end += t.pos
			}
			t.text(t.pos, end)
			continue
		}

		if t.closeTag() || t.openTag() {
			continue
		}

		// Lone '[' that starts no tag
		t.text(t.pos, t.pos+1)
	}
	return t
}

// text emits input[start:end] as text, merging with a preceding text token.
func (t *tokenizer) text(start, end int) {
	if n := len(t.tokens); n > 0 && t.tokens[n-1].Type == TokenText {
		t.tokens[n-1].Raw += t.input[start:end]
	} else {
		t.tokens = append(t.tokens, Token{
			Type:     TokenText,
			Raw:      t.input[start:end],
			Position: start,
		})
	}
	t.pos = end
}

func (t *tokenizer) closeTag() bool {
	loc := closeTagPattern.FindStringSubmatchIndex(t.input[t.pos:])
	if loc == nil {
		return false
	}
	start := t.pos
	t.tokens = append(t.tokens, Token{
		Type:     TokenCloseTag,
		Raw:      t.input[start : start+loc[1]],
		Tag:      t.input[start+loc[2] : start+loc[3]],
		Position: start,
	})
	t.pos = start + loc[1]
	return true
}

func (t *tokenizer) openTag() bool {
	loc := openTagPrefixPattern.FindStringSubmatchIndex(t.input[t.pos:])
	if loc == nil {
		return false
	}
	start := t.pos
	tag := t.input[start+loc[2] : start+loc[3]]
	pos := start + loc[1]

	attrs := Attributes{}
	for pos < len(t.input) {
		m := attributePattern.FindStringSubmatchIndex(t.input[pos:])
		if m == nil {
			break
		}
		name := t.input[pos+m[2] : pos+m[3]]
		value := ""
		if m[4] >= 0 {
			value = unquote(t.input[pos+m[4] : pos+m[5]])
		}
		attrs.Set(name, value)
		pos += m[1]
	}

	selfClosing := false
	if m := selfCloseBracePattern.FindStringIndex(t.input[pos:]); m != nil {
		selfClosing = true
		pos += m[1]
	} else if m := closeBracePattern.FindStringIndex(t.input[pos:]); m != nil {
		pos += m[1]
	} else {
		// Malformed tag body: what was scanned so far is plain text and
		// scanning resumes at the current position.
		t.malformed = append(t.malformed, Token{
			Type:     TokenText,
			Raw:      t.input[start:pos],
			Tag:      tag,
			Position: start,
		})
		t.text(start, pos)
		return true
	}

	t.tokens = append(t.tokens, Token{
		Type:        TokenOpenTag,
		Raw:         t.input[start:pos],
		Tag:         tag,
		SelfClosing: selfClosing,
		Attributes:  attrs,
		Position:    start,
	})
	t.pos = pos
	return true
}

// unquote strips matching single or double quotes from an attribute value.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
