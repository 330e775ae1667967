// tokens.go defines the token stream produced by the tokenizer.
package shortcode

// TokenType represents token types for shortcode syntax [tag]...[/tag]
type TokenType int

const (
	TokenText     TokenType = iota // literal text, including stray '['
	TokenOpenTag                   // [tag attrs] or [tag attrs/]
	TokenCloseTag                  // [/tag]
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenOpenTag:
		return "open"
	case TokenCloseTag:
		return "close"
	default:
		return "unknown"
	}
}

// Token represents a single lexical unit of shortcode input.
type Token struct {
	Type        TokenType
	Raw         string     // exact source text of the token
	Tag         string     // set for TokenOpenTag and TokenCloseTag
	SelfClosing bool       // set for TokenOpenTag written as [tag/]
	Attributes  Attributes // set for TokenOpenTag
	Position    int        // byte offset in original input
}
