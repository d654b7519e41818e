package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is a single lexical token of a CSS value.
type Token struct {
	Type css.TokenType
	Data string
}

// IsWhitespace reports whether token is a whitespace run.
func (t Token) IsWhitespace() bool {
	return t.Type == css.WhitespaceToken
}

// FunctionName returns lowercased function name for function tokens ("rgb"
// for "rgb("), empty string otherwise. Unquoted url(...) is lexed as a single
// URL token and reported as "url".
func (t Token) FunctionName() string {
	switch t.Type {
	case css.FunctionToken:
		return strings.ToLower(strings.TrimSuffix(t.Data, "("))
	case css.URLToken:
		return "url"
	}
	return ""
}

// IsNumber reports whether token is a plain number.
func (t Token) IsNumber() bool {
	return t.Type == css.NumberToken
}

// IsPercentage reports whether token is a percentage.
func (t Token) IsPercentage() bool {
	return t.Type == css.PercentageToken
}

// IsDimension reports whether token is a number with a unit.
func (t Token) IsDimension() bool {
	return t.Type == css.DimensionToken
}

// IsIdent reports whether token is an identifier (including custom property names).
func (t Token) IsIdent() bool {
	return t.Type == css.IdentToken || t.Type == css.CustomPropertyNameToken
}

// IsString reports whether token is a quoted string.
func (t Token) IsString() bool {
	return t.Type == css.StringToken
}

// IsHash reports whether token is a hash (#abc).
func (t Token) IsHash() bool {
	return t.Type == css.HashToken
}

// Unit returns lowercased unit of a dimension token.
func (t Token) Unit() string {
	if t.Type != css.DimensionToken {
		return ""
	}
	_, unit := parseDimension(t.Data)
	return unit
}

// Tokenize splits CSS value into tokens. Comments are dropped, whitespace
// runs are kept as single tokens.
func Tokenize(value string) []Token {
	l := css.NewLexer(parse.NewInputString(value))
	var tokens []Token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return tokens
		case css.CommentToken:
			continue
		}
		tokens = append(tokens, Token{Type: tt, Data: string(data)})
	}
}

// opens reports whether token starts a nested group.
func opens(t Token) bool {
	return t.Type == css.FunctionToken || t.Type == css.LeftParenthesisToken || t.Type == css.LeftBracketToken
}

// closes reports whether token ends a nested group.
func closes(t Token) bool {
	return t.Type == css.RightParenthesisToken || t.Type == css.RightBracketToken
}

// SplitTopLevel splits value on commas (sep == ',') or whitespace (sep == ' ')
// which are not nested inside functions or parentheses. Segments are trimmed,
// empty segments are dropped.
func SplitTopLevel(value string, sep rune) []string {
	var (
		segments []string
		current  strings.Builder
		depth    int
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			segments = append(segments, s)
		}
		current.Reset()
	}
	for _, t := range Tokenize(value) {
		switch {
		case opens(t):
			depth++
		case closes(t):
			if depth > 0 {
				depth--
			}
		case depth == 0 && sep == ',' && t.Type == css.CommaToken:
			flush()
			continue
		case depth == 0 && sep == ' ' && t.Type == css.WhitespaceToken:
			flush()
			continue
		}
		if t.Type == css.WhitespaceToken {
			current.WriteByte(' ')
			continue
		}
		current.WriteString(t.Data)
	}
	flush()
	return segments
}

// VarReferences returns names of custom properties referenced through var()
// anywhere in value, including fallbacks, in order of appearance.
func VarReferences(value string) []string {
	if !strings.Contains(value, "var(") {
		return nil
	}
	var (
		names     []string
		expectVar bool
	)
	for _, t := range Tokenize(value) {
		if t.FunctionName() == "var" {
			expectVar = true
			continue
		}
		if expectVar {
			if t.Type == css.WhitespaceToken {
				continue
			}
			if t.IsIdent() && strings.HasPrefix(t.Data, "--") {
				names = append(names, t.Data)
			}
			expectVar = false
		}
	}
	return names
}
