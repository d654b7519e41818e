package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ThemeOptions are modifiers written after @theme, e.g. "@theme inline default { ... }".
type ThemeOptions struct {
	Inline    bool
	Reference bool
	Default   bool
	Static    bool
}

// ThemeDecl is a single design token declared inside @theme block.
type ThemeDecl struct {
	Key     string // custom property name including leading "--"
	Value   string // raw value, trimmed
	Options ThemeOptions
}

// ThemeSheet holds everything extracted from @theme blocks of a stylesheet.
type ThemeSheet struct {
	Decls     []ThemeDecl // in source order, later declarations win
	Keyframes []string    // names of @keyframes declared inside @theme blocks
	Warnings  []string    // warnings for ignored content
}

// Parser extracts theme definitions from CSS stylesheets.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// tokenStream is a lexer with one token lookahead, comments dropped.
type tokenStream struct {
	l      *css.Lexer
	peeked *Token
}

func (s *tokenStream) next() (Token, bool) {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t, true
	}
	for {
		tt, data := s.l.Next()
		switch tt {
		case css.ErrorToken:
			return Token{}, false
		case css.CommentToken:
			continue
		}
		return Token{Type: tt, Data: string(data)}, true
	}
}

// ParseTheme parses CSS text and returns content of all @theme blocks.
// Everything outside of @theme is ignored. The optional source parameter
// identifies what's being parsed (for debug logging).
func (p *Parser) ParseTheme(data []byte, source ...string) *ThemeSheet {
	sheet := &ThemeSheet{
		Decls:    make([]ThemeDecl, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing theme CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	ts := &tokenStream{l: css.NewLexer(parse.NewInputBytes(data))}
	for {
		t, ok := ts.next()
		if !ok {
			if err := ts.l.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet
		}

		switch t.Type {
		case css.AtKeywordToken:
			if !strings.EqualFold(t.Data, "@theme") {
				p.log.Debug("Skipping @-rule", zap.String("rule", t.Data))
				skipStatement(ts)
				continue
			}
			opts, ok := parseThemeOptions(ts, sheet)
			if !ok {
				return sheet
			}
			before := len(sheet.Decls)
			p.parseThemeBlock(ts, opts, sheet)
			p.log.Debug("Parsed @theme block", zap.Int("tokens", len(sheet.Decls)-before))

		case css.WhitespaceToken, css.CDOToken, css.CDCToken:

		default:
			// qualified rule - selector followed by block
			ts.peeked = &t
			skipStatement(ts)
		}
	}
}

// parseThemeOptions reads @theme prelude up to the opening brace.
func parseThemeOptions(ts *tokenStream, sheet *ThemeSheet) (ThemeOptions, bool) {
	var opts ThemeOptions
	for {
		t, ok := ts.next()
		if !ok {
			return opts, false
		}
		switch t.Type {
		case css.LeftBraceToken:
			return opts, true
		case css.SemicolonToken:
			sheet.Warnings = append(sheet.Warnings, "@theme without block")
			return opts, false
		case css.IdentToken:
			switch word := strings.ToLower(t.Data); word {
			case "inline":
				opts.Inline = true
			case "reference":
				opts.Reference = true
			case "default":
				opts.Default = true
			case "static":
				opts.Static = true
			default:
				sheet.Warnings = append(sheet.Warnings, "unsupported @theme option: "+word)
			}
		}
	}
}

// parseThemeBlock collects declarations until the end of current @theme block.
func (p *Parser) parseThemeBlock(ts *tokenStream, opts ThemeOptions, sheet *ThemeSheet) {
	var (
		key     string
		value   strings.Builder
		inValue bool
		depth   int // nesting inside a value
	)

	finish := func() {
		if key != "" {
			if v := strings.TrimSpace(value.String()); v != "" {
				sheet.Decls = append(sheet.Decls, ThemeDecl{Key: key, Value: v, Options: opts})
			} else {
				sheet.Warnings = append(sheet.Warnings, "empty theme value: "+key)
			}
		}
		key, inValue, depth = "", false, 0
		value.Reset()
	}

	for {
		t, ok := ts.next()
		if !ok {
			finish()
			return
		}

		if inValue {
			switch {
			case depth == 0 && t.Type == css.SemicolonToken:
				finish()
				continue
			case depth == 0 && t.Type == css.RightBraceToken:
				finish()
				return
			case opens(t) || t.Type == css.LeftBraceToken:
				depth++
			case closes(t) || t.Type == css.RightBraceToken:
				depth--
			}
			if t.Type == css.WhitespaceToken {
				value.WriteByte(' ')
			} else {
				value.WriteString(t.Data)
			}
			continue
		}

		switch {
		case t.Type == css.RightBraceToken:
			finish()
			return
		case t.Type == css.AtKeywordToken:
			if strings.EqualFold(t.Data, "@keyframes") {
				if name := nextIdent(ts); name != "" {
					sheet.Keyframes = append(sheet.Keyframes, name)
				}
			} else {
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule inside @theme: "+t.Data)
			}
			skipStatement(ts)
		case t.IsIdent() && strings.HasPrefix(t.Data, "--"):
			key = t.Data
		case t.Type == css.DelimToken && t.Data == "*" && strings.HasSuffix(key, "-"):
			// lexer stops identifiers before "*", namespace directives are "--color-*"
			key += t.Data
		case t.Type == css.ColonToken && key != "":
			inValue = true
		case t.Type == css.SemicolonToken:
			finish()
		case t.Type == css.WhitespaceToken:
		default:
			sheet.Warnings = append(sheet.Warnings, "unexpected token inside @theme: "+t.Data)
		}
	}
}

// nextIdent returns the next identifier skipping whitespace.
func nextIdent(ts *tokenStream) string {
	for {
		t, ok := ts.next()
		if !ok {
			return ""
		}
		switch {
		case t.Type == css.WhitespaceToken:
			continue
		case t.Type == css.IdentToken, t.Type == css.StringToken:
			return strings.Trim(t.Data, `"'`)
		}
		ts.peeked = &t
		return ""
	}
}

// skipStatement skips tokens up to the end of the current statement: either
// a semicolon outside of blocks or the end of the first block.
func skipStatement(ts *tokenStream) {
	depth := 0
	for {
		t, ok := ts.next()
		if !ok {
			return
		}
		switch t.Type {
		case css.SemicolonToken:
			if depth == 0 {
				return
			}
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	// Find where number ends
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}
