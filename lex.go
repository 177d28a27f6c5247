package polyquad

import (
	"strconv"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an unsigned integer or decimal magnitude.
	tokenNum
	// tokenSign is a + or - sign.
	tokenSign
	// tokenStar is the optional * between a coefficient and x.
	tokenStar
	// tokenX is the variable marker.
	tokenX
	// tokenCaret is the ^ preceding an exponent.
	tokenCaret
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenSign:
		return "Sign"
	case tokenStar:
		return "Star"
	case tokenX:
		return "X"
	case tokenCaret:
		return "Caret"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer scans an expression line. The algebraic grammar admits no
// whitespace, so any rune outside its alphabet is an immediate LexError.
type lexer struct {
	src string
	i   int
	p   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("polyquad: double push")
	}
	l.p = tok
}

// next scans the next token from the input. Once the input is exhausted,
// every call returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	tok := lexToken{pos: l.i + 1}
	if l.i >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	c := l.src[l.i]
	switch {
	case '0' <= c && c <= '9':
		end, err := scanNumber(l.src, l.i)
		if err != nil {
			return tok, err
		}
		tok.text = l.src[l.i:end]
		tok.kind = tokenNum
		l.i = end
	case c == '+', c == '-':
		tok.text = l.src[l.i : l.i+1]
		tok.kind = tokenSign
		l.i++
	case c == '*':
		tok.text = "*"
		tok.kind = tokenStar
		l.i++
	case c == 'x':
		tok.text = "x"
		tok.kind = tokenX
		l.i++
	case c == '^':
		tok.text = "^"
		tok.kind = tokenCaret
		l.i++
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.i:])
		return tok, &LexError{Text: string(r), Col: tok.pos}
	}
	return tok, nil
}

// scanNumber scans an unsigned number at s[i:]: an integer part that is "0"
// or starts with a nonzero digit, optionally followed by "." and at least
// one fractional digit. Returns the index just past the number.
func scanNumber(s string, i int) (int, error) {
	start := i
	if i >= len(s) || !digit(s[i]) {
		return 0, &LexError{Text: tokenAt(s, i), Kind: "number", Col: i + 1}
	}
	if s[i] == '0' {
		i++
	} else {
		for i < len(s) && digit(s[i]) {
			i++
		}
	}
	if i < len(s) && digit(s[i]) {
		// Only reachable after a leading 0.
		return 0, &LexError{Text: tokenAt(s, start), Kind: "number", Col: start + 1}
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !digit(s[i]) {
			return 0, &LexError{Text: tokenAt(s, start), Kind: "number", Col: start + 1}
		}
		for i < len(s) && digit(s[i]) {
			i++
		}
	}
	return i, nil
}

func digit(c byte) bool {
	return '0' <= c && c <= '9'
}

// tokenAt extracts a short snippet for an error message: the number-shaped
// run starting at s[i], or the single rune there, or "" at end of input.
func tokenAt(s string, i int) string {
	j := i
	for j < len(s) && (digit(s[j]) || s[j] == '.') {
		j++
	}
	if j == i && j < len(s) {
		_, sz := utf8.DecodeRuneInString(s[j:])
		j += sz
	}
	return s[i:j]
}

// skipSpaces advances past spaces and tabs.
func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it gave up.
	Text string
	// Kind is the type of token being scanned, "number" or the empty string
	// if a token kind hadn't been decided.
	Kind string
	// Col is the 1-based position of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
