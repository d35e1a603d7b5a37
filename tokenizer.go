package scheme

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type TokenKind int

const (
	TokenInteger TokenKind = iota
	TokenSymbol
	TokenBoolean
	TokenQuote
	TokenDot
	TokenOpen
	TokenClose
)

type Token struct {
	Kind TokenKind
	Int  int64
	Text string
	Bool bool
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInteger:
		return strconv.FormatInt(t.Int, 10)
	case TokenSymbol:
		return t.Text
	case TokenBoolean:
		if t.Bool {
			return "#t"
		}
		return "#f"
	case TokenQuote:
		return "'"
	case TokenDot:
		return "."
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	}
	return "<unknown token>"
}

// Tokenizer turns a rune stream into tokens with one token of lookahead.
// The first token is read by NewTokenizer.
type Tokenizer struct {
	s   io.RuneScanner
	cur Token
	has bool
	end bool
}

func NewTokenizer(s io.RuneScanner) (*Tokenizer, error) {
	t := &Tokenizer{s: s}
	if err := t.Next(); err != nil {
		return nil, err
	}
	return t, nil
}

// IsEnd reports whether the stream held no further token on the last Next.
func (t *Tokenizer) IsEnd() bool {
	return t.end
}

// Current returns the buffered token.
func (t *Tokenizer) Current() (Token, error) {
	if !t.has {
		return Token{}, &InternalError{Msg: ErrNoToken.Error()}
	}
	return t.cur, nil
}

// Next advances to the next token, or sets the end flag if none remains.
func (t *Tokenizer) Next() (err error) {
	t.has = false

	var r rune
	for {
		r, _, err = t.s.ReadRune()
		if err == io.EOF {
			t.end = true
			return nil
		}
		if err != nil {
			return &SyntaxError{Msg: "read", Err: err}
		}

		if isWhitespace(r) {
			continue
		}

		switch {
		case r == '(':
			t.set(Token{Kind: TokenOpen})
			return nil
		case r == ')':
			t.set(Token{Kind: TokenClose})
			return nil
		case r == '\'':
			t.set(Token{Kind: TokenQuote})
			return nil
		case r == '.':
			t.set(Token{Kind: TokenDot})
			return nil
		case isDigit(r):
			return t.scanInteger(r)
		case isSign(r):
			var digit bool
			digit, err = t.peekDigit()
			if err != nil {
				return err
			}
			if digit {
				return t.scanInteger(r)
			}
			return t.scanSymbol(r)
		case isSymbolStart(r):
			return t.scanSymbol(r)
		}

		return syntaxErrorf("unexpected character %q", r)
	}
}

func (t *Tokenizer) set(tok Token) {
	t.cur = tok
	t.has = true
	t.end = false
}

// PeekIsDot skips whitespace and reports whether the next token is a dot.
// Nothing but whitespace is consumed and Current is left untouched.
func (t *Tokenizer) PeekIsDot() (bool, error) {
	for {
		r, _, err := t.s.ReadRune()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, &SyntaxError{Msg: "read", Err: err}
		}
		if isWhitespace(r) {
			continue
		}
		if err = t.s.UnreadRune(); err != nil {
			return false, &SyntaxError{Msg: "read", Err: err}
		}
		return r == '.', nil
	}
}

func (t *Tokenizer) peekDigit() (bool, error) {
	r, _, err := t.s.ReadRune()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, &SyntaxError{Msg: "read", Err: err}
	}
	if err = t.s.UnreadRune(); err != nil {
		return false, &SyntaxError{Msg: "read", Err: err}
	}
	return isDigit(r), nil
}

// scanWhile appends runes to sb for as long as accept holds, leaving the
// first rejected rune unread.
func (t *Tokenizer) scanWhile(sb *strings.Builder, accept func(rune) bool) error {
	for {
		r, _, err := t.s.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &SyntaxError{Msg: "read", Err: err}
		}
		if !accept(r) {
			if err = t.s.UnreadRune(); err != nil {
				return &SyntaxError{Msg: "read", Err: err}
			}
			return nil
		}
		sb.WriteRune(r)
	}
}

func (t *Tokenizer) scanInteger(first rune) error {
	var sb strings.Builder
	sb.WriteRune(first)
	if err := t.scanWhile(&sb, isDigit); err != nil {
		return err
	}

	v, err := strconv.ParseInt(sb.String(), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return &SyntaxError{Msg: fmt.Sprintf("integer literal %s out of range", sb.String()), Err: err}
	}
	if err != nil {
		return &SyntaxError{Msg: fmt.Sprintf("bad integer literal %s", sb.String()), Err: err}
	}

	t.set(Token{Kind: TokenInteger, Int: v})
	return nil
}

func (t *Tokenizer) scanSymbol(first rune) error {
	var sb strings.Builder
	sb.WriteRune(first)
	if err := t.scanWhile(&sb, isSymbolRemainder); err != nil {
		return err
	}

	text := sb.String()
	switch text {
	case "#t":
		t.set(Token{Kind: TokenBoolean, Bool: true})
	case "#f":
		t.set(Token{Kind: TokenBoolean, Bool: false})
	default:
		t.set(Token{Kind: TokenSymbol, Text: text})
	}
	return nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

func isAlpha(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= 'a' && r <= 'z' {
		return true
	}
	return false
}

func isDigit(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return false
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

func isMarker(r rune) bool {
	return r == '<' ||
		r == '=' ||
		r == '>' ||
		r == '*' ||
		r == '/' ||
		r == '#' ||
		r == '+' ||
		r == '-'
}

func isSymbolStart(r rune) bool {
	return isAlpha(r) || isMarker(r)
}

// isSymbolRemainder also admits '?' and '!', which may not start a symbol.
func isSymbolRemainder(r rune) bool {
	return isAlpha(r) || isDigit(r) || isMarker(r) || r == '?' || r == '!'
}
