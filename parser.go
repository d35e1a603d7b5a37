package scheme

import (
	"io"
	"strings"
)

type Parser interface {
	ParseNode(t *Tokenizer) (n *Node, err error)
	ParseList(t *Tokenizer) (n *Node, err error)
}

type parser struct {
	maxDepth int
}

var DefaultParser = parser{maxDepth: DefaultMaxReadDepth}

var _ Parser = DefaultParser

// NewParser returns a parser that refuses lists nested deeper than maxDepth.
// A maxDepth of zero or less selects DefaultMaxReadDepth.
func NewParser(maxDepth int) Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxReadDepth
	}
	return parser{maxDepth: maxDepth}
}

// Parse reads exactly one datum from text.
func Parse(text string) (n *Node, err error) {
	return ReadOne(DefaultParser, strings.NewReader(text))
}

// ReadOne tokenizes s and parses exactly one top-level datum with p.
func ReadOne(p Parser, s io.RuneScanner) (n *Node, err error) {
	var t *Tokenizer
	t, err = NewTokenizer(s)
	if err != nil {
		return nil, err
	}
	return p.ParseNode(t)
}

// ParseNode parses exactly one datum starting at the current token and fails
// if the input is empty or anything follows the datum.
func (e parser) ParseNode(t *Tokenizer) (n *Node, err error) {
	if t.IsEnd() {
		return nil, syntaxErrorf("empty input")
	}

	n, err = e.parseDatum(t, 0)
	if err != nil {
		return nil, err
	}

	if err = t.Next(); err != nil {
		return nil, err
	}
	if !t.IsEnd() {
		var tok Token
		tok, err = t.Current()
		if err != nil {
			return nil, err
		}
		return nil, syntaxErrorf("unexpected %q after datum", tok.String())
	}

	return n, nil
}

// ParseList parses the body of a list whose opening bracket is the current
// token. On success the closing bracket is the current token.
func (e parser) ParseList(t *Tokenizer) (n *Node, err error) {
	return e.parseList(t, 1)
}

// parseDatum parses the datum starting at the current token, leaving the
// datum's last token current.
func (e parser) parseDatum(t *Tokenizer, depth int) (n *Node, err error) {
	var tok Token
	tok, err = t.Current()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenInteger:
		return Number(tok.Int), nil
	case TokenBoolean:
		return Boolean(tok.Bool), nil
	case TokenSymbol:
		return &Node{kind: KindSymbol, name: tok.Text}, nil
	case TokenOpen:
		return e.parseList(t, depth+1)
	case TokenQuote:
		if depth+1 > e.maxDepth {
			return nil, syntaxErrorf("nesting deeper than %d", e.maxDepth)
		}
		if err = t.Next(); err != nil {
			return nil, err
		}
		if t.IsEnd() {
			return nil, incompleteErrorf("quote without datum")
		}
		var child *Node
		child, err = e.parseDatum(t, depth+1)
		if err != nil {
			return nil, err
		}
		return Quote(child), nil
	case TokenClose:
		return nil, syntaxErrorf("unexpected ')'")
	case TokenDot:
		return nil, syntaxErrorf("unexpected '.'")
	}

	return nil, &InternalError{Msg: "unknown token kind"}
}

// parseList collects the elements of one list iteratively; only nested lists
// recurse.
func (e parser) parseList(t *Tokenizer, depth int) (n *Node, err error) {
	if depth > e.maxDepth {
		return nil, syntaxErrorf("nesting deeper than %d", e.maxDepth)
	}

	var elems []*Node
	for {
		if err = t.Next(); err != nil {
			return nil, err
		}
		if t.IsEnd() {
			return nil, incompleteErrorf("unterminated list")
		}

		var tok Token
		tok, err = t.Current()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenClose:
			return List(elems...), nil
		case TokenDot:
			return nil, syntaxErrorf("'.' must follow exactly one element")
		}

		var elem *Node
		elem, err = e.parseDatum(t, depth)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		var dot bool
		dot, err = t.PeekIsDot()
		if err != nil {
			return nil, err
		}
		if dot {
			var tail *Node
			tail, err = e.parseDottedTail(t, depth)
			if err != nil {
				return nil, err
			}
			return ListWithTail(tail, elems...), nil
		}
	}
}

// parseDottedTail consumes ". datum )" and returns the datum.
func (e parser) parseDottedTail(t *Tokenizer, depth int) (n *Node, err error) {
	// the dot itself
	if err = t.Next(); err != nil {
		return nil, err
	}

	if err = t.Next(); err != nil {
		return nil, err
	}
	if t.IsEnd() {
		return nil, incompleteErrorf("unterminated list after '.'")
	}

	var tok Token
	tok, err = t.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenClose || tok.Kind == TokenDot {
		return nil, syntaxErrorf("'.' must be followed by exactly one element")
	}

	n, err = e.parseDatum(t, depth)
	if err != nil {
		return nil, err
	}

	if err = t.Next(); err != nil {
		return nil, err
	}
	if t.IsEnd() {
		return nil, incompleteErrorf("unterminated list")
	}
	tok, err = t.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenClose {
		return nil, syntaxErrorf("'.' must be followed by exactly one element")
	}

	return n, nil
}
