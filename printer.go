package scheme

import (
	"strconv"
	"strings"
)

// Render returns the canonical text of a fully evaluated value. A quote
// marker left in the tree is an InternalError.
func Render(n *Node) (string, error) {
	var sb strings.Builder

	err := n.appendToBuilder(&sb)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// RenderDatum renders an unevaluated tree, spelling quote markers as
// (quote datum).
func RenderDatum(n *Node) (string, error) {
	return Render(literal(n))
}

func (n *Node) String() string {
	var sb strings.Builder

	err := n.appendToBuilder(&sb)
	if err != nil {
		return "!!(" + err.Error() + ")!!"
	}

	return sb.String()
}

func (n *Node) appendToBuilder(sb *strings.Builder) (err error) {
	switch n.Kind() {
	case KindEmpty:
		sb.WriteString("()")
		return
	case KindNumber:
		sb.WriteString(strconv.FormatInt(n.num, 10))
		return
	case KindSymbol:
		sb.WriteString(n.name)
		return
	case KindBoolean:
		if n.b {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
		return
	case KindPair:
		sb.WriteRune('(')
		err = n.appendPairBody(sb)
		if err != nil {
			return
		}
		sb.WriteRune(')')
		return
	case KindQuote:
		return &InternalError{Msg: "quote marker reached the printer"}
	}

	return &InternalError{Msg: "cannot print node kind " + n.Kind().String()}
}

// appendPairBody writes the elements of the chain at n separated by spaces,
// with " . tail" for an improper list. Only nested elements recurse.
func (n *Node) appendPairBody(sb *strings.Builder) (err error) {
	cur := n
	for i := 0; cur.IsPair(); i++ {
		if i > 0 {
			sb.WriteRune(' ')
		}
		err = cur.First().appendToBuilder(sb)
		if err != nil {
			return
		}
		cur = cur.Second()
	}

	if !cur.IsEmpty() {
		sb.WriteString(" . ")
		err = cur.appendToBuilder(sb)
	}
	return
}
