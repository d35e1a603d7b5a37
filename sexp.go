package scheme

type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindBoolean
	KindSymbol
	KindPair
	KindQuote
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindPair:
		return "pair"
	case KindQuote:
		return "quote"
	}
	return "unknown"
}

// Node is a single value of the object model. Nodes are shared by reference:
// quote returns sub-trees of the parse and cons links its arguments without
// copying, so a node must never be modified once it has been handed out.
type Node struct {
	kind Kind
	num  int64
	b    bool
	name string

	// first/second are the pair slots; a Quote keeps its child in first.
	first  *Node
	second *Node
}

// Empty is the canonical empty list.
var Empty = &Node{kind: KindEmpty}

var (
	nodeTrue  = &Node{kind: KindBoolean, b: true}
	nodeFalse = &Node{kind: KindBoolean, b: false}
)

func (n *Node) Kind() Kind {
	if n == nil {
		return KindEmpty
	}
	return n.kind
}

func (n *Node) IsEmpty() bool  { return n.Kind() == KindEmpty }
func (n *Node) IsPair() bool   { return n.Kind() == KindPair }
func (n *Node) IsNumber() bool { return n.Kind() == KindNumber }
func (n *Node) IsSymbol() bool { return n.Kind() == KindSymbol }
func (n *Node) IsQuote() bool  { return n.Kind() == KindQuote }

// IsFalse reports whether n is the boolean #f, the only false value.
func (n *Node) IsFalse() bool {
	return n.Kind() == KindBoolean && !n.b
}

// IsAtom reports whether n is a number, boolean or symbol.
func (n *Node) IsAtom() bool {
	switch n.Kind() {
	case KindNumber, KindBoolean, KindSymbol:
		return true
	}
	return false
}

// Int returns the payload of a number node.
func (n *Node) Int() int64 { return n.num }

// Bool returns the payload of a boolean node.
func (n *Node) Bool() bool { return n.b }

// Name returns the text of a symbol node.
func (n *Node) Name() string { return n.name }

// First returns the first slot of a pair, or the child of a quote.
func (n *Node) First() *Node {
	if n.first == nil {
		return Empty
	}
	return n.first
}

// Second returns the second slot of a pair.
func (n *Node) Second() *Node {
	if n.second == nil {
		return Empty
	}
	return n.second
}

// IsProperList reports whether n is Empty or a chain of pairs ending in Empty.
func (n *Node) IsProperList() bool {
	for cur := n; ; cur = cur.Second() {
		switch cur.Kind() {
		case KindEmpty:
			return true
		case KindPair:
			continue
		default:
			return false
		}
	}
}

// Len returns the number of pairs in the chain starting at n.
func (n *Node) Len() int {
	count := 0
	for cur := n; cur.IsPair(); cur = cur.Second() {
		count++
	}
	return count
}

// Slice returns the elements of the chain starting at n together with its
// tail, which is Empty for a proper list.
func (n *Node) Slice() (elems []*Node, tail *Node) {
	cur := n
	for ; cur.IsPair(); cur = cur.Second() {
		elems = append(elems, cur.First())
	}
	if cur == nil {
		cur = Empty
	}
	return elems, cur
}
