package scheme

// Producer builds nodes for the object model. Pairs are only ever filled in
// here, once, before the node is returned to the caller.
type Producer interface {
	Number(v int64) *Node
	Boolean(v bool) *Node
	Symbol(s string) (n *Node, err error)
	Cons(first, second *Node) *Node
	List(elems ...*Node) *Node
	Quote(child *Node) *Node
}

type producer struct {
	// allowBooleanText permits building symbols named "#t"/"#f", which the
	// tokenizer would never produce.
	allowBooleanText bool
}

var StrictProducer = producer{allowBooleanText: false}
var LenientProducer = producer{allowBooleanText: true}

var _ Producer = StrictProducer

func (e producer) Number(v int64) *Node {
	return &Node{kind: KindNumber, num: v}
}

func (e producer) Boolean(v bool) *Node {
	if v {
		return nodeTrue
	}
	return nodeFalse
}

func (e producer) Symbol(s string) (n *Node, err error) {
	if s == "" {
		return nil, ErrInvalidSymbol
	}
	if !e.allowBooleanText && (s == "#t" || s == "#f") {
		return nil, ErrInvalidSymbol
	}
	for i, r := range s {
		if i == 0 && !isSymbolStart(r) {
			return nil, ErrInvalidSymbol
		} else if i > 0 && !isSymbolRemainder(r) {
			return nil, ErrInvalidSymbol
		}
		// "+1" and "-1" read back as numbers
		if i == 1 && isSign(rune(s[0])) && isDigit(r) {
			return nil, ErrInvalidSymbol
		}
	}

	return &Node{kind: KindSymbol, name: s}, nil
}

func (e producer) Cons(first, second *Node) *Node {
	if first == nil {
		first = Empty
	}
	if second == nil {
		second = Empty
	}
	return &Node{kind: KindPair, first: first, second: second}
}

func (e producer) List(elems ...*Node) *Node {
	return e.listWithTail(elems, Empty)
}

func (e producer) listWithTail(elems []*Node, tail *Node) *Node {
	n := tail
	for i := len(elems) - 1; i >= 0; i-- {
		n = e.Cons(elems[i], n)
	}
	return n
}

func (e producer) Quote(child *Node) *Node {
	if child == nil {
		child = Empty
	}
	return &Node{kind: KindQuote, first: child}
}

func Number(v int64) *Node { return StrictProducer.Number(v) }

func Boolean(v bool) *Node { return StrictProducer.Boolean(v) }

func Symbol(s string) (*Node, error) { return StrictProducer.Symbol(s) }

func MustSymbol(s string) (n *Node) {
	var err error
	n, err = StrictProducer.Symbol(s)
	if err != nil {
		panic(err)
	}
	return
}

func Cons(first, second *Node) *Node { return StrictProducer.Cons(first, second) }

func List(elems ...*Node) *Node { return StrictProducer.List(elems...) }

// ListWithTail builds an improper list when tail is not Empty.
func ListWithTail(tail *Node, elems ...*Node) *Node {
	return StrictProducer.listWithTail(elems, tail)
}

func Quote(child *Node) *Node { return StrictProducer.Quote(child) }
