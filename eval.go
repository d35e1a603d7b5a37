package scheme

// form identifies a built-in operation.
type form int

const (
	formAdd form = iota
	formSub
	formMul
	formDiv
	formMax
	formMin
	formGE
	formGT
	formLE
	formLT
	formEQ
	formIsNumber
	formIsBoolean
	formIsPair
	formIsNull
	formIsList
	formAbs
	formNot
	formAnd
	formOr
	formQuote
	formCons
	formCar
	formCdr
	formList
	formListRef
	formListTail
)

var forms = map[string]form{
	"+":         formAdd,
	"-":         formSub,
	"*":         formMul,
	"/":         formDiv,
	"max":       formMax,
	"min":       formMin,
	">=":        formGE,
	">":         formGT,
	"<=":        formLE,
	"<":         formLT,
	"=":         formEQ,
	"number?":   formIsNumber,
	"boolean?":  formIsBoolean,
	"pair?":     formIsPair,
	"null?":     formIsNull,
	"list?":     formIsList,
	"abs":       formAbs,
	"not":       formNot,
	"and":       formAnd,
	"or":        formOr,
	"quote":     formQuote,
	"cons":      formCons,
	"car":       formCar,
	"cdr":       formCdr,
	"list":      formList,
	"list-ref":  formListRef,
	"list-tail": formListTail,
}

// IsBuiltin reports whether name selects a built-in form.
func IsBuiltin(name string) bool {
	_, ok := forms[name]
	return ok
}

// Evaluator reduces parsed trees. It holds no state between calls other than
// the current nesting depth, so a fresh Evaluator is used per evaluation.
type Evaluator struct {
	MaxDepth int
	depth    int
}

func NewEvaluator(maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxEvalDepth
	}
	return &Evaluator{MaxDepth: maxDepth}
}

// Reduce evaluates n. Atoms evaluate to themselves and a quote yields its
// child unevaluated; anything else must be a call form.
func (e *Evaluator) Reduce(n *Node) (*Node, error) {
	switch n.Kind() {
	case KindNumber, KindBoolean, KindSymbol:
		return n, nil
	case KindQuote:
		return literal(n.First()), nil
	case KindPair:
		return e.Apply(n)
	case KindEmpty:
		return nil, runtimeErrorf(ReasonNotCallable, "", "cannot evaluate the empty list")
	}
	return nil, &InternalError{Msg: "reduce: unknown node kind " + n.Kind().String()}
}

// Apply evaluates the call form n, whose first element names a built-in.
func (e *Evaluator) Apply(n *Node) (*Node, error) {
	if !n.IsPair() {
		return nil, runtimeErrorf(ReasonNotCallable, "", "cannot call %s", n.Kind())
	}

	head := n.First()
	if !head.IsSymbol() {
		return nil, runtimeErrorf(ReasonNotCallable, "", "cannot call %s %s", head.Kind(), head.String())
	}

	f, ok := forms[head.Name()]
	if !ok {
		return nil, runtimeErrorf(ReasonUnbound, head.Name(), "unbound operator")
	}

	if e.MaxDepth <= 0 {
		e.MaxDepth = DefaultMaxEvalDepth
	}
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.MaxDepth {
		return nil, runtimeErrorf(ReasonDepth, head.Name(), "more than %d nested calls", e.MaxDepth)
	}

	return e.dispatch(f, head.Name(), n.Second())
}

// arguments returns the unevaluated argument nodes of a call. An improper
// tail atom counts as one more argument.
func arguments(args *Node) []*Node {
	elems, tail := args.Slice()
	if !tail.IsEmpty() {
		elems = append(elems, tail)
	}
	return elems
}

// ToIntegers reduces every argument in the chain at args and requires each
// result to be a number.
func (e *Evaluator) ToIntegers(name string, args *Node) ([]int64, error) {
	nodes := arguments(args)
	out := make([]int64, 0, len(nodes))
	for _, arg := range nodes {
		v, err := e.Reduce(arg)
		if err != nil {
			return nil, err
		}
		if !v.IsNumber() {
			return nil, runtimeErrorf(ReasonArgumentType, name, "expected number, got %s", v.Kind())
		}
		out = append(out, v.Int())
	}
	return out, nil
}

// ToValues reduces every argument in the chain at args.
func (e *Evaluator) ToValues(args *Node) ([]*Node, error) {
	nodes := arguments(args)
	out := make([]*Node, 0, len(nodes))
	for _, arg := range nodes {
		v, err := e.Reduce(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// singleArgument checks that a call has exactly one argument and returns it
// unevaluated.
func singleArgument(name string, args *Node) (*Node, error) {
	switch {
	case args.IsEmpty():
		return nil, runtimeErrorf(ReasonMissingArgument, name, "1 argument expected")
	case !args.IsPair():
		return nil, runtimeErrorf(ReasonMalformedArguments, name, "arguments must form a list")
	case !args.Second().IsEmpty():
		return nil, runtimeErrorf(ReasonArgumentCount, name, "1 argument expected, got %d", len(arguments(args)))
	}
	return args.First(), nil
}

// literal returns n for use as data. Quote markers nested inside n are
// rewritten to (quote datum) lists; sub-trees without markers are shared.
func literal(n *Node) *Node {
	if !containsQuote(n) {
		return n
	}
	switch n.Kind() {
	case KindQuote:
		return List(&Node{kind: KindSymbol, name: "quote"}, literal(n.First()))
	case KindPair:
		elems, tail := n.Slice()
		out := make([]*Node, len(elems))
		for i, elem := range elems {
			out[i] = literal(elem)
		}
		return ListWithTail(literal(tail), out...)
	}
	return n
}

func containsQuote(n *Node) bool {
	for cur := n; ; cur = cur.Second() {
		switch cur.Kind() {
		case KindQuote:
			return true
		case KindPair:
			if first := cur.First(); (first.IsPair() || first.IsQuote()) && containsQuote(first) {
				return true
			}
		default:
			return false
		}
	}
}
