package scheme

import "math"

func (e *Evaluator) dispatch(f form, name string, args *Node) (*Node, error) {
	switch f {
	case formAdd, formSub, formMul, formDiv, formMax, formMin:
		return e.arithmetic(f, name, args)
	case formGE, formGT, formLE, formLT, formEQ:
		return e.compare(f, name, args)
	case formIsNumber, formIsBoolean, formIsPair, formIsNull, formIsList, formNot:
		return e.predicate(f, name, args)
	case formAbs:
		return e.abs(name, args)
	case formAnd:
		return e.and(args)
	case formOr:
		return e.or(args)
	case formQuote:
		arg, err := singleArgument(name, args)
		if err != nil {
			return nil, err
		}
		return literal(arg), nil
	case formCons:
		return e.cons(name, args)
	case formCar, formCdr:
		return e.carCdr(f, name, args)
	case formList:
		return list(name, args)
	case formListRef, formListTail:
		return e.listIndex(f, name, args)
	}
	return nil, &InternalError{Msg: "dispatch: no handler for " + name}
}

func (e *Evaluator) arithmetic(f form, name string, args *Node) (*Node, error) {
	values, err := e.ToIntegers(name, args)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		switch f {
		case formAdd:
			return Number(0), nil
		case formMul:
			return Number(1), nil
		}
		return nil, runtimeErrorf(ReasonArgumentCount, name, "at least %d arguments expected, got 0", minOperands(f))
	}
	if len(values) < minOperands(f) {
		return nil, runtimeErrorf(ReasonArgumentCount, name, "at least %d arguments expected, got %d", minOperands(f), len(values))
	}

	result := values[0]
	for _, v := range values[1:] {
		result, err = fold(f, name, result, v)
		if err != nil {
			return nil, err
		}
	}
	return Number(result), nil
}

func minOperands(f form) int {
	switch f {
	case formSub, formDiv:
		return 2
	case formMax, formMin:
		return 1
	}
	return 0
}

func fold(f form, name string, a, b int64) (int64, error) {
	switch f {
	case formAdd:
		r := a + b
		if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
			return 0, runtimeErrorf(ReasonOverflow, name, "%d + %d", a, b)
		}
		return r, nil
	case formSub:
		r := a - b
		if (a >= 0 && b < 0 && r < 0) || (a < 0 && b > 0 && r >= 0) {
			return 0, runtimeErrorf(ReasonOverflow, name, "%d - %d", a, b)
		}
		return r, nil
	case formMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, runtimeErrorf(ReasonOverflow, name, "%d * %d", a, b)
		}
		return r, nil
	case formDiv:
		if b == 0 {
			return 0, runtimeErrorf(ReasonDivisionByZero, name, "%d / 0", a)
		}
		if a == math.MinInt64 && b == -1 {
			return 0, runtimeErrorf(ReasonOverflow, name, "%d / %d", a, b)
		}
		return a / b, nil
	case formMax:
		return max(a, b), nil
	case formMin:
		return min(a, b), nil
	}
	return 0, &InternalError{Msg: "fold: not an arithmetic form: " + name}
}

func (e *Evaluator) compare(f form, name string, args *Node) (*Node, error) {
	values, err := e.ToIntegers(name, args)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < len(values); i++ {
		if !holds(f, values[i], values[i+1]) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}

func holds(f form, a, b int64) bool {
	switch f {
	case formGE:
		return a >= b
	case formGT:
		return a > b
	case formLE:
		return a <= b
	case formLT:
		return a < b
	case formEQ:
		return a == b
	}
	return false
}

func (e *Evaluator) predicate(f form, name string, args *Node) (*Node, error) {
	arg, err := singleArgument(name, args)
	if err != nil {
		return nil, err
	}
	v, err := e.Reduce(arg)
	if err != nil {
		return nil, err
	}

	switch f {
	case formIsNumber:
		return Boolean(v.IsNumber()), nil
	case formIsBoolean:
		return Boolean(v.Kind() == KindBoolean), nil
	case formIsPair:
		return Boolean(v.IsPair()), nil
	case formIsNull:
		return Boolean(v.IsEmpty()), nil
	case formIsList:
		return Boolean(v.IsProperList()), nil
	case formNot:
		return Boolean(v.IsFalse()), nil
	}
	return nil, &InternalError{Msg: "predicate: not a predicate form: " + name}
}

func (e *Evaluator) abs(name string, args *Node) (*Node, error) {
	arg, err := singleArgument(name, args)
	if err != nil {
		return nil, err
	}
	v, err := e.Reduce(arg)
	if err != nil {
		return nil, err
	}
	if !v.IsNumber() {
		return nil, runtimeErrorf(ReasonArgumentType, name, "expected number, got %s", v.Kind())
	}

	x := v.Int()
	if x == math.MinInt64 {
		return nil, runtimeErrorf(ReasonOverflow, name, "abs %d", x)
	}
	if x < 0 {
		x = -x
	}
	return Number(x), nil
}

// and returns #f at the first false operand, otherwise the last value.
func (e *Evaluator) and(args *Node) (*Node, error) {
	last := Boolean(true)
	for _, arg := range arguments(args) {
		v, err := e.Reduce(arg)
		if err != nil {
			return nil, err
		}
		if v.IsFalse() {
			return v, nil
		}
		last = v
	}
	return last, nil
}

// or returns the first operand that is not #f, otherwise the last value.
func (e *Evaluator) or(args *Node) (*Node, error) {
	last := Boolean(false)
	for _, arg := range arguments(args) {
		v, err := e.Reduce(arg)
		if err != nil {
			return nil, err
		}
		if !v.IsFalse() {
			return v, nil
		}
		last = v
	}
	return last, nil
}

func (e *Evaluator) cons(name string, args *Node) (*Node, error) {
	values, err := e.ToValues(args)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 {
		return nil, runtimeErrorf(ReasonArgumentCount, name, "2 arguments expected, got %d", len(values))
	}
	return Cons(values[0], values[1]), nil
}

func (e *Evaluator) carCdr(f form, name string, args *Node) (*Node, error) {
	arg, err := singleArgument(name, args)
	if err != nil {
		return nil, err
	}
	v, err := e.Reduce(arg)
	if err != nil {
		return nil, err
	}
	if !v.IsPair() {
		return nil, runtimeErrorf(ReasonArgumentType, name, "expected pair, got %s", v.Kind())
	}

	if f == formCar {
		return v.First(), nil
	}
	return v.Second(), nil
}

// list hands back its own argument chain; the elements stay unevaluated until
// a consumer such as list-ref reduces them.
func list(name string, args *Node) (*Node, error) {
	switch args.Kind() {
	case KindEmpty:
		return Empty, nil
	case KindPair:
		return literal(args), nil
	}
	return nil, runtimeErrorf(ReasonMalformedArguments, name, "arguments must form a list")
}

func (e *Evaluator) listIndex(f form, name string, args *Node) (*Node, error) {
	values, err := e.ToValues(args)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 {
		return nil, runtimeErrorf(ReasonArgumentCount, name, "2 arguments expected, got %d", len(values))
	}

	lst, idx := values[0], values[1]
	if !lst.IsProperList() {
		return nil, runtimeErrorf(ReasonArgumentType, name, "expected proper list, got %s", lst)
	}
	if !idx.IsNumber() {
		return nil, runtimeErrorf(ReasonArgumentType, name, "expected number index, got %s", idx.Kind())
	}

	length := int64(lst.Len())
	k := idx.Int()
	if k < 0 {
		return nil, runtimeErrorf(ReasonIndex, name, "negative index %d", k)
	}

	if f == formListTail {
		if k > length {
			return nil, runtimeErrorf(ReasonIndex, name, "index %d exceeds length %d", k, length)
		}
		cur := lst
		for i := int64(0); i < k; i++ {
			cur = cur.Second()
		}
		return cur, nil
	}

	if k >= length {
		return nil, runtimeErrorf(ReasonIndex, name, "index %d out of range for length %d", k, length)
	}
	cur := lst
	for i := int64(0); i < k; i++ {
		cur = cur.Second()
	}
	elem := cur.First()
	if elem.IsEmpty() {
		return elem, nil
	}
	return e.Reduce(elem)
}
