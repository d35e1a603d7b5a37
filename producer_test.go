package scheme

import (
	"errors"
	"testing"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		wantErr bool
	}{
		{name: "xpass: letters", s: "abc"},
		{name: "xpass: operator", s: "<="},
		{name: "xpass: lone sign", s: "-"},
		{name: "xpass: sign then letter", s: "+a"},
		{name: "xpass: question mark continuation", s: "null?"},
		{name: "xpass: digit after letter", s: "x1"},
		{name: "xpass: hash prefix", s: "#true"},
		{name: "xfail: empty", s: "", wantErr: true},
		{name: "xfail: boolean text", s: "#t", wantErr: true},
		{name: "xfail: question mark start", s: "?a", wantErr: true},
		{name: "xfail: digit start", s: "1a", wantErr: true},
		{name: "xfail: reads as number", s: "-1", wantErr: true},
		{name: "xfail: whitespace", s: "a b", wantErr: true},
		{name: "xfail: bracket", s: "a)", wantErr: true},
		{name: "xfail: dot", s: "a.b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Symbol(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Symbol(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidSymbol) {
					t.Fatalf("Symbol(%q) error = %v, want ErrInvalidSymbol", tt.s, err)
				}
				return
			}
			if n.Name() != tt.s || !n.IsSymbol() {
				t.Errorf("Symbol(%q) = %v", tt.s, n)
			}
		})
	}
}

func TestLenientProducer_BooleanText(t *testing.T) {
	n, err := LenientProducer.Symbol("#t")
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsSymbol() || n.Name() != "#t" {
		t.Errorf("Symbol() = %v", n)
	}
}

func TestMustSymbol_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSymbol did not panic")
		}
	}()
	MustSymbol("(")
}

func TestBoolean_Singletons(t *testing.T) {
	if Boolean(true) != Boolean(true) || Boolean(false) != Boolean(false) {
		t.Error("booleans are not shared")
	}
	if !Boolean(false).IsFalse() || Boolean(true).IsFalse() {
		t.Error("IsFalse() mismatch")
	}
}

func TestNode_Shape(t *testing.T) {
	proper := List(Number(1), Number(2), Number(3))
	improper := ListWithTail(Number(3), Number(1), Number(2))

	if !proper.IsProperList() || improper.IsProperList() || !Empty.IsProperList() {
		t.Error("IsProperList() mismatch")
	}
	if Number(1).IsProperList() {
		t.Error("atom reported as proper list")
	}
	if proper.Len() != 3 || improper.Len() != 2 || Empty.Len() != 0 {
		t.Error("Len() mismatch")
	}

	elems, tail := improper.Slice()
	if len(elems) != 2 || elems[1].Int() != 2 || tail.Int() != 3 {
		t.Errorf("Slice() = %v, %v", elems, tail)
	}
	elems, tail = proper.Slice()
	if len(elems) != 3 || !tail.IsEmpty() {
		t.Errorf("Slice() = %v, %v", elems, tail)
	}

	if !Empty.First().IsEmpty() || !Number(1).Second().IsEmpty() {
		t.Error("missing slots must read as Empty")
	}
	if !Cons(nil, nil).First().IsEmpty() {
		t.Error("Cons(nil, nil) slot is not Empty")
	}
	if Quote(Number(4)).First().Int() != 4 {
		t.Error("Quote child not in first slot")
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{
		KindEmpty:   "empty",
		KindNumber:  "number",
		KindBoolean: "boolean",
		KindSymbol:  "symbol",
		KindPair:    "pair",
		KindQuote:   "quote",
		Kind(99):    "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
