package scheme

import (
	"errors"
	"strings"
	"testing"
)

func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
		want string
	}{
		{
			name: "empty",
			n:    Empty,
			want: "()",
		},
		{
			name: "nil is empty",
			n:    nil,
			want: "()",
		},
		{
			name: "negative number",
			n:    Number(-12),
			want: "-12",
		},
		{
			name: "booleans",
			n:    List(Boolean(true), Boolean(false)),
			want: "(#t #f)",
		},
		{
			name: "list of one symbol",
			n:    List(MustSymbol("abc")),
			want: "(abc)",
		},
		{
			name: "list of empty lists",
			n:    List(Empty, Empty, List(Empty, Empty)),
			want: "(() () (() ()))",
		},
		{
			name: "nested",
			n:    List(MustSymbol("a"), List(Number(1), List(Number(2))), MustSymbol("b")),
			want: "(a (1 (2)) b)",
		},
		{
			name: "dotted pair",
			n:    Cons(Number(1), Number(2)),
			want: "(1 . 2)",
		},
		{
			name: "improper list",
			n:    ListWithTail(MustSymbol("c"), MustSymbol("a"), MustSymbol("b")),
			want: "(a b . c)",
		},
		{
			name: "pair ending in a list prints as a list",
			n:    Cons(Number(1), List(Number(2), Number(3))),
			want: "(1 2 3)",
		},
		{
			name: "quote marker",
			n:    List(Quote(Number(1))),
			want: "!!(internal error: quote marker reached the printer)!!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender_QuoteIsInternal(t *testing.T) {
	for _, n := range []*Node{
		Quote(Number(1)),
		List(Number(1), Quote(MustSymbol("a"))),
		Cons(Number(1), Quote(Number(2))),
	} {
		got, err := Render(n)
		if !errors.Is(err, ErrInternal) {
			t.Errorf("Render() error = %v, want internal error", err)
		}
		if got != "" {
			t.Errorf("Render() = %q, want no partial output", got)
		}
	}
}

func TestRender_RoundTrip(t *testing.T) {
	for _, text := range []string{
		"0", "1", "-1", "9223372036854775807", "-9223372036854775808", "#t", "#f",
		"()", "(1 2 3)", "(1 . 2)", "(a (b c) . d)", "(list-ref #t null?)",
	} {
		n, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		got, err := Render(n)
		if err != nil {
			t.Fatalf("Render(%q) error = %v", text, err)
		}
		if got != text {
			t.Errorf("Render(Parse(%q)) = %q", text, got)
		}
	}
}

func TestRender_LongList(t *testing.T) {
	elems := make([]*Node, 100000)
	for i := range elems {
		elems[i] = Number(1)
	}
	got, err := Render(List(elems...))
	if err != nil {
		t.Fatal(err)
	}
	if want := "(" + strings.TrimSpace(strings.Repeat("1 ", len(elems))) + ")"; got != want {
		t.Errorf("Render() length = %d, want %d", len(got), len(want))
	}
}

func TestRenderDatum(t *testing.T) {
	for text, want := range map[string]string{
		"'a":           "(quote a)",
		"(+ 1 '(2 3))": "(+ 1 (quote (2 3)))",
		"(a . 'b)":     "(a quote b)",
		"(+ 1 2)":      "(+ 1 2)",
	} {
		n, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		got, err := RenderDatum(n)
		if err != nil {
			t.Fatalf("RenderDatum(%q) error = %v", text, err)
		}
		if got != want {
			t.Errorf("RenderDatum(%q) = %q, want %q", text, got, want)
		}
	}
}
