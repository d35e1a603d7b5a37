// Package lua exposes the interpreter to gopher-lua scripts as the "scheme"
// module:
//
//	local scheme = require("scheme")
//	local out, err = scheme.run("(+ 1 2)")   -- "3", nil
//	local v = scheme.eval("(cons 1 2)")      -- {list={1}, tail=2}
//	local n = scheme.parse("'(a b)")         -- {quote={list={{symbol="a"}, {symbol="b"}}}}
//
// Failures return nil and an error table {err=, kind=, incomplete=}; runtime
// errors also carry reason= and form=.
package lua

import (
	"errors"

	"github.com/alttpo/scheme"
	"github.com/yuin/gopher-lua"
)

const ModuleName = "scheme"

// Loader opens the module against scheme.DefaultInterpreter.
var Loader = NewLoader(scheme.DefaultInterpreter)

// NewLoader returns a module loader bound to ip.
func NewLoader(ip *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.CreateTable(0, 0), map[string]lua.LGFunction{
			"run":     runFunc(ip),
			"eval":    evalFunc(ip),
			"parse":   parseFunc(ip),
			"builtin": builtin,
		})
		L.Push(mod)
		return 1
	}
}

// Preload registers Loader so scripts can require("scheme").
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

func runFunc(ip *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		out, err := ip.Run(L.CheckString(1))
		if err != nil {
			return pushError(L, err)
		}
		L.Push(lua.LString(out))
		return 1
	}
}

func evalFunc(ip *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		v, err := ip.Eval(L.CheckString(1))
		if err != nil {
			return pushError(L, err)
		}
		L.Push(ToLua(L, v))
		return 1
	}
}

func parseFunc(ip *scheme.Interpreter) lua.LGFunction {
	return func(L *lua.LState) int {
		n, err := ip.Parse(L.CheckString(1))
		if err != nil {
			return pushError(L, err)
		}
		L.Push(ToLua(L, n))
		return 1
	}
}

func builtin(L *lua.LState) int {
	L.Push(lua.LBool(scheme.IsBuiltin(L.CheckString(1))))
	return 1
}

func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(ErrorTable(L, err))
	return 2
}

// ErrorTable describes err as a lua table.
func ErrorTable(L *lua.LState, err error) *lua.LTable {
	t := L.CreateTable(0, 0)
	t.RawSetString("err", lua.LString(err.Error()))
	t.RawSetString("incomplete", lua.LBool(scheme.IsIncomplete(err)))

	var re *scheme.RuntimeError
	switch {
	case errors.Is(err, scheme.ErrSyntax):
		t.RawSetString("kind", lua.LString("syntax"))
	case errors.As(err, &re):
		t.RawSetString("kind", lua.LString("runtime"))
		t.RawSetString("reason", lua.LString(re.Reason.String()))
		if re.Form != "" {
			t.RawSetString("form", lua.LString(re.Form))
		}
	default:
		t.RawSetString("kind", lua.LString("internal"))
	}
	return t
}

// ToLua converts a node tree. Numbers and booleans map to lua values; a
// symbol becomes {symbol=name}, a list {list={...}} with tail= for an improper
// list, and a quote marker {quote=child}. Numbers beyond 2^53 lose precision.
func ToLua(L *lua.LState, n *scheme.Node) lua.LValue {
	switch n.Kind() {
	case scheme.KindNumber:
		return lua.LNumber(n.Int())
	case scheme.KindBoolean:
		return lua.LBool(n.Bool())
	case scheme.KindSymbol:
		t := L.CreateTable(0, 0)
		t.RawSetString("symbol", lua.LString(n.Name()))
		return t
	case scheme.KindQuote:
		t := L.CreateTable(0, 0)
		t.RawSetString("quote", ToLua(L, n.First()))
		return t
	}

	elems, tail := n.Slice()
	list := L.CreateTable(0, 0)
	for _, elem := range elems {
		list.Append(ToLua(L, elem))
	}
	t := L.CreateTable(0, 0)
	t.RawSetString("list", list)
	if !tail.IsEmpty() {
		t.RawSetString("tail", ToLua(L, tail))
	}
	return t
}
