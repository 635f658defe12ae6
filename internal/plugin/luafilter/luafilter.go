// Package luafilter compiles user-supplied Lua chunks into extraction
// predicates. A chunk must evaluate to a function taking one subject
// table and returning a boolean:
//
//	return function(subject)
//	    return #subject.text > 3
//	end
//
// The subject table carries `start` and `stop` (1-based inclusive
// grapheme positions) and `text` (the payload as a string).
//
// gopher-lua states are not goroutine-safe, so every evaluation is
// serialized through the filter's mutex.
package luafilter

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/juanjux/editorexperiment/internal/engine/extract"
)

// Errors returned when building a filter.
var (
	// ErrNotAFunction indicates a chunk that did not evaluate to a
	// Lua function.
	ErrNotAFunction = errors.New("lua chunk did not return a function")

	// ErrFilterClosed indicates use after Close.
	ErrFilterClosed = errors.New("lua filter is closed")
)

// Filter holds a compiled Lua predicate.
type Filter struct {
	mu     sync.Mutex
	state  *lua.LState
	fn     *lua.LFunction
	closed bool
}

// Compile evaluates the chunk and keeps the function it returns.
func Compile(chunk string) (*Filter, error) {
	L := lua.NewState()
	if err := L.DoString(chunk); err != nil {
		L.Close()
		return nil, fmt.Errorf("compiling lua filter: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	fn, ok := ret.(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNotAFunction
	}

	return &Filter{state: L, fn: fn}, nil
}

// Predicate adapts the compiled function to the extractor contract. Lua
// runtime errors reject the subject: the predicate must stay a pure
// boolean and has no error channel to the extractor.
func (f *Filter) Predicate() extract.Predicate {
	return func(s extract.Subject) bool {
		ok, err := f.Eval(s)
		if err != nil {
			return false
		}
		return ok
	}
}

// Eval runs the predicate against one subject.
func (f *Filter) Eval(s extract.Subject) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false, ErrFilterClosed
	}

	tbl := f.state.NewTable()
	f.state.SetField(tbl, "start", lua.LNumber(int(s.Start)+1))
	f.state.SetField(tbl, "stop", lua.LNumber(int(s.End)+1))
	f.state.SetField(tbl, "text", lua.LString(string(s.Text)))

	if err := f.state.CallByParam(lua.P{Fn: f.fn, NRet: 1, Protect: true}, tbl); err != nil {
		return false, fmt.Errorf("running lua filter: %w", err)
	}
	ret := f.state.Get(-1)
	f.state.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state. It is safe to call more than once.
func (f *Filter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.state.Close()
}
