package interp

import (
	"iter"
	"maps"
	"slices"
)

type Mutability uint8

const (
	Immutable Mutability = iota + 1
	Mutable
)

func (m Mutability) String() string {
	switch m {
	case Immutable:
		return "const"
	case Mutable:
		return "var"
	}
	return "invalid"
}

type Symbol struct {
	Mutability Mutability
	Value      Value
}

// Env is a flat mapping from names to symbols. Bindings are never removed and
// never change mutability.
type Env struct {
	symbols map[string]*Symbol
}

func NewEnv() *Env {
	return &Env{
		symbols: make(map[string]*Symbol),
	}
}

func (e *Env) Define(name string, mutability Mutability, value Value) error {
	if _, ok := e.symbols[name]; ok {
		return &SymbolAlreadyDefinedError{
			Name: name,
		}
	}
	e.symbols[name] = &Symbol{
		Mutability: mutability,
		Value:      value,
	}
	return nil
}

func (e *Env) Assign(name string, value Value) error {
	symbol, ok := e.symbols[name]
	if !ok {
		return &SymbolNotFoundError{
			Name: name,
		}
	}
	if symbol.Mutability != Mutable {
		return &ImmutableAssignmentError{
			Name: name,
		}
	}
	symbol.Value = value
	return nil
}

func (e *Env) Get(name string) (Value, error) {
	symbol, ok := e.symbols[name]
	if !ok {
		return nil, &SymbolNotFoundError{
			Name: name,
		}
	}
	return symbol.Value, nil
}

func (e *Env) Lookup(name string) (Symbol, bool) {
	symbol, ok := e.symbols[name]
	if !ok {
		return Symbol{}, false
	}
	return *symbol, true
}

func (e *Env) Len() int {
	return len(e.symbols)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.symbols))
}

// All iterates bindings in name order.
func (e *Env) All() iter.Seq2[string, Symbol] {
	return func(yield func(string, Symbol) bool) {
		for _, name := range e.Names() {
			if !yield(name, *e.symbols[name]) {
				return
			}
		}
	}
}
