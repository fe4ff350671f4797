// Package bril loads Bril programs serialized as JSON and checks that they
// have the minimal shape every consumer relies on: an object holding a
// "functions" array whose entries carry a string "name" and an "instrs" array.
//
// Instructions are opaque. Nothing beyond that shape is inspected.
package bril

// Program is a decoded Bril document.
type Program struct {
	Functions []Function

	raw map[string]any
}

// Raw returns the decoded document exactly as parsed, including keys the
// loader does not look at.
func (p *Program) Raw() map[string]any {
	return p.raw
}

// Function returns the first function with the given name.
func (p *Program) Function(name string) (Function, bool) {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return Function{}, false
}

// Function is one entry of a program's "functions" array. Instrs and Raw
// share storage with the program's raw document.
type Function struct {
	Name   string
	Instrs []any
	Raw    map[string]any
}

// Summary is the per-function instruction count report printed by the CLI.
type Summary struct {
	Path      string            `json:"path"`
	Functions []FunctionSummary `json:"functions"`
}

// FunctionSummary describes one function in a Summary.
type FunctionSummary struct {
	Name   string `json:"name"`
	Instrs int    `json:"instrs"`
}

// Summarize counts instructions per function in document order.
func Summarize(path string, p *Program) Summary {
	s := Summary{
		Path:      path,
		Functions: make([]FunctionSummary, 0, len(p.Functions)),
	}
	for _, fn := range p.Functions {
		s.Functions = append(s.Functions, FunctionSummary{
			Name:   fn.Name,
			Instrs: len(fn.Instrs),
		})
	}
	return s
}
