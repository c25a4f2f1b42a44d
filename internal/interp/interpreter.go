// Package interp implements the Brewin tree-walking interpreter core:
// the class index (C3/C4), the runtime object model and method
// dispatch (C5), statement execution and expression evaluation (C1/C2),
// and the error channel (C6). It consumes an already-parsed ast.Node
// produced by internal/sexpr and never touches source text itself.
package interp

import "io"

// Host is the interpreter's only way to reach the outside world:
// `print` writes through Output, `inputs`/`inputi` read through
// GetInput. The native stdin/stdout host lives outside this package
// (pkg/platform/native, adapted to Host by pkg/brewin), so
// internal/interp never reads or writes the console directly.
type Host interface {
	Output(line string)
	GetInput() (string, error)
}

// Interpreter is the C1-C6 runtime: an immutable class index, the host
// it talks to, the keyword spellings in effect, and an optional trace
// sink.
type Interpreter struct {
	classes *ClassIndex
	host    Host
	kw      *Keywords
	trace   io.Writer
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithTrace writes one line per executed statement to w (SPEC_FULL.md
// §2.2). A nil writer (the default) disables tracing entirely.
func WithTrace(w io.Writer) Option {
	return func(in *Interpreter) { in.trace = w }
}

// NewInterpreter builds an Interpreter over an already-built class
// index.
func NewInterpreter(classes *ClassIndex, host Host, kw *Keywords, opts ...Option) *Interpreter {
	in := &Interpreter{classes: classes, host: host, kw: kw}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run instantiates the designated main class and calls its designated
// main method with no arguments, discarding its return value (spec.md
// §4.1's program entry point). It is the sole top-level entry point;
// every error raised anywhere in the call tree propagates straight back
// out of Run unmodified. The class index must already be built (see
// NewInterpreter) — Run takes no program tree of its own.
func (in *Interpreter) Run() error {
	obj, err := in.Instantiate(in.kw.MainClass, 0)
	if err != nil {
		return err
	}

	_, err = obj.CallMethod(in.kw.MainFunc, nil, 0, nil)
	return err
}
