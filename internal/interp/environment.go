package interp

// Environment is a stack of named-binding frames implementing the
// lexical scoping of spec.md §3/§4.2. Lookup scans top-down, innermost
// frame first; assignment updates the innermost frame that defines the
// name. Grounded on original_source/interpreterv2.py's EnvironmentManager
// (`self.environment = [env]`, add_env/remove_env) rather than go-dws's
// outer-pointer-chain Environment: spec.md models one environment object
// holding many frames, not one object per scope.
type Environment struct {
	frames []map[string]Value
}

// NewEnvironment creates an environment with a single frame containing
// the given initial bindings (used for a method call's bound formals).
func NewEnvironment(initial map[string]Value) *Environment {
	if initial == nil {
		initial = map[string]Value{}
	}
	return &Environment{frames: []map[string]Value{initial}}
}

// Push adds a new, empty innermost frame (spec.md §4.6 `let`).
func (e *Environment) Push() {
	e.frames = append(e.frames, map[string]Value{})
}

// Pop removes the innermost frame. Every Push must be matched by exactly
// one Pop on every exit path, including an early return or a propagated
// error (spec.md §5's scope discipline) — callers satisfy this with
// `defer env.Pop()` immediately after Push.
func (e *Environment) Pop() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Define binds name in the innermost frame, overwriting any existing
// binding of the same name in that frame.
func (e *Environment) Define(name string, val Value) {
	e.frames[len(e.frames)-1][name] = val
}

// Get returns the value bound to name in the innermost frame that
// defines it, scanning outward, or ok=false if no frame defines it.
func (e *Environment) Get(name string) (Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if val, ok := e.frames[i][name]; ok {
			return val, true
		}
	}
	return Value{}, false
}

// Set overwrites name in the innermost frame that defines it. It is a
// no-op if no frame defines the name — callers must check with Get
// first, per spec.md §4.2.
func (e *Environment) Set(name string, val Value) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = val
			return
		}
	}
}
