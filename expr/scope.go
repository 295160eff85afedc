package expr

import "github.com/dynasql/dynasql/value"

// Scope is a stack of name→Value frames consulted from top to bottom,
// per §3: "Scopes are a stack of frames; each Foreach and Bind pushes a
// frame that shadows names. The root frame is the caller's argument
// map." Grounded on the teacher's eval.ParamGroup/bindScope composition,
// generalized from reflect-based parameter resolution to value.Value
// frames.
type Scope struct {
	root   value.Value
	frames []map[string]value.Value
}

// NewScope creates a root scope over the caller's argument map (§6:
// "Root argument contract: always a Map").
func NewScope(root value.Value) *Scope {
	return &Scope{root: root}
}

// Push adds a frame that shadows any outer binding of the same name.
func (s *Scope) Push(bindings map[string]value.Value) {
	s.frames = append(s.frames, bindings)
}

// Pop removes the innermost frame.
func (s *Scope) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Bind adds or overwrites a single name in the innermost frame, used by
// Bind/let nodes which push exactly one binding (§3's Bind semantics).
func (s *Scope) Bind(name string, v value.Value) {
	if len(s.frames) == 0 {
		s.Push(map[string]value.Value{name: v})
		return
	}
	s.frames[len(s.frames)-1][name] = v
}

// Root returns the caller's argument map directly, the value the
// reserved identifiers "arg"/"args" resolve to (§4.2).
func (s *Scope) Root() value.Value { return s.root }

// Get resolves an identifier: "arg"/"args" yield the whole root map;
// otherwise the innermost matching frame wins; falling through to
// root[name] if unbound anywhere, which never fails (§3: "get returns
// Null for missing keys").
func (s *Scope) Get(name string) value.Value {
	switch name {
	case "arg", "args":
		return s.root
	}
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v
		}
	}
	return s.root.Field(name)
}
