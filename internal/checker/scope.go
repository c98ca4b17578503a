package checker

import "github.com/nomisfailla/arctic/internal/types"

// scope is a stack of string -> semantic-type maps with a parent
// pointer, following the shape of yoru's types.Scope but keyed directly
// on the interned Type rather than an Object (§4.7).
type scope struct {
	parent *scope
	vars   map[string]types.Type
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]types.Type)}
}

// add fails (returns false) if name is already bound in this scope —
// not an ancestor scope, since shadowing across nested scopes is
// permitted (§3's invariant, §4.7).
func (s *scope) add(name string, t types.Type) bool {
	if _, ok := s.vars[name]; ok {
		return false
	}
	s.vars[name] = t
	return true
}

// lookup searches this scope and then each ancestor in order.
func (s *scope) lookup(name string) (types.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}
