package walk

// SymbolTable is a stack of lexical scopes.  Frame 0 is the global scope and
// always exists; blocks, loops, and function bodies push frames on top.
//
// Declarations default to the GLOBAL frame: only a local-qualified
// declaration, a parameter, or a loop induction variable lands in the
// innermost frame.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable creates a table holding only the global scope
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]*Symbol{{}}}
}

// PushScope opens a new innermost scope
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, map[string]*Symbol{})
}

// PopScope discards the innermost scope; the global scope is never popped
func (st *SymbolTable) PopScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

// DeclareGlobal registers a symbol in the global frame.  Returns false when
// the name is already taken there.
func (st *SymbolTable) DeclareGlobal(sym *Symbol) bool {
	if _, ok := st.scopes[0][sym.Name]; ok {
		return false
	}
	st.scopes[0][sym.Name] = sym
	return true
}

// DeclareLocal registers a symbol in the innermost frame.  Shadowing an outer
// declaration is fine; a duplicate in the same frame is not.
func (st *SymbolTable) DeclareLocal(sym *Symbol) bool {
	top := st.scopes[len(st.scopes)-1]
	if _, ok := top[sym.Name]; ok {
		return false
	}
	top[sym.Name] = sym
	return true
}

// Lookup resolves a name from the innermost scope outward
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}
