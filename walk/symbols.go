package walk

import (
	"soluna/typing"
)

// Symbol is one named entity in the symbol table: a variable, a table, or a
// function signature
type Symbol struct {
	Name string
	Type typing.DataType

	// Constant marks a zeta-qualified variable
	Constant bool

	// Folded is the statically known value of a variable, "unknown" when the
	// value cannot be determined before runtime
	Folded string

	// table metadata
	IsTable  bool
	ElemType typing.DataType

	// function metadata
	IsFunction bool
	ReturnType typing.DataType
	Params     []typing.DataType
}
