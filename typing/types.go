package typing

// DataType is one of Soluna's value types.  Unknown marks an expression whose
// type could not be determined statically; such expressions coerce anywhere.
type DataType int

const (
	Unknown DataType = iota
	Kai              // integer
	Flux             // small float, up to four fractional digits
	Aster            // double, more than four fractional digits
	Selene           // string
	Blaze            // char
	Lani             // boolean
	Let              // dynamic
	Void             // function return only
)

// typeNames maps each type to its keyword spelling
var typeNames = map[DataType]string{
	Unknown: "unknown",
	Kai:     "kai",
	Flux:    "flux",
	Aster:   "aster",
	Selene:  "selene",
	Blaze:   "blaze",
	Lani:    "lani",
	Let:     "let",
	Void:    "void",
}

// Repr returns the type's keyword spelling
func (dt DataType) Repr() string {
	return typeNames[dt]
}

// FromName converts a type keyword to its DataType, Unknown if unrecognized
func FromName(name string) DataType {
	switch name {
	case "kai":
		return Kai
	case "flux":
		return Flux
	case "aster":
		return Aster
	case "selene":
		return Selene
	case "blaze":
		return Blaze
	case "lani":
		return Lani
	case "let":
		return Let
	case "void":
		return Void
	}
	return Unknown
}

// numericRank orders the numeric types by width; lani participates as the
// narrowest numeric so booleans can widen into arithmetic
func numericRank(dt DataType) int {
	switch dt {
	case Lani:
		return 1
	case Kai:
		return 2
	case Flux:
		return 3
	case Aster:
		return 4
	}
	return 0
}

// IsNumeric reports whether the type participates in arithmetic widening
func (dt DataType) IsNumeric() bool {
	return numericRank(dt) > 0
}

// Widest returns the wider of two numeric types.  Unknown on either side
// propagates.
func Widest(a, b DataType) DataType {
	if a == Unknown || b == Unknown {
		return Unknown
	}
	if numericRank(b) > numericRank(a) {
		return b
	}
	return a
}
