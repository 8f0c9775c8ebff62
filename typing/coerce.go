package typing

import (
	"strconv"
	"strings"
)

// CoerceTo reports whether a value of type src can be stored into a slot of
// type dest.  The folded argument is the statically evaluated value of the
// source expression ("unknown" when folding failed); it decides the
// narrowing cases where a wide literal still fits a narrow slot.
func CoerceTo(dest, src DataType, folded string) bool {
	// an undetermined side never blocks analysis
	if dest == Unknown || src == Unknown {
		return true
	}

	if dest == src {
		return true
	}

	// the dynamic type accepts anything, and booleans are permissive targets
	if dest == Let || dest == Lani {
		return true
	}

	if dest.IsNumeric() && src.IsNumeric() {
		// widening always succeeds
		if numericRank(dest) >= numericRank(src) {
			return true
		}

		// narrowing only when the folded value actually fits the slot
		return fitsNumeric(dest, folded)
	}

	return false
}

// fitsNumeric checks a folded value against a narrow numeric slot: integer
// slots need a value with no fractional significance, the small float slot
// needs at most four significant fractional digits
func fitsNumeric(dest DataType, folded string) bool {
	if folded == "" || folded == "unknown" {
		return false
	}

	val, err := strconv.ParseFloat(folded, 64)
	if err != nil {
		return false
	}

	switch dest {
	case Kai, Lani:
		return val == float64(int64(val))
	case Flux:
		dot := strings.IndexByte(folded, '.')
		if dot == -1 {
			return true
		}
		frac := strings.TrimRight(folded[dot+1:], "0")
		return len(frac) <= 4
	}

	return false
}
