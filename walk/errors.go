package walk

import (
	"fmt"

	"soluna/logging"
)

// semErr builds the semantic diagnostic for a rule violation; analysis stops
// at the first one
func semErr(line, col int, format string, args ...interface{}) error {
	return &logging.SemanticError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Col:     col,
	}
}

// validateName enforces the identifier rules on declared names: one to twenty
// characters, starting with a lowercase letter or underscore, containing only
// letters, digits, and underscores
func validateName(name string, line, col int) error {
	if len(name) == 0 || len(name) > 20 {
		return semErr(line, col, "Identifier '%s' must be between 1 and 20 characters.", name)
	}

	first := name[0]
	if (first < 'a' || first > 'z') && first != '_' {
		return semErr(line, col, "Invalid identifier '%s'.", name)
	}

	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return semErr(line, col, "Invalid identifier '%s'.", name)
		}
	}

	return nil
}
