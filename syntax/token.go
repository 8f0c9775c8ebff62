package syntax

// Token is a classified lexeme as consumed by the parser and exposed to
// transport clients.  Kind is either a keyword spelling, an operator
// spelling, or one of the generic kind names below.
type Token struct {
	Kind  string `json:"type"`
	Value string `json:"value"`

	// Line is the line number starting at 1
	Line int `json:"line"`

	// Col is the column number counting tabs as four columns
	Col int `json:"col"`

	// Start and End are byte offsets into the source text
	Start int `json:"start"`
	End   int `json:"end"`
}

// Generic token kinds.  Keywords and operators use their own spelling as
// their kind.
const (
	KindIdentifier = "identifier"
	KindInteger    = "integer"
	KindFloat      = "float"
	KindDouble     = "double"
	KindChar       = "char"
	KindString     = "string"
	KindLabel      = "label"
	KindComment    = "comment"
)

// reservedWords is the full keyword set of the language
var reservedWords = map[string]bool{
	"and":    true,
	"aster":  true,
	"blaze":  true,
	"cos":    true,
	"flux":   true,
	"hubble": true,
	"iris":   true,
	"ixion":  true,
	"kai":    true,
	"lani":   true,
	"leo":    true,
	"let":    true,
	"local":  true,
	"lumen":  true,
	"lumina": true,
	"luna":   true,
	"mos":    true,
	"not":    true,
	"nova":   true,
	"or":     true,
	"orbit":  true,
	"phase":  true,
	"sage":   true,
	"selene": true,
	"sol":    true,
	"soluna": true,
	"star":   true,
	"void":   true,
	"wane":   true,
	"warp":   true,
	"wax":    true,
	"zara":   true,
	"zeru":   true,
	"zeta":   true,
}

// reservedSymbols is the full operator/punctuation set
var reservedSymbols = map[string]bool{
	"+":  true,
	"++": true,
	"+=": true,
	"-":  true,
	"--": true,
	"-=": true,
	"*":  true,
	"*=": true,
	"/":  true,
	"/=": true,
	"//": true,
	"^":  true,
	"%":  true,
	"%=": true,
	"=":  true,
	"==": true,
	"!":  true,
	"!=": true,
	"<":  true,
	"<=": true,
	">":  true,
	">=": true,
	"&&": true,
	"||": true,
	"..": true,
	"#":  true,
	"(":  true,
	")":  true,
	"[":  true,
	"]":  true,
	"{":  true,
	"}":  true,
	",":  true,
	";":  true,
}
