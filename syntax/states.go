package syntax

// Roles tag scanner states so the error classifier can tell *where* a dead
// simulation stopped (inside a string, right after a float's dot, etc.).
const (
	roleNone = iota
	roleIdentEnd
	roleFloatDot
	roleInString
	roleInChar
	roleInComment
)

// Structural limits enforced directly by the transition table.
const (
	maxIntDigits   = 15
	maxFracDigits  = 8
	maxIdentChars  = 20
	maxLabelChars  = 5
	tabColumnWidth = 4
)

// ScanState is a single state of the scanner's finite automaton.  For
// transitional states Chars is the set of characters that advance the scan;
// for terminal states Chars is the delimiter class that must follow the token
// ending at that state.
type ScanState struct {
	Chars    CharClass
	Branches []int
	End      bool
	Role     int
}

// scanTable is the global, shared transition table used by all lexer
// instances.  It is built once at process start and never mutated, so
// concurrently handled requests can read it without locking.  State 0 is the
// start state.
var scanTable []ScanState

func init() {
	scanTable = buildScanTable()
}

// tableBuilder accumulates states during table construction
type tableBuilder struct {
	states []ScanState
}

func newTableBuilder() *tableBuilder {
	// reserve state 0 as the start state
	return &tableBuilder{states: make([]ScanState, 1, 512)}
}

// add appends a state and returns its id
func (b *tableBuilder) add(s ScanState) int {
	b.states = append(b.states, s)
	return len(b.states) - 1
}

// root registers a state as a branch of the start state
func (b *tableBuilder) root(id int) {
	b.states[0].Branches = append(b.states[0].Branches, id)
}

// chain builds a linear recognizer for a fixed spelling ending in a terminal
// state with the given delimiter class, and hangs it off the start state.
// The active-set simulation runs all chains in parallel, so spellings with
// shared prefixes do not need to share states.
func (b *tableBuilder) chain(spelling string, delim CharClass) int {
	next := b.add(ScanState{Chars: delim, End: true})
	for i := len(spelling) - 1; i >= 0; i-- {
		next = b.add(ScanState{
			Chars:    NewCharClass(string(spelling[i])),
			Branches: []int{next},
		})
	}
	b.root(next)
	return next
}

func buildScanTable() []ScanState {
	b := newTableBuilder()

	// --- keywords ---
	b.chain("and", separatorDelim)
	b.chain("aster", freeDelim)
	b.chain("blaze", freeDelim)
	b.chain("cos", freeDelim)
	b.chain("flux", freeDelim)
	b.chain("hubble", freeDelim)
	b.chain("iris", irisSageDelim)
	b.chain("ixion", freeDelim)
	b.chain("kai", freeDelim)
	b.chain("lani", freeDelim)
	b.chain("leo", freeDelim)
	b.chain("let", freeDelim)
	b.chain("local", freeDelim)
	b.chain("lumen", ioDelim)
	b.chain("lumina", ioDelim)
	b.chain("luna", freeDelim)
	b.chain("mos", mosDelim)
	b.chain("not", separatorDelim)
	b.chain("nova", ioDelim)
	b.chain("or", separatorDelim)
	b.chain("orbit", freeDelim)
	b.chain("phase", freeDelim)
	b.chain("sage", irisSageDelim)
	b.chain("selene", freeDelim)
	b.chain("sol", separatorDelim)
	b.chain("soluna", separatorDelim)
	b.chain("star", freeDelim)
	b.chain("void", freeDelim)
	b.chain("wane", waneDelim)
	b.chain("warp", warpDelim)
	b.chain("wax", freeDelim)
	b.chain("zara", zaraDelim)
	b.chain("zeru", zeruDelim)
	b.chain("zeta", freeDelim)

	// --- numeric literals ---
	// built before the minus chain so a leading '-' can branch into the
	// first digit state (eagerly scanned negative numbers)
	firstDigit := b.buildNumberStates()

	// --- operators and punctuation ---
	b.chain("+", arithmeticDelim)
	b.chain("++", unaryDelim)
	b.chain("+=", mostSymbolDelim)
	minusState := b.chain("-", minusDelim)
	b.states[minusState].Branches = append(b.states[minusState].Branches, firstDigit)
	b.chain("--", unaryDelim)
	b.chain("-=", mostSymbolDelim)
	b.chain("*", arithmeticDelim)
	b.chain("*=", mostSymbolDelim)
	b.chain("/", arithmeticDelim)
	b.chain("/=", mostSymbolDelim)
	b.chain("//", arithmeticDelim)
	b.chain("^", arithmeticDelim)
	b.chain("%", arithmeticDelim)
	b.chain("%=", mostSymbolDelim)
	b.chain("=", commaEqualDelim)
	b.chain("==", mostSymbolDelim)
	b.chain("!", notDelim)
	b.chain("!=", mostSymbolDelim)
	b.chain("<", mostSymbolDelim)
	b.chain("<=", mostSymbolDelim)
	b.chain(">", mostSymbolDelim)
	b.chain(">=", mostSymbolDelim)
	b.chain("&&", andOrDelim)
	b.chain("||", andOrDelim)
	b.chain("..", stringConcatDelim)
	b.chain("#", stringLengthDelim)
	b.chain("(", openParenDelim)
	b.chain(")", closeParenDelim)
	b.chain("[", openSquareDelim)
	b.chain("]", closeSquareDelim)
	b.chain("{", openBracketDelim)
	b.chain("}", closeBracketDelim)
	b.chain(",", commaEqualDelim)
	b.chain(";", semicolonDelim)

	b.buildIdentifierStates()
	b.buildCharLiteralStates()
	b.buildStringLiteralStates()
	b.buildCommentStates()
	b.buildLabelStates()

	return b.states
}

// buildNumberStates creates the integer digit chain with an optional
// fractional tail.  Every digit state can end the token (via a terminal) or
// extend it; all but the last integer digit can also branch into the dot
// state that begins the fraction.  Returns the first digit state's id.
func (b *tableBuilder) buildNumberStates() int {
	// fractional digits, built back to front
	lastFrac := -1
	fracStates := make([]int, maxFracDigits)
	for i := maxFracDigits - 1; i >= 0; i-- {
		term := b.add(ScanState{Chars: mostDataTypeDelim, End: true})
		branches := []int{term}
		if lastFrac != -1 {
			branches = append(branches, lastFrac)
		}
		lastFrac = b.add(ScanState{Chars: digits, Branches: branches})
		fracStates[i] = lastFrac
	}

	// the dot state awaits at least one fractional digit; dying here is the
	// "123." dead end
	dot := b.add(ScanState{Chars: NewCharClass("."), Branches: []int{fracStates[0]}, Role: roleFloatDot})

	// integer digits, back to front
	lastInt := -1
	for i := maxIntDigits - 1; i >= 0; i-- {
		term := b.add(ScanState{Chars: mostDataTypeDelim, End: true})
		branches := []int{term}
		if lastInt != -1 {
			branches = append(branches, lastInt)
		}
		if i < maxIntDigits-1 {
			branches = append(branches, dot)
		}
		lastInt = b.add(ScanState{Chars: digits, Branches: branches})
	}

	b.root(lastInt)
	return lastInt
}

// buildIdentifierStates creates the identifier chain: a lowercase letter or
// underscore followed by up to nineteen alphanumerics.  Its terminal states
// are role-tagged so the lexer can detect tokens that were *only* accepted as
// identifiers (forced-identifier classification).
func (b *tableBuilder) buildIdentifierStates() {
	last := -1
	for i := maxIdentChars - 1; i >= 0; i-- {
		term := b.add(ScanState{Chars: identifierDelim, End: true, Role: roleIdentEnd})
		branches := []int{term}
		if last != -1 {
			branches = append(branches, last)
		}

		chars := alphanumeric
		if i == 0 {
			chars = lowerAlpha.Union(NewCharClass("_"))
		}
		last = b.add(ScanState{Chars: chars, Branches: branches})
	}

	b.root(last)
}

func (b *tableBuilder) buildCharLiteralStates() {
	term := b.add(ScanState{Chars: mostDataTypeDelim, End: true})
	closeQuote := b.add(ScanState{Chars: NewCharClass("'"), Branches: []int{term}, Role: roleInChar})
	body := b.add(ScanState{Chars: asciiLiteral, Branches: []int{closeQuote}, Role: roleInChar})
	escaped := b.add(ScanState{Chars: asciiLiteral, Branches: []int{closeQuote}, Role: roleInChar})
	escape := b.add(ScanState{Chars: NewCharClass("\\"), Branches: []int{escaped}, Role: roleInChar})
	openQuote := b.add(ScanState{Chars: NewCharClass("'"), Branches: []int{body, escape}, Role: roleInChar})

	b.root(openQuote)
}

func (b *tableBuilder) buildStringLiteralStates() {
	term := b.add(ScanState{Chars: mostDataTypeDelim, End: true})
	closeQuote := b.add(ScanState{Chars: NewCharClass("\""), Branches: []int{term}})

	// body, escape, and escaped all loop back through body
	body := b.add(ScanState{Chars: asciiLiteral, Role: roleInString})
	escaped := b.add(ScanState{Chars: asciiAll, Branches: []int{body, closeQuote}, Role: roleInString})
	escape := b.add(ScanState{Chars: NewCharClass("\\"), Branches: []int{escaped}, Role: roleInString})
	b.states[body].Branches = []int{body, closeQuote, escape}
	b.states[escaped].Branches = append(b.states[escaped].Branches, escape)

	openQuote := b.add(ScanState{Chars: NewCharClass("\""), Branches: []int{body, closeQuote, escape}, Role: roleInString})
	b.root(openQuote)
}

func (b *tableBuilder) buildCommentStates() {
	// single-line: \\ ... terminated by the newline delimiter
	lineTerm := b.add(ScanState{Chars: NewCharClass("\n"), End: true})
	lineBody := b.add(ScanState{Chars: asciiNoNewline, Role: roleInComment})
	b.states[lineBody].Branches = []int{lineBody, lineTerm}
	secondSlash := b.add(ScanState{Chars: NewCharClass("\\"), Branches: []int{lineBody, lineTerm}, Role: roleInComment})

	// multi-line: \* ... *\ terminated by a free delimiter
	blockTerm := b.add(ScanState{Chars: freeDelim, End: true})
	closeSlash := b.add(ScanState{Chars: NewCharClass("\\"), Branches: []int{blockTerm}, Role: roleInComment})
	blockBody := b.add(ScanState{Chars: asciiComment, Role: roleInComment})
	star := b.add(ScanState{Chars: NewCharClass("*"), Role: roleInComment})
	b.states[blockBody].Branches = []int{blockBody, star}
	b.states[star].Branches = []int{star, blockBody, closeSlash}
	openStar := b.add(ScanState{Chars: NewCharClass("*"), Branches: []int{blockBody, star, closeSlash}, Role: roleInComment})

	firstSlash := b.add(ScanState{Chars: NewCharClass("\\"), Branches: []int{secondSlash, openStar}})
	b.root(firstSlash)
}

// buildLabelStates creates the ::name:: chain where name is one to five
// alphanumeric/underscore characters.
func (b *tableBuilder) buildLabelStates() {
	term := b.add(ScanState{Chars: leoDelim, End: true})
	closeTwo := b.add(ScanState{Chars: NewCharClass(":"), Branches: []int{term}})
	closeOne := b.add(ScanState{Chars: NewCharClass(":"), Branches: []int{closeTwo}})

	last := -1
	for i := maxLabelChars - 1; i >= 0; i-- {
		branches := []int{closeOne}
		if last != -1 {
			branches = append(branches, last)
		}

		chars := alphanumeric
		if i == 0 {
			chars = alphanumeric.Union(NewCharClass("_"))
		}
		last = b.add(ScanState{Chars: chars, Branches: branches})
	}

	openTwo := b.add(ScanState{Chars: NewCharClass(":"), Branches: []int{last}})
	openOne := b.add(ScanState{Chars: NewCharClass(":"), Branches: []int{openTwo}})
	b.root(openOne)
}
