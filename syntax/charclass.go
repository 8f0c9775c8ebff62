package syntax

// CharClass is an immutable set of single ASCII characters.  The scanner
// table is defined entirely in terms of these named sets: transitional states
// accept a class, terminal states accept the delimiter class that must follow
// the token.
type CharClass [128]bool

// NewCharClass builds a class from an explicit list of characters
func NewCharClass(chars string) CharClass {
	var cc CharClass
	for _, c := range chars {
		cc[c] = true
	}
	return cc
}

// Contains tests membership; anything outside ASCII is never a member
func (cc CharClass) Contains(c byte) bool {
	if c > 127 {
		return false
	}
	return cc[c]
}

// Union combines this class with any number of others
func (cc CharClass) Union(others ...CharClass) CharClass {
	result := cc
	for _, o := range others {
		for i, set := range o {
			if set {
				result[i] = true
			}
		}
	}
	return result
}

// Without returns a copy of the class with the given characters removed
func (cc CharClass) Without(chars string) CharClass {
	result := cc
	for _, c := range chars {
		result[c] = false
	}
	return result
}

// fullASCII builds the class of all ASCII characters
func fullASCII() CharClass {
	var cc CharClass
	for i := range cc {
		cc[i] = true
	}
	return cc
}

// Foundational character sets shared by the transition table and the
// delimiter definitions below.
var (
	lowerAlpha   = NewCharClass("abcdefghijklmnopqrstuvwxyz")
	digits       = NewCharClass("0123456789")
	alphanumeric = lowerAlpha.Union(NewCharClass("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), digits)

	arithmeticOps  = NewCharClass("+-/*%^")
	relationalOps  = NewCharClass("<>")
	generalOpChars = NewCharClass("+-/*%^=!&|")

	// freeDelim is the most common delimiter set: whitespace, a comment
	// start, newline, or end of file.
	freeDelim = NewCharClass(" \\\n\x00")

	// ioDelim follows the I/O keywords (lumen, lumina, nova) which must be
	// called immediately: an opening paren or a comment start.
	ioDelim = NewCharClass("(\\")

	// Interior sets for the literal and comment scanning states.
	asciiAll       = fullASCII()
	asciiNoNewline = fullASCII().Without("\n\x00")
	asciiLiteral   = fullASCII().Without("'\"\n\\\x00")
	asciiComment   = fullASCII().Without("*\x00")
)

// Delimiter classes.  Each one backs one or more terminal states in the
// transition table: the named token is only valid when immediately followed
// by a character from its class.
var (
	// separator keywords: 'and', 'or', 'not', 'sol', 'soluna', 'wane'
	separatorDelim = freeDelim.Union(NewCharClass("("))

	// '&&' and '||'
	andOrDelim = alphanumeric.Union(freeDelim, NewCharClass("(!\"-'_"))

	// most arithmetic operators (+, *, /, //, %, ^)
	arithmeticDelim = alphanumeric.Union(freeDelim, NewCharClass("(!\"-'_"))

	// ',' and '='
	commaEqualDelim = alphanumeric.Union(freeDelim, NewCharClass("\"+-!({"))

	// the boolean literals 'iris' and 'sage'
	irisSageDelim = freeDelim.Union(arithmeticOps, relationalOps, NewCharClass(");,&|("))

	// '::label::'
	labelDelim = freeDelim.Union(NewCharClass(";"))

	// general-purpose set for most symbols (==, !=, <=, >=, ...)
	mostSymbolDelim = alphanumeric.Union(freeDelim, NewCharClass("(!\"-'_"))

	// '!'
	notDelim = alphanumeric.Union(NewCharClass("\"-!("))

	// '-' alone (to distinguish from '--')
	minusDelim = alphanumeric.Union(freeDelim, NewCharClass("(!\"'_"))

	// ';'
	semicolonDelim = lowerAlpha.Union(freeDelim)

	// '..'
	stringConcatDelim = alphanumeric.Union(freeDelim, NewCharClass("(\"'_"))

	// '#'
	stringLengthDelim = lowerAlpha.Union(NewCharClass("(\"'_"))

	// unary '++' and '--'
	unaryDelim = alphanumeric.Union(freeDelim, relationalOps, NewCharClass("(+-*%/);&|'_="))

	// identifiers can be followed by almost anything
	identifierDelim = freeDelim.Union(arithmeticOps, relationalOps, NewCharClass("()[}.;,&|="))

	// grouping symbols
	openParenDelim    = alphanumeric.Union(freeDelim, NewCharClass("\"+-!()"))
	closeParenDelim   = generalOpChars.Union(freeDelim, NewCharClass(";,)]}"))
	openSquareDelim   = alphanumeric.Union(freeDelim, NewCharClass("-({!_'\""))
	closeSquareDelim  = freeDelim.Union(NewCharClass("[="))
	openBracketDelim  = alphanumeric.Union(freeDelim, NewCharClass("\"'-([}"))
	closeBracketDelim = freeDelim.Union(NewCharClass(";,)}"))

	// general delimiter for data-type literals (numbers, strings, chars)
	mostDataTypeDelim = generalOpChars.Union(relationalOps, freeDelim, NewCharClass(")]};,."))

	// keyword-specific sets
	warpDelim = NewCharClass(";")
	leoDelim  = NewCharClass(";")
	zeruDelim = freeDelim.Union(arithmeticOps, relationalOps, NewCharClass(";)"))
	zaraDelim = freeDelim.Union(NewCharClass("(;"))

	// block enders picked up extra delimiters so they can close nested
	// constructs directly
	mosDelim  = freeDelim.Union(NewCharClass("};)"))
	waneDelim = separatorDelim.Union(NewCharClass("};"))
)
