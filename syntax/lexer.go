package syntax

import (
	"soluna/logging"
)

// Lexeme is a raw scanned token prior to classification
type Lexeme struct {
	Text  string
	Line  int
	Col   int
	Start int
	End   int

	// ForcedIdentifier flags a lexeme that was only accepted by identifier
	// states: it matches a reserved word spelling but its trailing delimiter
	// was not valid for the keyword, so it must classify as an identifier.
	ForcedIdentifier bool
}

// Lexer drives the scanner table over one source text.  A lexer holds
// per-request cursor state and must not be shared between requests.
type Lexer struct {
	src    string
	cursor int
	line   int
	col    int
}

// NewLexer creates a lexer for the given source text
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// charAt safely reads a character; the null character marks end of input
func (l *Lexer) charAt(index int) byte {
	if index < len(l.src) {
		return l.src[index]
	}
	return 0
}

// skipWhitespace advances the cursor past ignorable whitespace, updating the
// line/column trackers
func (l *Lexer) skipWhitespace() {
	for l.cursor < len(l.src) {
		switch l.src[l.cursor] {
		case '\n':
			l.line++
			l.col = 1
		case '\t':
			l.col += tabColumnWidth
		case ' ', '\r':
			l.col++
		default:
			return
		}

		l.cursor++
	}
}

// advanceOver moves the cursor forward over text that is being consumed or
// skipped, keeping the line/column trackers in sync
func (l *Lexer) advanceOver(text string) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			l.line++
			l.col = 1
		case '\t':
			l.col += tabColumnWidth
		default:
			l.col++
		}
	}
	l.cursor += len(text)
}

// anyRole reports whether any active state carries the given role
func anyRole(states map[int]bool, role int) bool {
	for id := range states {
		if scanTable[id].Role == role {
			return true
		}
	}
	return false
}

// allIdentEnds reports whether a nonempty accept set was reached exclusively
// through identifier end states
func allIdentEnds(states map[int]bool) bool {
	if len(states) == 0 {
		return false
	}
	for id := range states {
		if scanTable[id].Role != roleIdentEnd {
			return false
		}
	}
	return true
}

// nextLexeme runs the longest-match simulation from the current cursor.  On
// success it returns the lexeme text, the offset just past it, and the set of
// terminal states that accepted it.  On failure it returns a diagnostic whose
// Start/End span tells the caller how far to advance before resuming.
func (l *Lexer) nextLexeme() (string, int, map[int]bool, *logging.Diagnostic) {
	active := map[int]bool{0: true}
	lastGood := active
	searchIndex := l.cursor

	// the best (longest) accepted token so far; ties accumulate terminal
	// states so forced-identifier detection sees every accepting path
	acceptedLen := -1
	acceptedEnd := l.cursor
	var accepted map[int]bool

	var killer byte

	for len(active) > 0 {
		lastGood = active
		look := l.charAt(searchIndex)
		killer = look
		curLen := searchIndex - l.cursor

		// delimiter check: a terminal successor whose delimiter class holds
		// the lookahead marks a candidate token ending here
		for id := range active {
			for _, nid := range scanTable[id].Branches {
				ns := &scanTable[nid]
				if !ns.End || !ns.Chars.Contains(look) {
					continue
				}

				if curLen > acceptedLen {
					acceptedLen = curLen
					acceptedEnd = searchIndex
					accepted = map[int]bool{nid: true}
				} else if curLen == acceptedLen {
					accepted[nid] = true
				}
			}
		}

		if look == 0 {
			// a multi-line comment cut off by end of input closes gracefully
			// instead of raising an error
			if anyRole(active, roleInComment) {
				acceptedLen = curLen
				acceptedEnd = searchIndex
				accepted = map[int]bool{}
			}
			break
		}

		// transition: all non-terminal successors accepting the lookahead
		next := make(map[int]bool)
		for id := range active {
			for _, nid := range scanTable[id].Branches {
				ns := &scanTable[nid]
				if !ns.End && ns.Chars.Contains(look) {
					next[nid] = true
				}
			}
		}

		if len(next) == 0 {
			break
		}

		active = next
		searchIndex++
	}

	// the scan consumed past the best accept and died in a dead-end state
	if acceptedLen >= 0 && searchIndex-l.cursor > acceptedLen {
		if diag := l.deadEndError(lastGood, l.src[l.cursor:searchIndex]); diag != nil {
			return "", 0, nil, diag
		}
	}

	if acceptedLen >= 0 {
		return l.src[l.cursor:acceptedEnd], acceptedEnd, accepted, nil
	}

	return "", 0, nil, l.totalFailureError(lastGood, killer, l.src[l.cursor:searchIndex])
}

// ScanAll lexes the entire source, applying panic-and-resume recovery: each
// lexical error is recorded with its span and scanning restarts just past it,
// so one pass can surface many diagnostics.
func (l *Lexer) ScanAll() ([]Lexeme, []logging.Diagnostic) {
	var lexemes []Lexeme
	var diags []logging.Diagnostic

	for l.cursor < len(l.src) {
		l.skipWhitespace()
		if l.cursor >= len(l.src) {
			break
		}

		startLine, startCol, startCursor := l.line, l.col, l.cursor

		text, end, accepted, diag := l.nextLexeme()
		if diag != nil {
			diags = append(diags, *diag)

			// advance past the offending span and resume
			l.advanceOver(l.src[startCursor:diag.End])
			continue
		}

		lexemes = append(lexemes, Lexeme{
			Text:             text,
			Line:             startLine,
			Col:              startCol,
			Start:            startCursor,
			End:              end,
			ForcedIdentifier: allIdentEnds(accepted),
		})

		l.advanceOver(text)
	}

	return lexemes, diags
}
