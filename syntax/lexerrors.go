package syntax

import (
	"fmt"

	"soluna/logging"
)

// deadEndError classifies a simulation that consumed characters past its best
// accept and then died in a known dead-end state.  Returns nil when the dead
// end is not a recognized error shape (the best accept stands in that case).
func (l *Lexer) deadEndError(lastGood map[int]bool, current string) *logging.Diagnostic {
	// a trailing '.' with no following digit, e.g. "123."
	if anyRole(lastGood, roleFloatDot) {
		return &logging.Diagnostic{
			Type:    logging.DiagUnfinishedFlux,
			Message: fmt.Sprintf("Unfinished float literal '%s'.", current),
			Line:    l.line,
			Col:     l.col,
			Start:   l.cursor,
			End:     l.cursor + len(current),
		}
	}

	return nil
}

// endReachable reports whether any active state has a terminal successor,
// meaning a valid token was one delimiter away
func endReachable(states map[int]bool) bool {
	for id := range states {
		for _, nid := range scanTable[id].Branches {
			if scanTable[nid].End {
				return true
			}
		}
	}
	return false
}

// totalFailureError classifies a scan that never produced an accepted token:
// an invalid delimiter after an otherwise-complete token, an unterminated
// literal at end of input, or an unrecognized starting character.
func (l *Lexer) totalFailureError(lastGood map[int]bool, killer byte, current string) *logging.Diagnostic {
	// a valid token was reachable but the follower was not in its delimiter
	// class (e.g. "letx", "123a", "kai?")
	if killer != 0 && endReachable(lastGood) {
		return &logging.Diagnostic{
			Type:    logging.DiagInvalidDelimiter,
			Message: fmt.Sprintf("Invalid delimiter '%c' after token '%s'.", killer, current),
			Line:    l.line,
			Col:     l.col + len(current),
			Start:   l.cursor,
			End:     l.cursor + len(current),
		}
	}

	if killer == 0 {
		if anyRole(lastGood, roleInString) {
			return &logging.Diagnostic{
				Type:    logging.DiagUnclosedString,
				Message: "Unclosed string.",
				Line:    l.line,
				Col:     l.col,
				Start:   l.cursor,
				End:     l.cursor + 1,
			}
		}

		if anyRole(lastGood, roleInChar) {
			return &logging.Diagnostic{
				Type:    logging.DiagUnclosedChar,
				Message: "Unclosed char literal.",
				Line:    l.line,
				Col:     l.col,
				Start:   l.cursor,
				End:     l.cursor + 1,
			}
		}

		if anyRole(lastGood, roleInComment) {
			return &logging.Diagnostic{
				Type:    logging.DiagUnclosedComment,
				Message: "Unclosed comment.",
				Line:    l.line,
				Col:     l.col,
				Start:   l.cursor,
				End:     l.cursor + 1,
			}
		}
	}

	return &logging.Diagnostic{
		Type:    logging.DiagUnrecognizedChar,
		Message: fmt.Sprintf("Unrecognized character '%c'.", l.charAt(l.cursor)),
		Line:    l.line,
		Col:     l.col,
		Start:   l.cursor,
		End:     l.cursor + 1,
	}
}
