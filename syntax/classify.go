package syntax

import (
	"strings"
)

// Classify maps raw lexemes to typed tokens: reserved word and symbol
// lookups, comment and label shapes, quoted literals, numeric literals with
// normalization, and identifiers as the default.  A final post-pass resolves
// the unary-minus/negative-literal ambiguity.
func Classify(lexemes []Lexeme) []Token {
	tokens := make([]Token, 0, len(lexemes))

	for _, lex := range lexemes {
		tok := Token{
			Value: lex.Text,
			Line:  lex.Line,
			Col:   lex.Col,
			Start: lex.Start,
			End:   lex.End,
		}

		switch {
		case reservedWords[lex.Text] && !lex.ForcedIdentifier:
			tok.Kind = lex.Text

		case reservedSymbols[lex.Text]:
			tok.Kind = lex.Text

		case strings.HasPrefix(lex.Text, "\\\\") || strings.HasPrefix(lex.Text, "\\*"):
			tok.Kind = KindComment

		case isLabel(lex.Text):
			tok.Kind = KindLabel

		case len(lex.Text) >= 2 && strings.HasPrefix(lex.Text, "\"") && strings.HasSuffix(lex.Text, "\""):
			tok.Kind = KindString

		case len(lex.Text) >= 2 && strings.HasPrefix(lex.Text, "'") && strings.HasSuffix(lex.Text, "'"):
			tok.Kind = KindChar

		case isNumeric(lex.Text):
			tok.Kind, tok.Value = classifyNumber(lex.Text)

		default:
			tok.Kind = KindIdentifier
		}

		tokens = append(tokens, tok)
	}

	return resolveMinus(tokens)
}

// isLabel validates the ::name:: shape with a name of one to five
// alphanumeric/underscore characters
func isLabel(text string) bool {
	if !strings.HasPrefix(text, "::") || !strings.HasSuffix(text, "::") || len(text) < 5 {
		return false
	}

	middle := text[2 : len(text)-2]
	if len(middle) < 1 || len(middle) > maxLabelChars {
		return false
	}

	for i := 0; i < len(middle); i++ {
		c := middle[i]
		if !alphanumeric.Contains(c) && c != '_' {
			return false
		}
	}

	return true
}

// isNumeric reports whether the lexeme is an integer or float literal,
// allowing one optional leading minus and at most one decimal point
func isNumeric(text string) bool {
	text = strings.TrimPrefix(text, "-")
	if text == "" {
		return false
	}

	sawDot := false
	sawDigit := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '.':
			if sawDot {
				return false
			}
			sawDot = true
		case digits.Contains(c):
			sawDigit = true
		default:
			return false
		}
	}

	return sawDigit
}

// classifyNumber normalizes a numeric literal and picks its kind.  Integers
// drop leading zeros; floats also drop trailing zeros of the fraction.  The
// float/double split is decided by the ORIGINAL fractional length: up to four
// digits fits the narrow float type, anything longer is a double.
// Normalization is idempotent.
func classifyNumber(text string) (string, string) {
	sign := ""
	clean := text
	if strings.HasPrefix(clean, "-") {
		sign = "-"
		clean = clean[1:]
	}

	dot := strings.IndexByte(clean, '.')
	if dot == -1 {
		normalized := strings.TrimLeft(clean, "0")
		if normalized == "" {
			normalized = "0"
		}
		return KindInteger, sign + normalized
	}

	intPart := strings.TrimLeft(clean[:dot], "0")
	if intPart == "" {
		intPart = "0"
	}

	fracPart := clean[dot+1:]
	fracNorm := strings.TrimRight(fracPart, "0")
	if fracNorm == "" {
		fracNorm = "0"
	}

	kind := KindFloat
	if len(fracPart) > 4 {
		kind = KindDouble
	}

	return kind, sign + intPart + "." + fracNorm
}

func isNumericKind(kind string) bool {
	return kind == KindInteger || kind == KindFloat || kind == KindDouble
}

// impliesSubtraction reports whether a token ending an operand can precede a
// binary minus (identifier, literal, closing bracket, or postfix unary)
func impliesSubtraction(t Token) bool {
	switch t.Kind {
	case KindIdentifier, KindInteger, KindFloat, KindDouble, KindChar, KindString, ")", "]", "++", "--":
		return true
	}
	return false
}

// resolveMinus fixes up the scanner's eager handling of '-':
//
//  1. a negative literal scanned right after a subtraction operand is split
//     into a minus operator and a positive literal, and
//  2. an isolated minus followed by a numeric literal is merged into one
//     negative literal when the preceding token cannot be subtracted from.
func resolveMinus(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if isNumericKind(tok.Kind) && strings.HasPrefix(tok.Value, "-") &&
			len(out) > 0 && impliesSubtraction(out[len(out)-1]) {

			minus := Token{
				Kind:  "-",
				Value: "-",
				Line:  tok.Line,
				Col:   tok.Col,
				Start: tok.Start,
				End:   tok.Start + 1,
			}

			tok.Value = tok.Value[1:]
			tok.Col++
			tok.Start++

			out = append(out, minus, tok)
			continue
		}

		if tok.Kind == "-" && i+1 < len(tokens) && isNumericKind(tokens[i+1].Kind) &&
			!strings.HasPrefix(tokens[i+1].Value, "-") &&
			(len(out) == 0 || !impliesSubtraction(out[len(out)-1])) {

			lit := tokens[i+1]
			lit.Value = "-" + lit.Value
			lit.Line = tok.Line
			lit.Col = tok.Col
			lit.Start = tok.Start

			out = append(out, lit)
			i++
			continue
		}

		out = append(out, tok)
	}

	return out
}
