package logging

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// diagBannerStrings maps diagnostic type tags to banner headings
var diagBannerStrings = map[string]string{
	DiagUnfinishedFlux:   "Lexical",
	DiagInvalidDelimiter: "Lexical",
	DiagUnclosedString:   "Lexical",
	DiagUnclosedChar:     "Lexical",
	DiagUnclosedComment:  "Lexical",
	DiagUnrecognizedChar: "Lexical",
	DiagParserError:      "Syntax",
	DiagSemanticError:    "Semantic",
	DiagInternalError:    "Internal",
}

// displayDiagnostic prints a diagnostic with its banner and, when position
// information is available, the offending source line with carets beneath the
// selected span
func displayDiagnostic(src string, d Diagnostic) {
	displayBanner(d)
	fmt.Println(d.Message)

	if d.Line > 0 {
		displayCodeSelection(src, d)
	}
}

// displayBanner displays the banner on top of all diagnostics
func displayBanner(d Diagnostic) {
	fmt.Print("\n\n-- ")
	kindStr, ok := diagBannerStrings[d.Type]
	if !ok {
		kindStr = "Analysis"
	}

	ErrorStyleBG.Print(kindStr + " Error")
	fmt.Print(" ")

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(kindStr) - 8
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(d.Type)
}

// displayCodeSelection displays the erroneous source line (with its line
// number) and highlights the selected span
func displayCodeSelection(src string, d Diagnostic) {
	fmt.Println()

	lines := strings.Split(src, "\n")
	if d.Line > len(lines) {
		return
	}
	line := strings.ReplaceAll(lines[d.Line-1], "\t", "    ")

	// pad line numbers so the gutter lines up with the caret row
	lineNumberWidth := len(strconv.Itoa(d.Line)) + 1
	lineNumberFmtStr := "%-" + strconv.Itoa(lineNumberWidth) + "v"

	InfoColorFG.Print(fmt.Sprintf(lineNumberFmtStr, d.Line))
	fmt.Print("|  ")
	fmt.Println(line)

	selWidth := d.End - d.Start
	if selWidth < 1 {
		selWidth = 1
	}
	if d.Col-1+selWidth > len(line) {
		selWidth = len(line) - d.Col + 1
	}
	if selWidth < 1 {
		selWidth = 1
	}

	fmt.Print(strings.Repeat(" ", lineNumberWidth), "|  ")
	fmt.Print(strings.Repeat(" ", d.Col-1))
	ErrorColorFG.Println(strings.Repeat("^", selWidth))
	fmt.Println()
}

// DisplayCheckFinished displays a closing message for the check command
func DisplayCheckFinished(errorCount int) {
	fmt.Print("\n")

	if errorCount == 0 {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" errors)")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Println(" error)")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Println(" errors)")
	}
}

// DisplayFatal prints an unrecoverable internal failure
func DisplayFatal(msg string) {
	PrintErrorMessage("Fatal Error", errors.New(msg))
}
