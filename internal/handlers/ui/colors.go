package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // file locations and other secondary details
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Successf writes a success line to w.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessColor(fmt.Sprintf(format, args...)))
}

// Errorf writes an error line to w.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorColor(fmt.Sprintf(format, args...)))
}

// SuccessAt writes a success line to w that ends with location in the detail color.
func SuccessAt(w io.Writer, location, format string, args ...any) {
	writeAt(w, SuccessColor, location, format, args...)
}

// WarnAt writes a warning line to w that ends with location in the detail color.
func WarnAt(w io.Writer, location, format string, args ...any) {
	writeAt(w, WarningColor, location, format, args...)
}

// InfoAt writes an informational line to w that ends with location in the detail color.
func InfoAt(w io.Writer, location, format string, args ...any) {
	writeAt(w, InfoColor, location, format, args...)
}

func writeAt(w io.Writer, paint func(a ...any) string, location, format string, args ...any) {
	fmt.Fprintln(w, paint(fmt.Sprintf(format, args...)), DetailColor(location))
}
