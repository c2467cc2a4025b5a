/*
Package shellscript converts alias definitions to and from POSIX shell
script text.
*/
package shellscript

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
)

// Inside double quotes a POSIX shell still interprets these four characters.
var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

/*
EscapeDoubleQuoted escapes s for embedding between double quotes so that the
shell reproduces s exactly. Backslash, double quote, dollar and backtick get a
backslash prefix; everything else, including single quotes and newlines, is
already literal inside double quotes.

Example:

	EscapeDoubleQuoted(`echo "$HOME"`) // echo \"\$HOME\"
*/
func EscapeDoubleQuoted(s string) string {
	return doubleQuoteEscaper.Replace(s)
}

// RenderLine returns the `alias name="command"` statement for a, newline terminated.
func RenderLine(a alias.Alias) string {
	return fmt.Sprintf("alias %s=\"%s\"\n", a.Name, EscapeDoubleQuoted(a.Command))
}

// POSIXScript implements the ports.ShellScript interface for sh-compatible shells.
type POSIXScript struct{}

// NewPOSIXScript creates a new POSIXScript.
func NewPOSIXScript() ports.ShellScript {
	return &POSIXScript{}
}

// Render returns one alias statement per entry, in the order given.
// No entries render as an empty script.
func (p *POSIXScript) Render(aliases []alias.Alias) string {
	var b strings.Builder
	for _, a := range aliases {
		b.WriteString(RenderLine(a))
	}
	return b.String()
}

// Parse implements the ports.ShellScript interface. See ParseScript.
func (p *POSIXScript) Parse(r io.Reader) ([]alias.Alias, error) {
	return ParseScript(r)
}
