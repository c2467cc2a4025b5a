package shellscript

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
)

var errUnterminatedQuote = errors.New("unterminated quoted command")

/*
ParseScript reads alias definitions from shell script text. It understands
the statements RenderLine writes as well as single-quoted, unquoted and
concatenated forms such as

	alias q='it'\''s'

Lines that are not alias definitions, including comments, are skipped. A
double- or single-quoted command may span several lines.

Aliases are returned in the order they appear; a name may occur more than once.
*/
func ParseScript(r io.Reader) ([]alias.Alias, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading alias script: %w", err)
	}
	p := &scriptParser{src: string(data), line: 1}
	return p.parse()
}

type scriptParser struct {
	src  string
	pos  int
	line int
}

func (p *scriptParser) parse() ([]alias.Alias, error) {
	var aliases []alias.Alias
	for p.pos < len(p.src) {
		startLine := p.line
		line := p.currentLine()
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, "alias ") {
			p.skipLine()
			continue
		}

		p.pos += len(line) - len(trimmed) + len("alias ")
		p.skipBlanks()

		// "alias foo" (a query) and "alias -p" have no '=' directly after the name.
		nameEnd := strings.IndexAny(p.src[p.pos:], "= \t\n")
		if nameEnd <= 0 || p.src[p.pos+nameEnd] != '=' {
			p.skipLine()
			continue
		}
		name := p.src[p.pos : p.pos+nameEnd]
		p.pos += nameEnd + 1

		command, err := p.word()
		if err != nil {
			return nil, fmt.Errorf("line %d: alias %q: %w", startLine, name, err)
		}
		aliases = append(aliases, alias.Alias{Name: name, Command: command})
		p.skipLine()
	}
	return aliases, nil
}

// word reads one shell word starting at p.pos, removing quotes and escapes.
func (p *scriptParser) word() (string, error) {
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case ' ', '\t', '\n', ';':
			return b.String(), nil
		case '"':
			if err := p.doubleQuoted(&b); err != nil {
				return "", err
			}
		case '\'':
			if err := p.singleQuoted(&b); err != nil {
				return "", err
			}
		case '\\':
			if p.pos+1 >= len(p.src) {
				p.pos++
				continue
			}
			next := p.src[p.pos+1]
			if next == '\n' {
				p.line++
			} else {
				b.WriteByte(next)
			}
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return b.String(), nil
}

func (p *scriptParser) doubleQuoted(b *strings.Builder) error {
	p.pos++
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return nil
		case c == '\\' && p.pos+1 < len(p.src) && strings.IndexByte("\\\"$`\n", p.src[p.pos+1]) >= 0:
			next := p.src[p.pos+1]
			if next == '\n' {
				p.line++ // line continuation
			} else {
				b.WriteByte(next)
			}
			p.pos += 2
		default:
			if c == '\n' {
				p.line++
			}
			b.WriteByte(c)
			p.pos++
		}
	}
	return errUnterminatedQuote
}

func (p *scriptParser) singleQuoted(b *strings.Builder) error {
	p.pos++
	end := strings.IndexByte(p.src[p.pos:], '\'')
	if end < 0 {
		return errUnterminatedQuote
	}
	content := p.src[p.pos : p.pos+end]
	p.line += strings.Count(content, "\n")
	b.WriteString(content)
	p.pos += end + 1
	return nil
}

func (p *scriptParser) currentLine() string {
	rest := p.src[p.pos:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}

func (p *scriptParser) skipLine() {
	i := strings.IndexByte(p.src[p.pos:], '\n')
	if i < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos += i + 1
	p.line++
}

func (p *scriptParser) skipBlanks() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}
