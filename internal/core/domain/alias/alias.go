/*
Package alias defines the core domain entities for shell aliases: a single
alias definition and the store that holds all of them.
*/
package alias

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyName is returned when an alias is given an empty name.
	ErrEmptyName = errors.New("alias name cannot be empty")
	// ErrInvalidName is returned for names a POSIX shell would not accept as
	// a single alias name.
	ErrInvalidName = errors.New("invalid alias name")
	// ErrInvalidCommand is returned for commands that are not valid UTF-8 text.
	ErrInvalidCommand = errors.New("alias command is not valid UTF-8")
)

// Characters other than ASCII letters and digits allowed in alias names.
const namePunctuation = "_!%,@.-"

/*
Alias represents a single alias definition, consisting of a short name and the
full command it expands to. This is a core domain entity.
*/
type Alias struct {
	Name    string
	Command string
}

// Validate checks the name with ValidateName and the command with ValidateCommand.
func (a Alias) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	return ValidateCommand(a.Command)
}

/*
ValidateName reports whether name can be written unquoted as an alias name.
Names use ASCII letters, digits and the characters _ ! % , @ . - and must not
start with "-".
*/
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if name[0] == '-' {
		return fmt.Errorf("%w %q: must not start with '-'", ErrInvalidName, name)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("%w %q: character %q is not allowed", ErrInvalidName, name, r)
		}
	}
	return nil
}

// ValidateCommand reports whether command is valid UTF-8.
func ValidateCommand(command string) error {
	if !utf8.ValidString(command) {
		return ErrInvalidCommand
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(namePunctuation, r)
}
