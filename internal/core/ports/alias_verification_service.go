package ports

import "github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"

// Mismatch describes an alias whose rendered form did not reproduce its command.
type Mismatch struct {
	Alias alias.Alias
	Got   string
}

// AliasVerificationService checks rendered aliases against a real shell.
type AliasVerificationService interface {
	Verify(aliases []alias.Alias) ([]Mismatch, error)
}
