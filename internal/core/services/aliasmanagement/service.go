package aliasmanagement

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	repository ports.AliasRepository
	script     ports.ShellScript
	logger     *zap.Logger
}

// NewService creates a new alias management service.
// It panics if repo or script is nil. A nil logger discards logs.
func NewService(repo ports.AliasRepository, script ports.ShellScript, logger *zap.Logger) ports.AliasManagementService {
	if repo == nil {
		panic("repository cannot be nil")
	}
	if script == nil {
		panic("shell script cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repository: repo, script: script, logger: logger}
}

// AddAlias inserts or overwrites an alias and saves the store. Names and
// commands are checked with alias.Alias.Validate first.
// It returns true if an alias with the same name was replaced.
func (s *service) AddAlias(name, command string) (bool, error) {
	if err := (alias.Alias{Name: name, Command: command}).Validate(); err != nil {
		return false, err
	}
	store, err := s.load()
	if err != nil {
		return false, err
	}

	previous, existed := store.Get(name)
	replaced := store.Set(name, command)
	if err := s.save(store); err != nil {
		return false, fmt.Errorf("failed to add alias '%s': %w", name, err)
	}

	if existed {
		s.logger.Info("Replaced alias", zap.String("alias", name), zap.String("previous", previous), zap.String("command", command))
	} else {
		s.logger.Info("Added alias", zap.String("alias", name), zap.String("command", command))
	}
	return replaced, nil
}

// RemoveAlias deletes an alias and saves the store. A name that is not in the
// store is a no-op: nothing is written and no error is returned.
func (s *service) RemoveAlias(name string) (bool, error) {
	store, err := s.load()
	if err != nil {
		return false, err
	}

	if !store.Delete(name) {
		s.logger.Warn("Alias not found, nothing removed", zap.String("alias", name), zap.String("location", s.repository.Location()))
		return false, nil
	}
	if err := s.save(store); err != nil {
		return false, fmt.Errorf("failed to remove alias '%s': %w", name, err)
	}
	s.logger.Info("Removed alias", zap.String("alias", name))
	return true, nil
}

// GetAlias looks up a single alias.
func (s *service) GetAlias(name string) (alias.Alias, bool, error) {
	store, err := s.load()
	if err != nil {
		return alias.Alias{}, false, err
	}
	command, ok := store.Get(name)
	if !ok {
		return alias.Alias{}, false, nil
	}
	return alias.Alias{Name: name, Command: command}, true, nil
}

// ListAliases returns every alias in canonical order.
func (s *service) ListAliases() ([]alias.Alias, error) {
	store, err := s.load()
	if err != nil {
		return nil, err
	}
	return store.Entries(), nil
}

// RenderScript renders every alias as a shell statement, in canonical order.
func (s *service) RenderScript() (string, error) {
	aliases, err := s.ListAliases()
	if err != nil {
		return "", err
	}
	return s.script.Render(aliases), nil
}

// RenderAlias renders the statement for one alias. It reports false when the
// alias does not exist.
func (s *service) RenderAlias(name string) (string, bool, error) {
	a, ok, err := s.GetAlias(name)
	if err != nil || !ok {
		return "", false, err
	}
	return s.script.Render([]alias.Alias{a}), true, nil
}

// ImportScript adds every alias defined in a shell script to the store and
// saves it once. Later definitions of the same name win.
func (s *service) ImportScript(r io.Reader) (int, error) {
	imported, err := s.script.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse alias script: %w", err)
	}
	for _, a := range imported {
		if err := a.Validate(); err != nil {
			return 0, fmt.Errorf("failed to import alias script: %w", err)
		}
	}

	store, err := s.load()
	if err != nil {
		return 0, err
	}

	for _, a := range imported {
		store.Set(a.Name, a.Command)
	}
	count := len(imported)
	if count == 0 {
		s.logger.Debug("No aliases found to import")
		return 0, nil
	}
	if err := s.save(store); err != nil {
		return 0, fmt.Errorf("failed to import aliases: %w", err)
	}
	s.logger.Info("Imported aliases", zap.Int("count", count))
	return count, nil
}

// ExportTo writes the whole store into dst, replacing its contents.
func (s *service) ExportTo(dst ports.AliasRepository) (int, error) {
	if dst == nil {
		return 0, fmt.Errorf("destination repository is not initialized")
	}
	store, err := s.load()
	if err != nil {
		return 0, err
	}
	if err := dst.Save(store); err != nil {
		return 0, fmt.Errorf("failed to export aliases to %s: %w", dst.Location(), err)
	}
	s.logger.Info("Exported aliases", zap.Int("count", store.Len()), zap.String("destination", dst.Location()))
	return store.Len(), nil
}

func (s *service) load() (*alias.Store, error) {
	store, err := s.repository.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load aliases from %s: %w", s.repository.Location(), err)
	}
	return store, nil
}

func (s *service) save(store *alias.Store) error {
	if err := s.repository.Save(store); err != nil {
		return fmt.Errorf("failed to save aliases to %s: %w", s.repository.Location(), err)
	}
	return nil
}
