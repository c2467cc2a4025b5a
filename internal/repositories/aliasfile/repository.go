package aliasfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AntonioJCosta/aliasdb/internal/adapters/storecodec"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasdb/internal/core/domain/format"
	"github.com/AntonioJCosta/aliasdb/internal/core/ports"
	"go.uber.org/zap"
)

const defaultFileMode fs.FileMode = 0644

// Options configures a Repository.
type Options struct {
	// AllowMissing makes Load return an empty store when the file does not
	// exist. The file is then created by the first Save.
	AllowMissing bool
	Logger       *zap.Logger
}

/*
Repository persists an alias store in a single file using one of the store
codecs. It implements the ports.AliasRepository interface.
*/
type Repository struct {
	path         string
	codec        ports.StoreCodec
	allowMissing bool
	logger       *zap.Logger
}

// NewRepository creates a new Repository for the file at path, stored in format f.
func NewRepository(path string, f format.Format, opts Options) (ports.AliasRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("alias file path cannot be empty")
	}
	codec, err := storecodec.ForFormat(f)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		path:         path,
		codec:        codec,
		allowMissing: opts.AllowMissing,
		logger:       logger.With(zap.String("path", path), zap.Stringer("format", f)),
	}, nil
}

// Location implements the ports.AliasRepository interface.
func (r *Repository) Location() string {
	return toUserFriendlyPath(r.path)
}

// Load implements the ports.AliasRepository interface.
// The file is read completely and closed before decoding starts.
func (r *Repository) Load() (*alias.Store, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if r.allowMissing {
				r.logger.Debug("Alias file does not exist, starting with an empty store")
				return alias.NewStore(), nil
			}
			return nil, fmt.Errorf("%w: %s", alias.ErrStoreNotFound, r.Location())
		}
		return nil, fmt.Errorf("failed to read alias file %s: %w", r.Location(), err)
	}

	store, err := r.codec.Decode(data)
	if err != nil {
		var parseErr *alias.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = r.Location()
		}
		return nil, err
	}
	r.logger.Debug("Loaded alias store", zap.Int("aliases", store.Len()), zap.Int("bytes", len(data)))
	return store, nil
}

// Save implements the ports.AliasRepository interface.
// The whole document is encoded in memory and then written atomically, so a
// failed write leaves the previous file untouched.
func (r *Repository) Save(store *alias.Store) error {
	data, err := r.codec.Encode(store)
	if err != nil {
		return fmt.Errorf("failed to encode alias store for %s: %w", r.Location(), err)
	}

	mode := defaultFileMode
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := WriteFileAtomic(r.path, data, mode); err != nil {
		return fmt.Errorf("failed to write alias file %s: %w", r.Location(), err)
	}
	r.logger.Debug("Saved alias store", zap.Int("aliases", store.Len()), zap.Int("bytes", len(data)))
	return nil
}
