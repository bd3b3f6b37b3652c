// Package cas implements the packaging record store using a file-per-record
// strategy keyed by hashed package refs.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.libhal.dev/halpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RecordStore under <root>/.halpack/store.
type Store struct{}

// NewStore creates a new record store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the packaging record for the given package ref.
// A missing record is not an error; it yields a nil record.
func (s *Store) Get(root, ref string) (*domain.BuildRecord, error) {
	filename := s.getFilename(root, ref)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var rec domain.BuildRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &rec, nil
}

// Put stores the packaging record, replacing any previous record for the
// same ref.
func (s *Store) Put(root string, rec domain.BuildRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, rec.Ref())
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(root, ref string) string {
	hash := sha256.Sum256([]byte(ref))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hexHash+".json")
}
