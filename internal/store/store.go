// Package store persists the proposal form state as a single JSON snapshot
// on disk. Persistence is best effort: the in-memory state is authoritative
// for the running session and storage failures never abort a mutation.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agencyforge/roi-proposal/internal/logo"
	"github.com/agencyforge/roi-proposal/internal/state"
	"go.uber.org/zap"
)

// Store reads and writes the durable form snapshot. The whole object is the
// unit of synchronization: every Save overwrites the entire record, last
// write wins, no diffing.
type Store struct {
	path     string
	logoHost string
	logger   *zap.Logger
}

// NewStore returns a Store writing to path. logoHost is used to detect a
// historically malformed persisted logo URL during Load.
func NewStore(path, logoHost string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logoHost: logoHost, logger: logger}
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted form state merged over the defaults: keys
// present in the snapshot take precedence, keys the snapshot predates are
// backfilled from the defaults. A missing, unreadable, or unparseable
// snapshot yields the defaults; the failure is logged and never propagated.
func (s *Store) Load() state.FormState {
	loaded := state.DefaultFormState()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read form snapshot",
				zap.String("op", "store.Load"),
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		return loaded
	}

	// Unmarshaling over a pre-populated struct keeps defaults for any key the
	// snapshot does not carry.
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("failed to parse form snapshot",
			zap.String("op", "store.Load"),
			zap.String("path", s.path),
			zap.Error(err),
		)
		return state.DefaultFormState()
	}

	if logo.IsLegacyEmptyDomainURL(loaded.ClientLogoURL, s.logoHost) {
		s.logger.Info("clearing invalid persisted logo URL",
			zap.String("op", "store.Load"),
			zap.String("url", loaded.ClientLogoURL),
		)
		loaded.ClientLogoURL = ""
	}

	return loaded
}

// Save overwrites the snapshot with the full form state. The returned error
// is informational; callers continue with the in-memory state regardless.
func (s *Store) Save(formState state.FormState) error {
	data, err := json.MarshalIndent(formState, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode form snapshot",
			zap.String("op", "store.Save"),
			zap.Error(err),
		)
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			s.logger.Error("failed to create snapshot directory",
				zap.String("op", "store.Save"),
				zap.String("path", s.path),
				zap.Error(err),
			)
			return err
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Error("failed to write form snapshot",
			zap.String("op", "store.Save"),
			zap.String("path", s.path),
			zap.Error(err),
		)
		return err
	}

	return nil
}
