package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// load reads a document from disk. A missing file is the first-run case;
// unreadable or malformed content is recovered by falling back to the
// default document. Neither is propagated as an error.
func load(path string) models.Document {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("ledger: document unreadable, starting with defaults")
		}
		return models.DefaultDocument()
	}

	var doc models.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ledger: document malformed, starting with defaults")
		return models.DefaultDocument()
	}

	doc.Backfill()
	return doc
}

// save rewrites the whole document. The write goes to a temporary file in
// the same directory which is then renamed over the target, so a failed
// write never leaves a truncated document behind. When backups are
// enabled, the previous file is copied aside first.
func (s *Store) save() error {
	if s.doc.Settings.BackupEnabled {
		if err := s.backup(); err != nil {
			log.Warn().Err(err).Msg("ledger: backup failed")
		}
	}

	content, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}

	return nil
}

// Ping verifies that the document location is usable. A missing file is
// fine, an inaccessible directory is not.
func (s *Store) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	_, err = os.Stat(filepath.Dir(s.path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// backup copies the currently persisted file to a sibling named after the
// original plus a timestamp suffix. Nothing to do when no file exists yet.
func (s *Store) backup() error {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s.backup_%s", s.path, time.Now().Format("20060102_150405"))
	return os.WriteFile(name, content, 0o644)
}

// parseDateOrEmpty parses a YYYY-MM-DD string, treating the empty string
// as unset.
func parseDateOrEmpty(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return types.ParseDate(s)
}
