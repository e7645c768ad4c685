// Package store writes rendered icons into the SupportPac icon tree.
//
// Existing icons are moved aside to a backup file the first time they are
// replaced. Later runs overwrite the icon in place and leave that first
// backup untouched.
package store

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/pgp-icons/internal/icon"
)

// DefaultBackupSuffix is appended to an icon path to name its backup.
const DefaultBackupSuffix = ".bak"

// Store saves icons below a base directory.
type Store struct {
	baseDir      string
	backupSuffix string
	createDirs   bool
	out          io.Writer
	log          *zap.Logger
}

// Option configures a Store.
type Option func(s *Store)

// WithBackupSuffix overrides the ".bak" backup suffix.
func WithBackupSuffix(suffix string) Option {
	return func(s *Store) {
		if suffix != "" {
			s.backupSuffix = suffix
		}
	}
}

// WithCreateDirs makes Save create missing icon directories instead of
// failing.
func WithCreateDirs(enabled bool) Option {
	return func(s *Store) {
		s.createDirs = enabled
	}
}

// WithOutput sets where the one-line progress messages go.
func WithOutput(w io.Writer) Option {
	return func(s *Store) {
		s.out = w
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New creates a Store rooted at baseDir.
func New(baseDir string, options ...Option) *Store {
	s := &Store{
		baseDir:      baseDir,
		backupSuffix: DefaultBackupSuffix,
		out:          io.Discard,
		log:          zap.NewNop(),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// BaseDir returns the icon tree root.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the file path of t below the base directory.
func (s *Store) Path(t icon.Target) string {
	return filepath.Join(s.baseDir, t.RelPath())
}

// BackupPath returns the backup file path for an icon path.
func (s *Store) BackupPath(path string) string {
	return path + s.backupSuffix
}

// Backup moves an existing file at path to its backup name, unless a backup
// already exists. It reports whether a backup was made.
func (s *Store) Backup(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	backup := s.BackupPath(path)
	if _, err := os.Stat(backup); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", backup, err)
	}

	if err := os.Rename(path, backup); err != nil {
		return false, fmt.Errorf("backing up %s: %w", path, err)
	}
	return true, nil
}

// Save backs up the current icon if needed and writes img as an indexed GIF.
// It returns the path relative to the base directory.
func (s *Store) Save(t icon.Target, img image.Image) (string, error) {
	rel := t.RelPath()
	path := s.Path(t)

	if s.createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("creating directory for %s: %w", rel, err)
		}
	}

	backedUp, err := s.Backup(path)
	if err != nil {
		return "", err
	}
	if backedUp {
		s.log.Info("backed up original icon",
			zap.String("path", rel),
			zap.String("backup", rel+s.backupSuffix))
	}

	if err := writeFile(path, img); err != nil {
		return "", err
	}

	s.log.Debug("icon written",
		zap.String("path", rel),
		zap.Int("size", t.Size),
		zap.Stringer("variant", t.Variant))
	fmt.Fprintf(s.out, "  Saved: %s\n", rel)
	return rel, nil
}

func writeFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
