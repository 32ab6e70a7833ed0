// Package filestore is the on-disk Store: one delimited-text file per
// table under a single root directory.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"minisql/internal/record"
)

// Suffix is the fixed extension appended to table names on disk.
const Suffix = ".csv"

// FileStore stores each table as <root>/<name>.csv. Writes go to a
// temporary file first and are renamed into place, so a table image is
// either fully replaced or untouched.
type FileStore struct {
	dir string
	log logrus.FieldLogger
}

// New creates the root directory if absent and returns a store over it.
// A nil logger disables logging.
func New(dir string, log logrus.FieldLogger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create root %s: %w", dir, err)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Root returns the store's root directory.
func (s *FileStore) Root() string { return s.dir }

// Path resolves a table name to its file location.
func (s *FileStore) Path(table string) string {
	return filepath.Join(s.dir, table+Suffix)
}

// Exists reports whether the table's file exists.
func (s *FileStore) Exists(table string) bool {
	_, err := os.Stat(s.Path(table))
	return err == nil
}

// Load reads and decodes the whole table file. A missing or unreadable
// file yields an empty image, not an error.
func (s *FileStore) Load(table string) ([][]string, error) {
	data, err := os.ReadFile(s.Path(table))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithField("table", table).WithError(err).Debug("table file unreadable")
		}
		return nil, nil
	}
	return record.Decode(string(data)), nil
}

// Save encodes rows into a temporary file in the root directory and
// renames it over the table's location.
func (s *FileStore) Save(table string, rows [][]string) error {
	tmp, err := os.CreateTemp(s.dir, table+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: create temp for %s: %w", table, err)
	}
	_, werr := tmp.WriteString(record.Encode(rows))
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmp.Name())
		if werr != nil {
			return fmt.Errorf("filestore: write %s: %w", table, werr)
		}
		return fmt.Errorf("filestore: close temp for %s: %w", table, cerr)
	}
	if err := os.Rename(tmp.Name(), s.Path(table)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: replace %s: %w", table, err)
	}
	s.log.WithFields(logrus.Fields{"table": table, "rows": len(rows)}).Debug("table image rewritten")
	return nil
}

// Remove deletes the table's file.
func (s *FileStore) Remove(table string) error {
	if err := os.Remove(s.Path(table)); err != nil {
		return fmt.Errorf("filestore: remove %s: %w", table, err)
	}
	return nil
}

// List returns the names of all table files in the root, sorted.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("filestore: list tables: %w", err)
	}
	var tables []string
	for _, ent := range entries {
		name := ent.Name()
		if strings.HasSuffix(name, Suffix) {
			tables = append(tables, strings.TrimSuffix(name, Suffix))
		}
	}
	sort.Strings(tables)
	return tables, nil
}
