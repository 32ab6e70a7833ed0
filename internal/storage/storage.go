// Package storage defines the persistence seam for whole table images.
// A table image is an ordered row sequence whose row 0 is the header;
// the engine always reads and rewrites images wholesale, one statement
// at a time.
package storage

import (
	"fmt"
	"regexp"
)

// Store resolves table names to locations and moves whole images in and
// out of them.
//
// Different implementations are possible:
//   - on-disk, one delimited-text file per table
//   - in-memory (tests, embedding)
type Store interface {
	// Path resolves a table name to its storage location.
	Path(table string) string

	// Exists reports whether the table's location exists.
	Exists(table string) bool

	// Load returns the full decoded row sequence, or an empty sequence
	// when the location does not exist or cannot be opened. Stored rows
	// are not validated against the header.
	Load(table string) ([][]string, error)

	// Save replaces the table's contents with the encoded form of rows.
	Save(table string, rows [][]string) error

	// Remove deletes the table's storage location.
	Remove(table string) error

	// List returns the names of all stored tables, sorted.
	List() ([]string, error)

	// Root describes where the store keeps its tables.
	Root() string
}

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateName rejects table names that are empty or carry characters
// outside [A-Za-z0-9_], so a name can never escape the storage root when
// used as a path segment.
func ValidateName(table string) error {
	if !tableNameRe.MatchString(table) {
		return fmt.Errorf("invalid table name %q: only letters, digits and '_' are allowed", table)
	}
	return nil
}
