// Package engine executes parsed statements against a storage.Store.
// Every handler runs one full load-validate-mutate-store cycle; nothing
// is cached between statements.
package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"minisql/internal/sql"
	"minisql/internal/storage"
)

// Engine is the command engine: one handler per statement kind.
type Engine struct {
	store storage.Store
	log   logrus.FieldLogger
}

// New creates an engine over the given store. A nil logger disables
// logging.
func New(store storage.Store, log logrus.FieldLogger) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{store: store, log: log}
}

// Execute runs one parsed statement and returns its result. Statement
// failures come back as errors with no partial effect: handlers validate
// fully before mutating and perform at most one store.
func (e *Engine) Execute(stmt sql.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.execCreateTable(s)
	case *sql.InsertStmt:
		return e.execInsert(s)
	case *sql.UpdateStmt:
		return e.execUpdate(s)
	case *sql.DeleteStmt:
		return e.execDelete(s)
	case *sql.AlterTableStmt:
		return e.execAlterTable(s)
	case *sql.DropTableStmt:
		return e.execDropTable(s)
	case *sql.SelectStmt:
		return e.execSelect(s)
	case *sql.ShowTableStmt:
		return e.execShowTable(s)
	case *sql.ShowTablesStmt:
		return e.execShowTables()
	case *sql.ShowPathStmt:
		return e.execShowPath()
	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}

// loadExisting validates the table name and loads its image, failing
// when the table is missing or empty.
func (e *Engine) loadExisting(table string) ([][]string, error) {
	if err := storage.ValidateName(table); err != nil {
		return nil, err
	}
	rows, err := e.store.Load(table)
	if err != nil {
		return nil, fmt.Errorf("load table %q: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table %q not found or empty", table)
	}
	return rows, nil
}

// columnIndex builds the one-shot header name to position mapping used
// to resolve every column reference in a statement. Duplicate names
// resolve to the last position, as positional binding dictates.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}
