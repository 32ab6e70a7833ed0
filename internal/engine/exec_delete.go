package engine

import (
	"fmt"

	"minisql/internal/sql"
)

func (e *Engine) execDelete(s *sql.DeleteStmt) (*Result, error) {
	rows, err := e.loadExisting(s.TableName)
	if err != nil {
		return nil, err
	}

	// No WHERE: truncation needs explicit confirmation. Nothing is
	// written here; the caller invokes Truncate on consent.
	if s.Where == nil {
		return &Result{
			Message:      fmt.Sprintf("This will delete ALL records from table %q.", s.TableName),
			NeedsConfirm: true,
		}, nil
	}

	newRows, deleted, err := applyDelete(rows, s.Where)
	if err != nil {
		return nil, err
	}

	if err := e.store.Save(s.TableName, newRows); err != nil {
		return nil, fmt.Errorf("delete from %q: %w", s.TableName, err)
	}

	return &Result{
		Message:  fmt.Sprintf("Deleted %d row(s) from %q.", deleted, s.TableName),
		Affected: deleted,
	}, nil
}

// Truncate removes every data row of a table, keeping the header. It is
// the confirmed second half of an unconditional DELETE.
func (e *Engine) Truncate(table string) (*Result, error) {
	rows, err := e.loadExisting(table)
	if err != nil {
		return nil, err
	}

	if err := e.store.Save(table, [][]string{rows[0]}); err != nil {
		return nil, fmt.Errorf("truncate %q: %w", table, err)
	}

	e.log.WithField("table", table).Debug("table truncated")
	return &Result{
		Message:  fmt.Sprintf("All records deleted from %q.", table),
		Affected: len(rows) - 1,
	}, nil
}
