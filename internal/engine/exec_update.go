package engine

import (
	"fmt"

	"minisql/internal/sql"
)

func (e *Engine) execUpdate(s *sql.UpdateStmt) (*Result, error) {
	rows, err := e.loadExisting(s.TableName)
	if err != nil {
		return nil, err
	}

	newRows, affected, err := applyUpdate(rows, s.Assignments, s.Where)
	if err != nil {
		return nil, err
	}

	if err := e.store.Save(s.TableName, newRows); err != nil {
		return nil, fmt.Errorf("update %q: %w", s.TableName, err)
	}

	return &Result{
		Message:  fmt.Sprintf("Updated %d row(s) in %q.", affected, s.TableName),
		Affected: affected,
	}, nil
}
