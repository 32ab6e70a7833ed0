package engine

import (
	"fmt"

	"minisql/internal/sql"
)

func (e *Engine) execInsert(s *sql.InsertStmt) (*Result, error) {
	rows, err := e.loadExisting(s.TableName)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	if len(s.Values) != len(header) {
		return nil, fmt.Errorf("column count mismatch: expected %d values, got %d", len(header), len(s.Values))
	}

	rows = append(rows, s.Values)
	if err := e.store.Save(s.TableName, rows); err != nil {
		return nil, fmt.Errorf("insert into %q: %w", s.TableName, err)
	}

	return &Result{
		Message:  fmt.Sprintf("Inserted 1 row into %q.", s.TableName),
		Affected: 1,
	}, nil
}
