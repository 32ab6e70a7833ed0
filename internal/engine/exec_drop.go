package engine

import (
	"fmt"

	"minisql/internal/sql"
	"minisql/internal/storage"
)

func (e *Engine) execDropTable(s *sql.DropTableStmt) (*Result, error) {
	if err := storage.ValidateName(s.TableName); err != nil {
		return nil, err
	}
	if !e.store.Exists(s.TableName) {
		return nil, fmt.Errorf("table %q not found", s.TableName)
	}

	if err := e.store.Remove(s.TableName); err != nil {
		return nil, fmt.Errorf("drop table %q: %w", s.TableName, err)
	}

	e.log.WithField("table", s.TableName).Debug("table dropped")
	return &Result{
		Message: fmt.Sprintf("Dropped table %q.", s.TableName),
	}, nil
}
