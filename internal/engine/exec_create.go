package engine

import (
	"fmt"

	"minisql/internal/sql"
	"minisql/internal/storage"
)

func (e *Engine) execCreateTable(s *sql.CreateTableStmt) (*Result, error) {
	if err := storage.ValidateName(s.TableName); err != nil {
		return nil, err
	}
	if e.store.Exists(s.TableName) {
		return nil, fmt.Errorf("table %q already exists", s.TableName)
	}

	image := [][]string{s.Columns}
	if err := e.store.Save(s.TableName, image); err != nil {
		return nil, fmt.Errorf("create table %q: %w", s.TableName, err)
	}

	e.log.WithField("table", s.TableName).Debug("table created")
	return &Result{
		Message: fmt.Sprintf("Created table %q with %d column(s).", s.TableName, len(s.Columns)),
	}, nil
}
