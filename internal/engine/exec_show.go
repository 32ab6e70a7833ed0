package engine

import (
	"fmt"
	"os"

	"minisql/internal/sql"
)

func (e *Engine) execShowTable(s *sql.ShowTableStmt) (*Result, error) {
	rows, err := e.loadExisting(s.TableName)
	if err != nil {
		return nil, err
	}
	return &Result{Header: rows[0], Rows: rows[1:]}, nil
}

func (e *Engine) execShowTables() (*Result, error) {
	tables, err := e.store.List()
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(tables))
	for _, t := range tables {
		out = append(out, []string{t})
	}
	return &Result{Header: []string{"table"}, Rows: out}, nil
}

func (e *Engine) execShowPath() (*Result, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "(unknown)"
	}
	return &Result{
		Message: fmt.Sprintf("Current working directory: %s\nData directory:           %s", wd, e.store.Root()),
	}, nil
}
