package engine

import (
	"fmt"

	"minisql/internal/sql"
)

func (e *Engine) execAlterTable(s *sql.AlterTableStmt) (*Result, error) {
	rows, err := e.loadExisting(s.TableName)
	if err != nil {
		return nil, err
	}

	if s.AddColumn != "" {
		return e.alterAdd(s.TableName, s.AddColumn, rows)
	}
	return e.alterDrop(s.TableName, s.DropColumn, rows)
}

// alterAdd appends the new name to the header and an empty cell to every
// data row.
func (e *Engine) alterAdd(table, col string, rows [][]string) (*Result, error) {
	for _, existing := range rows[0] {
		if existing == col {
			return nil, fmt.Errorf("column %q already exists", col)
		}
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		cell := ""
		if r == 0 {
			cell = col
		}
		newRow := make([]string, 0, len(row)+1)
		newRow = append(newRow, row...)
		newRow = append(newRow, cell)
		out[r] = newRow
	}

	if err := e.store.Save(table, out); err != nil {
		return nil, fmt.Errorf("alter table %q: %w", table, err)
	}
	return &Result{
		Message: fmt.Sprintf("Added column %q to table %q.", col, table),
	}, nil
}

// alterDrop removes the cell at the column's index from every row,
// header included. Rows shorter than the index pass through unchanged.
func (e *Engine) alterDrop(table, col string, rows [][]string) (*Result, error) {
	pos, ok := columnIndex(rows[0])[col]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", col)
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		if pos >= len(row) {
			out[r] = row
			continue
		}
		newRow := make([]string, 0, len(row)-1)
		newRow = append(newRow, row[:pos]...)
		newRow = append(newRow, row[pos+1:]...)
		out[r] = newRow
	}

	if err := e.store.Save(table, out); err != nil {
		return nil, fmt.Errorf("alter table %q: %w", table, err)
	}
	return &Result{
		Message: fmt.Sprintf("Dropped column %q from table %q.", col, table),
	}, nil
}
