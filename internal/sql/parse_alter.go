package sql

import "fmt"

// parseAlterTable parses:
//
//	ALTER TABLE name ADD col;
//	ALTER TABLE name DROP col;
func parseAlterTable(q string) (Statement, error) {
	name := nameAfterKeyword(q, "TABLE")
	if name == "" {
		return nil, fmt.Errorf("ALTER TABLE: missing table name")
	}

	addPos := findKeyword(q, "ADD")
	dropPos := findKeyword(q, "DROP")

	switch {
	case addPos != -1 && dropPos != -1:
		return nil, fmt.Errorf("ALTER TABLE: cannot use both ADD and DROP in one statement")
	case addPos == -1 && dropPos == -1:
		return nil, fmt.Errorf("ALTER TABLE: expected ADD or DROP after table name")
	case addPos != -1:
		col := stripTerminator(q[addPos+len("ADD"):])
		if col == "" {
			return nil, fmt.Errorf("ALTER TABLE: missing column name for ADD")
		}
		return &AlterTableStmt{TableName: name, AddColumn: col}, nil
	default:
		col := stripTerminator(q[dropPos+len("DROP"):])
		if col == "" {
			return nil, fmt.Errorf("ALTER TABLE: missing column name for DROP")
		}
		return &AlterTableStmt{TableName: name, DropColumn: col}, nil
	}
}
