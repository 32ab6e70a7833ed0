package sql

import "fmt"

// parseDropTable parses:
//
//	DROP TABLE name;
func parseDropTable(q string) (Statement, error) {
	name := nameAfterKeyword(q, "TABLE")
	if name == "" {
		return nil, fmt.Errorf("DROP TABLE: missing table name")
	}

	return &DropTableStmt{TableName: name}, nil
}
