package sql

import (
	"fmt"
	"strings"
)

// parseShow parses the SHOW family:
//
//	SHOW TABLE name;
//	SHOW TABLES;
//	SHOW PATH;
func parseShow(q string) (Statement, error) {
	tokens := strings.Fields(strings.ToUpper(q))
	if len(tokens) < 2 {
		return nil, fmt.Errorf("SHOW: expected TABLE, TABLES or PATH")
	}

	switch tokens[1] {
	case "TABLES":
		return &ShowTablesStmt{}, nil
	case "PATH":
		return &ShowPathStmt{}, nil
	case "TABLE":
		name := nameAfterKeyword(q, "TABLE")
		if name == "" {
			return nil, fmt.Errorf("SHOW TABLE: missing table name")
		}
		return &ShowTableStmt{TableName: name}, nil
	default:
		return nil, fmt.Errorf("SHOW: expected TABLE, TABLES or PATH")
	}
}
