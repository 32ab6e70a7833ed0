package sql

import (
	"fmt"
	"strings"
)

// parseCreateTable parses:
//
//	CREATE TABLE name (col1, col2, ...);
func parseCreateTable(q string) (Statement, error) {
	// q has been trimmed and the trailing ';' removed; we already know
	// it starts with some form of CREATE TABLE.
	kw := findKeyword(q, "TABLE")
	if kw == -1 {
		return nil, fmt.Errorf("CREATE TABLE: missing keyword TABLE")
	}

	openIdx := strings.Index(q[kw:], "(")
	if openIdx == -1 {
		return nil, fmt.Errorf("CREATE TABLE: column list required in parentheses")
	}
	openIdx += kw

	closeIdx := strings.Index(q[openIdx+1:], ")")
	if closeIdx == -1 {
		return nil, fmt.Errorf("CREATE TABLE: missing closing ')'")
	}
	closeIdx += openIdx + 1

	name := nameAfterKeyword(q[:openIdx], "TABLE")
	if name == "" {
		return nil, fmt.Errorf("CREATE TABLE: missing table name")
	}

	cols := parseParenList(q[openIdx : closeIdx+1])
	if len(cols) == 0 {
		return nil, fmt.Errorf("CREATE TABLE: empty column list")
	}
	for _, c := range cols {
		if c == "" {
			return nil, fmt.Errorf("CREATE TABLE: empty column name in list")
		}
	}

	return &CreateTableStmt{TableName: name, Columns: cols}, nil
}
