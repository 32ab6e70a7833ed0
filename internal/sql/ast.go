package sql

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
}

// WhereExpr is a single-equality WHERE condition: column = literal.
type WhereExpr struct {
	Column string
	Value  string
}

// Assignment is one "column = literal" pair from a SET clause.
type Assignment struct {
	Column string
	Value  string
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []string
}

// InsertStmt represents a parsed INSERT INTO ... VALUES (...) statement.
type InsertStmt struct {
	TableName string
	Values    []string
}

// UpdateStmt represents a parsed UPDATE ... SET ... [WHERE ...] statement.
// A nil Where means every data row is updated.
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       *WhereExpr
}

// DeleteStmt represents a parsed DELETE FROM ... [WHERE ...] statement.
// A nil Where means the whole table is to be truncated, which the engine
// only performs after explicit confirmation.
type DeleteStmt struct {
	TableName string
	Where     *WhereExpr
}

// AlterTableStmt represents ALTER TABLE ... ADD col or ... DROP col.
// Exactly one of AddColumn/DropColumn is non-empty.
type AlterTableStmt struct {
	TableName  string
	AddColumn  string
	DropColumn string
}

// DropTableStmt represents a parsed DROP TABLE statement.
type DropTableStmt struct {
	TableName string
}

// SelectStmt represents SELECT cols|* FROM ... [WHERE ...].
// Columns is nil when Star is set.
type SelectStmt struct {
	TableName string
	Columns   []string
	Star      bool
	Where     *WhereExpr
}

// ShowTableStmt represents SHOW TABLE name.
type ShowTableStmt struct {
	TableName string
}

// ShowTablesStmt represents SHOW TABLES.
type ShowTablesStmt struct{}

// ShowPathStmt represents SHOW PATH.
type ShowPathStmt struct{}

func (*CreateTableStmt) stmtNode() {}
func (*InsertStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}
func (*AlterTableStmt) stmtNode()  {}
func (*DropTableStmt) stmtNode()   {}
func (*SelectStmt) stmtNode()      {}
func (*ShowTableStmt) stmtNode()   {}
func (*ShowTablesStmt) stmtNode()  {}
func (*ShowPathStmt) stmtNode()    {}
