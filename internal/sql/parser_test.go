package sql

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCreateTable_Basic(t *testing.T) {
	stmt, err := Parse("CREATE TABLE users (id, name, active);")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}
	if ct.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ct.TableName)
	}
	if diff := cmp.Diff([]string{"id", "name", "active"}, ct.Columns); diff != "" {
		t.Fatalf("unexpected columns (-want +got):\n%s", diff)
	}
}

func TestParseCreateTable_CaseAndSpaces(t *testing.T) {
	stmt, err := Parse("  create   table   Accounts  ( balance ,  owner );  ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct := stmt.(*CreateTableStmt)
	if ct.TableName != "Accounts" {
		t.Fatalf("expected table name %q, got %q", "Accounts", ct.TableName)
	}
	if diff := cmp.Diff([]string{"balance", "owner"}, ct.Columns); diff != "" {
		t.Fatalf("unexpected columns (-want +got):\n%s", diff)
	}
}

func TestParseCreateTable_Errors(t *testing.T) {
	cases := []string{
		"CREATE TABLE users;",       // missing parens
		"CREATE TABLE (id, name);",  // missing table name
		"CREATE TABLE users (id;",   // missing ')'
		"CREATE TABLE users ();",    // empty column list
		"CREATE TABLE users (id,);", // interior empty survives, trailing dropped — ok
	}
	for i, q := range cases {
		_, err := Parse(q)
		if i == len(cases)-1 {
			if err != nil {
				t.Fatalf("Parse(%q) unexpectedly failed: %v", q, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("Parse(%q) should have failed", q)
		}
	}
}

func TestParseInsert_Basic(t *testing.T) {
	stmt, err := Parse(`INSERT INTO users VALUES (1, "Ann", true);`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}
	if ins.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ins.TableName)
	}
	if diff := cmp.Diff([]string{"1", "Ann", "true"}, ins.Values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestParseInsert_QuotedSeparator(t *testing.T) {
	stmt, err := Parse(`INSERT INTO t VALUES (3, "a, b");`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins := stmt.(*InsertStmt)
	if diff := cmp.Diff([]string{"3", "a, b"}, ins.Values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestParseInsert_Errors(t *testing.T) {
	for _, q := range []string{
		"INSERT users VALUES (1);",
		"INSERT INTO users (1, 2);",
		"INSERT INTO users VALUES 1, 2;",
		"INSERT INTO users VALUES (1, 2;",
	} {
		if _, err := Parse(q); err == nil {
			t.Fatalf("Parse(%q) should have failed", q)
		}
	}
}

func TestParseUpdate_WithWhere(t *testing.T) {
	stmt, err := Parse(`UPDATE t SET name="Bob", age=30 WHERE id=2;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	up, ok := stmt.(*UpdateStmt)
	if !ok {
		t.Fatalf("expected *UpdateStmt, got %T", stmt)
	}
	if up.TableName != "t" {
		t.Fatalf("expected table name %q, got %q", "t", up.TableName)
	}
	wantAssigns := []Assignment{{Column: "name", Value: "Bob"}, {Column: "age", Value: "30"}}
	if diff := cmp.Diff(wantAssigns, up.Assignments); diff != "" {
		t.Fatalf("unexpected assignments (-want +got):\n%s", diff)
	}
	if up.Where == nil || up.Where.Column != "id" || up.Where.Value != "2" {
		t.Fatalf("unexpected where: %+v", up.Where)
	}
}

func TestParseUpdate_NoWhere(t *testing.T) {
	stmt, err := Parse(`UPDATE t SET active='no';`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	up := stmt.(*UpdateStmt)
	if up.Where != nil {
		t.Fatalf("expected nil where, got %+v", up.Where)
	}
	if len(up.Assignments) != 1 || up.Assignments[0].Column != "active" || up.Assignments[0].Value != "no" {
		t.Fatalf("unexpected assignments: %+v", up.Assignments)
	}
}

func TestParseUpdate_MultiByteLiteral(t *testing.T) {
	stmt, err := Parse(`UPDATE t SET a='ı' WHERE b=2;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	up := stmt.(*UpdateStmt)
	wantAssigns := []Assignment{{Column: "a", Value: "ı"}}
	if diff := cmp.Diff(wantAssigns, up.Assignments); diff != "" {
		t.Fatalf("unexpected assignments (-want +got):\n%s", diff)
	}
	if up.Where == nil || up.Where.Column != "b" || up.Where.Value != "2" {
		t.Fatalf("unexpected where: %+v", up.Where)
	}
}

func TestParseUpdate_NoValidAssignments(t *testing.T) {
	if _, err := Parse(`UPDATE t SET nonsense WHERE id=1;`); err == nil {
		t.Fatalf("expected error for SET clause without assignments")
	}
}

func TestParseDelete(t *testing.T) {
	stmt, err := Parse(`DELETE FROM t WHERE id=1;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	del := stmt.(*DeleteStmt)
	if del.TableName != "t" {
		t.Fatalf("expected table name %q, got %q", "t", del.TableName)
	}
	if del.Where == nil || del.Where.Column != "id" || del.Where.Value != "1" {
		t.Fatalf("unexpected where: %+v", del.Where)
	}

	stmt, err = Parse(`DELETE FROM t;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if del := stmt.(*DeleteStmt); del.Where != nil {
		t.Fatalf("expected nil where for unconditional delete, got %+v", del.Where)
	}
}

func TestParseAlterTable(t *testing.T) {
	stmt, err := Parse(`ALTER TABLE t ADD email;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	alt := stmt.(*AlterTableStmt)
	if alt.TableName != "t" || alt.AddColumn != "email" || alt.DropColumn != "" {
		t.Fatalf("unexpected statement: %+v", alt)
	}

	stmt, err = Parse(`ALTER TABLE t DROP email;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	alt = stmt.(*AlterTableStmt)
	if alt.AddColumn != "" || alt.DropColumn != "email" {
		t.Fatalf("unexpected statement: %+v", alt)
	}

	if _, err := Parse(`ALTER TABLE t;`); err == nil {
		t.Fatalf("expected error for ALTER without ADD or DROP")
	}
}

func TestParseDropTable(t *testing.T) {
	stmt, err := Parse(`DROP TABLE old_stuff;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if dt := stmt.(*DropTableStmt); dt.TableName != "old_stuff" {
		t.Fatalf("unexpected table name %q", dt.TableName)
	}

	if _, err := Parse(`DROP old_stuff;`); err == nil {
		t.Fatalf("expected error for DROP without TABLE")
	}
}

func TestParseSelect_Star(t *testing.T) {
	stmt, err := Parse(`SELECT * FROM t WHERE id=2;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if !sel.Star || sel.TableName != "t" {
		t.Fatalf("unexpected statement: %+v", sel)
	}
	if sel.Where == nil || sel.Where.Column != "id" || sel.Where.Value != "2" {
		t.Fatalf("unexpected where: %+v", sel.Where)
	}
}

func TestParseSelect_ColumnList(t *testing.T) {
	stmt, err := Parse(`select id, name from t;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if sel.Star {
		t.Fatalf("expected explicit column list, got star")
	}
	if diff := cmp.Diff([]string{"id", "name"}, sel.Columns); diff != "" {
		t.Fatalf("unexpected columns (-want +got):\n%s", diff)
	}
	if sel.Where != nil {
		t.Fatalf("expected nil where, got %+v", sel.Where)
	}
}

func TestParseShow(t *testing.T) {
	stmt, err := Parse(`SHOW TABLE users;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if st := stmt.(*ShowTableStmt); st.TableName != "users" {
		t.Fatalf("unexpected table name %q", st.TableName)
	}

	stmt, err = Parse(`show tables;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := stmt.(*ShowTablesStmt); !ok {
		t.Fatalf("expected *ShowTablesStmt, got %T", stmt)
	}

	stmt, err = Parse(`SHOW PATH;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := stmt.(*ShowPathStmt); !ok {
		t.Fatalf("expected *ShowPathStmt, got %T", stmt)
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, q := range []string{"", "   ;  ", "TRUNCATE t;", "BEGIN;"} {
		if _, err := Parse(q); err == nil {
			t.Fatalf("Parse(%q) should have failed", q)
		}
	}
}
