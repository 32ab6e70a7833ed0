package render

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var b strings.Builder
	rows := [][]string{
		{"id", "name"},
		{"1", "Ann"},
		{"2", "Bartholomew"},
	}
	if err := Table(&b, rows); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	want := strings.Join([]string{
		"+----+-------------+",
		"| id | name        |",
		"+----+-------------+",
		"| 1  | Ann         |",
		"| 2  | Bartholomew |",
		"+----+-------------+",
		"",
	}, "\n")
	if b.String() != want {
		t.Fatalf("unexpected table:\n got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestTable_NoDataRows(t *testing.T) {
	var b strings.Builder
	if err := Table(&b, [][]string{{"id", "name"}}); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	// zero data rows: bottom border directly follows the header separator
	want := strings.Join([]string{
		"+----+------+",
		"| id | name |",
		"+----+------+",
		"+----+------+",
		"",
	}, "\n")
	if b.String() != want {
		t.Fatalf("unexpected table:\n got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestTable_ShortRowsPadded(t *testing.T) {
	var b strings.Builder
	rows := [][]string{
		{"a", "b"},
		{"1"},
	}
	if err := Table(&b, rows); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if !strings.Contains(b.String(), "| 1 |   |") {
		t.Fatalf("short row not padded:\n%s", b.String())
	}
}

func TestWidths(t *testing.T) {
	w := Widths([][]string{
		{"id", "name"},
		{"1234", "x"},
	})
	if len(w) != 2 || w[0] != 4 || w[1] != 4 {
		t.Fatalf("unexpected widths: %v", w)
	}
}
