package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode_QuotesOnlyWhenNeeded(t *testing.T) {
	rows := [][]string{
		{"id", "name"},
		{"1", "Ann"},
		{"3", "a, b"},
		{"4", `say "hi"`},
	}
	got := Encode(rows)
	want := "id,name\n1,Ann\n3,\"a, b\"\n4,\"say \"\"hi\"\"\"\n"
	if got != want {
		t.Fatalf("unexpected encoding:\n got %q\nwant %q", got, want)
	}
}

func TestDecode_QuotedFields(t *testing.T) {
	got := Decode("id,name\n3,\"a, b\"\n4,\"say \"\"hi\"\"\"\n")
	want := [][]string{
		{"id", "name"},
		{"3", "a, b"},
		{"4", `say "hi"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestDecode_TrailingSeparator(t *testing.T) {
	got := Decode("a,b,\n")
	want := [][]string{{"a", "b", ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestDecode_Empty(t *testing.T) {
	if got := Decode(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	rows := [][]string{
		{"id", "name", "note"},
		{"1", "Ann", "plain"},
		{"2", "a, b", `quote " inside`},
		{"3", "", "  spaced  "},
		{"4", `"fully quoted"`, `',' and "`},
	}
	got := Decode(Encode(rows))
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_SingleEmptyFieldRow(t *testing.T) {
	// a row holding one empty field encodes to a blank line and comes
	// back as a zero-length row, the documented exception to the
	// round-trip law
	got := Decode(Encode([][]string{{"id"}, {""}}))
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %v", got)
	}
	if len(got[1]) != 0 {
		t.Fatalf("expected a zero-length second row, got %v", got[1])
	}
}

func TestRoundTrip_HeaderOnly(t *testing.T) {
	rows := [][]string{{"id", "name"}}
	got := Decode(Encode(rows))
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
