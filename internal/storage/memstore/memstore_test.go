package memstore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveLoadIsolation(t *testing.T) {
	s := New()

	rows := [][]string{{"id", "name"}, {"1", "Ann"}}
	if err := s.Save("t", rows); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// mutating the caller's slice after Save must not leak in
	rows[1][1] = "changed"

	got, err := s.Load("t")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got[1][1] != "Ann" {
		t.Fatalf("stored image shares memory with caller: %v", got)
	}

	// mutating a loaded image must not change the store
	got[0][0] = "mangled"
	again, err := s.Load("t")
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if again[0][0] != "id" {
		t.Fatalf("loaded image shares memory with store: %v", again)
	}
}

func TestLoad_Missing(t *testing.T) {
	s := New()
	rows, err := s.Load("nope")
	if err != nil {
		t.Fatalf("Load of missing table must not error, got: %v", err)
	}
	if rows != nil {
		t.Fatalf("expected empty image, got %v", rows)
	}
}

func TestRemoveAndList(t *testing.T) {
	s := New()
	for _, name := range []string{"b", "a"} {
		if err := s.Save(name, [][]string{{"x"}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if s.Exists("a") {
		t.Fatalf("table must not exist after Remove")
	}
	if err := s.Remove("a"); err == nil {
		t.Fatalf("Remove of missing table should fail")
	}
}
