package storage

import (
	"path/filepath"
	"testing"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a := Open(filepath.Join(t.TempDir(), "store.db"))
	t.Cleanup(a.Close)
	return a
}

func TestSetGetRoundTrip(t *testing.T) {
	a := openTestAdapter(t)

	want := testRecord{ID: "r1", Name: "First"}
	if !a.Set("record", want) {
		t.Fatalf("expected set to succeed")
	}

	var got testRecord
	if !a.Get("record", &got) {
		t.Fatalf("expected get to succeed")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGetAbsentKeyReturnsFalse(t *testing.T) {
	a := openTestAdapter(t)

	var got testRecord
	if a.Get("missing", &got) {
		t.Fatalf("expected get of absent key to report absence")
	}
}

func TestGetMismatchedValueDegradesToAbsence(t *testing.T) {
	a := openTestAdapter(t)

	if !a.Set("record", "not-a-record") {
		t.Fatalf("expected set to succeed")
	}
	var got testRecord
	if a.Get("record", &got) {
		t.Fatalf("expected undecodable value to report absence, got %+v", got)
	}
}

func TestRemove(t *testing.T) {
	a := openTestAdapter(t)

	a.Set("record", testRecord{ID: "r1"})
	if !a.Remove("record") {
		t.Fatalf("expected remove to succeed")
	}
	var got testRecord
	if a.Get("record", &got) {
		t.Fatalf("expected removed key to be absent")
	}
	if !a.Remove("record") {
		t.Fatalf("expected removing an absent key to succeed")
	}
}

func TestDetachedAdapterNeverFails(t *testing.T) {
	// Opening a path inside a missing directory leaves the adapter detached.
	a := Open(filepath.Join(t.TempDir(), "no-such-dir", "store.db"))
	defer a.Close()

	if a.Set("record", testRecord{ID: "r1"}) {
		t.Fatalf("expected detached set to report failure")
	}
	var got testRecord
	if a.Get("record", &got) {
		t.Fatalf("expected detached get to report absence")
	}
	if a.Remove("record") {
		t.Fatalf("expected detached remove to report failure")
	}
}
