package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theirongolddev/billdue/internal/model"
)

func samplePeople() []model.Person {
	return []model.Person{
		{ID: "1700000000001", Name: "Alice", CardLastFour: "4242", BillingDate: 15, Amount: 99.5},
		{ID: "1700000000002", Name: "Bob", CardLastFour: "1881", BillingDate: 31, Amount: 12, IsPaid: true},
	}
}

func TestFileSlot_RoundTrip(t *testing.T) {
	slot := NewFileSlot(t.TempDir())

	want := samplePeople()
	if err := slot.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestFileSlot_MissingFileLoadsEmpty(t *testing.T) {
	slot := NewFileSlot(t.TempDir())

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load of missing file = %d people, want 0", len(got))
	}
}

func TestFileSlot_CorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	slot := NewFileSlot(dir)
	if err := os.WriteFile(slot.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load of corrupt file returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load of corrupt file = %d people, want 0", len(got))
	}
}

func TestFileSlot_AcceptsLegacyBareArray(t *testing.T) {
	dir := t.TempDir()
	slot := NewFileSlot(dir)

	legacy := `[{"id":"1710000000000","name":"Alice","cardLastFour":"4242","billingDate":15,"amount":99.5,"isPaid":false}]`
	if err := os.WriteFile(slot.Path(), []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Alice" || got[0].BillingDate != 15 {
		t.Fatalf("legacy load = %+v", got)
	}
}

func TestFileSlot_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	slot := NewFileSlot(dir)
	if err := slot.Save(samplePeople()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file %s left behind after save", e.Name())
		}
	}
}

func TestSQLiteSlot_RoundTripPreservesOrder(t *testing.T) {
	slot, err := OpenSQLiteSlot(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLiteSlot: %v", err)
	}
	defer func() { _ = slot.Close() }()

	want := samplePeople()
	if err := slot.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteSlot_SaveReplacesContents(t *testing.T) {
	slot, err := OpenSQLiteSlot(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLiteSlot: %v", err)
	}
	defer func() { _ = slot.Close() }()

	if err := slot.Save(samplePeople()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := slot.Save(samplePeople()[:1]); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("after shrinking save, Load = %d people, want 1", len(got))
	}
}

func TestOpenSlot_UnknownBackend(t *testing.T) {
	if _, err := OpenSlot("redis", t.TempDir()); err == nil {
		t.Fatal("unknown backend should error")
	}
}
