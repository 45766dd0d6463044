package sheets

import (
	"context"
	"errors"
	"testing"
)

func TestMemory_ReadMissingSheet(t *testing.T) {
	m := NewMemory()

	_, err := m.ReadSheet(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ReadSheet() error = %v, want ErrNotFound", err)
	}
}

func TestMemory_CreateAppendRead(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.CreateSheet(ctx, "s"); err != nil {
		t.Fatalf("CreateSheet() error = %v", err)
	}
	if err := m.CreateSheet(ctx, "s"); !errors.Is(err, ErrConflict) {
		t.Fatalf("CreateSheet() duplicate error = %v, want ErrConflict", err)
	}

	if err := m.AppendRows(ctx, "s", [][]string{{"a", "b"}, {"c"}}); err != nil {
		t.Fatalf("AppendRows() error = %v", err)
	}

	rows, err := m.ReadSheet(ctx, "s")
	if err != nil {
		t.Fatalf("ReadSheet() error = %v", err)
	}
	if len(rows) != 2 || rows[0][1] != "b" || rows[1][0] != "c" {
		t.Fatalf("ReadSheet() = %v", rows)
	}

	// Mutating the returned slice must not leak back into the store.
	rows[0][0] = "mutated"
	again, _ := m.ReadSheet(ctx, "s")
	if again[0][0] != "a" {
		t.Error("ReadSheet() returned aliased rows")
	}
}

func TestMemory_InsertRows(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.CreateSheet(ctx, "s")
	m.AppendRows(ctx, "s", [][]string{{"1"}, {"2"}, {"3"}})

	if err := m.InsertRows(ctx, "s", 1, [][]string{{"x"}, {"y"}}); err != nil {
		t.Fatalf("InsertRows() error = %v", err)
	}

	rows, _ := m.ReadSheet(ctx, "s")
	want := []string{"1", "x", "y", "2", "3"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i][0] != w {
			t.Errorf("row %d = %q, want %q", i, rows[i][0], w)
		}
	}
}

func TestMemory_UpdateRowExtendsGrid(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.CreateSheet(ctx, "s")
	if err := m.UpdateRow(ctx, "s", 2, []string{"late"}); err != nil {
		t.Fatalf("UpdateRow() error = %v", err)
	}

	rows, _ := m.ReadSheet(ctx, "s")
	if len(rows) != 3 || rows[2][0] != "late" {
		t.Fatalf("ReadSheet() = %v", rows)
	}
}

func TestMemory_DeleteRows(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.CreateSheet(ctx, "s")
	m.AppendRows(ctx, "s", [][]string{{"1"}, {"2"}, {"3"}, {"4"}})

	if err := m.DeleteRows(ctx, "s", 1, 3); err != nil {
		t.Fatalf("DeleteRows() error = %v", err)
	}

	rows, _ := m.ReadSheet(ctx, "s")
	if len(rows) != 2 || rows[0][0] != "1" || rows[1][0] != "4" {
		t.Fatalf("ReadSheet() = %v", rows)
	}
}

func TestMemory_RenameSheet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.CreateSheet(ctx, "old")
	m.AppendRows(ctx, "old", [][]string{{"keep"}})

	if err := m.RenameSheet(ctx, "old", "new"); err != nil {
		t.Fatalf("RenameSheet() error = %v", err)
	}
	if _, err := m.ReadSheet(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old name still readable after rename")
	}
	rows, err := m.ReadSheet(ctx, "new")
	if err != nil || len(rows) != 1 || rows[0][0] != "keep" {
		t.Errorf("ReadSheet(new) = %v, %v", rows, err)
	}
}
