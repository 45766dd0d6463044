package tablestore

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/sheets"
)

var eventHeader = []string{
	"Name", "Phone", "Email", "Gender", "College", "Status",
	"National ID", "Registration Date", ColImage, ColDescription, ColDate, ColStatus,
}

func newStore(t *testing.T) (*Store, *sheets.Memory) {
	t.Helper()
	mem := sheets.NewMemory()
	if err := mem.CreateSheet(context.Background(), "acme"); err != nil {
		t.Fatalf("CreateSheet() error = %v", err)
	}
	return New(mem), mem
}

func TestCreateThenFind(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.Create(ctx, "acme", "Launch", eventHeader); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tbl, err := s.Find(ctx, "acme", "Launch")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if tbl.Name != "Launch" || tbl.Start != 0 {
		t.Errorf("Find() = %+v", tbl)
	}

	rows, err := s.Read(ctx, "acme", "Launch")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(rows[0], eventHeader) {
		t.Errorf("header = %v, want %v", rows[0], eventHeader)
	}
}

func TestCreate_CollisionExactAndFolded(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.Create(ctx, "acme", "Launch", eventHeader); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Create(ctx, "acme", "Launch", eventHeader); !errors.Is(err, ErrExists) {
		t.Errorf("Create() duplicate error = %v, want ErrExists", err)
	}
	// Names that normalize to the same case-insensitive key must collide too.
	if err := s.Create(ctx, "acme", "  LAUNCH ", eventHeader); !errors.Is(err, ErrExists) {
		t.Errorf("Create() folded duplicate error = %v, want ErrExists", err)
	}
}

func TestFind_CaseInsensitiveFallback(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	s.Create(ctx, "acme", "Launch Party", eventHeader)

	tbl, err := s.Find(ctx, "acme", "launch party")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if tbl.Name != "Launch Party" {
		t.Errorf("Find() resolved %q, want stored name", tbl.Name)
	}

	if _, err := s.Find(ctx, "acme", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestList_PartitionsSheet(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	names := []string{"Alpha", "Beta", "Gamma"}
	for _, n := range names {
		if err := s.Create(ctx, "acme", n, eventHeader); err != nil {
			t.Fatalf("Create(%q) error = %v", n, err)
		}
	}
	s.AppendRow(ctx, "acme", "Alpha", []string{"Sam", "01012345678", "sam@x.com"})

	tables, err := s.List(ctx, "acme")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tables) != 3 {
		t.Fatalf("List() returned %d tables, want 3", len(tables))
	}
	// Ranges must be disjoint, contiguous, and cover the whole sheet.
	for i, tbl := range tables {
		if tbl.Name != names[i] {
			t.Errorf("table %d = %q, want %q", i, tbl.Name, names[i])
		}
		if i > 0 && tbl.Start != tables[i-1].End {
			t.Errorf("table %q starts at %d, previous ends at %d", tbl.Name, tbl.Start, tables[i-1].End)
		}
	}
	if tables[0].Start != 0 {
		t.Errorf("first table starts at %d, want 0", tables[0].Start)
	}
}

func TestAppendRow_LandsBeforeNextMarker(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	s.Create(ctx, "acme", "First", eventHeader)
	s.Create(ctx, "acme", "Second", eventHeader)

	// Appending to the earlier table must not land after the later one.
	if err := s.AppendRow(ctx, "acme", "First", []string{"Sam"}); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	rows, _ := mem.ReadSheet(ctx, "acme")
	if rows[2][0] != "Sam" {
		t.Errorf("row 2 = %v, want the appended registrant", rows[2])
	}
	if !IsMarker(rows[3]) || markerName(rows[3]) != "Second" {
		t.Errorf("row 3 = %v, want the Second marker", rows[3])
	}

	// Round-trip: the appended row is visible through Read, after the header.
	got, err := s.Read(ctx, "acme", "First")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2 || got[1][0] != "Sam" {
		t.Errorf("Read() = %v", got)
	}
}

func TestAppendRow_LastTableUsesAppend(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	s.Create(ctx, "acme", "Only", eventHeader)
	for _, name := range []string{"A", "B", "C"} {
		if err := s.AppendRow(ctx, "acme", "Only", []string{name}); err != nil {
			t.Fatalf("AppendRow(%q) error = %v", name, err)
		}
	}

	rows, err := s.Read(ctx, "acme", "Only")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Read() returned %d rows, want header + 3", len(rows))
	}
	for i, want := range []string{"A", "B", "C"} {
		if rows[i+1][0] != want {
			t.Errorf("row %d = %q, want %q", i+1, rows[i+1][0], want)
		}
	}
}

func TestDelete_ExactMatchOnly(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	s.Create(ctx, "acme", "Launch", eventHeader)
	s.Create(ctx, "acme", "Gala", eventHeader)

	if err := s.Delete(ctx, "acme", "launch"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() with folded name error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "acme", "Launch"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	tables, _ := s.List(ctx, "acme")
	if len(tables) != 1 || tables[0].Name != "Gala" {
		t.Errorf("List() after delete = %+v", tables)
	}
	if tables[0].Start != 0 {
		t.Errorf("remaining table starts at %d, want 0", tables[0].Start)
	}
}

func TestList_EmptySheet(t *testing.T) {
	s, _ := newStore(t)

	tables, err := s.List(context.Background(), "acme")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("List() = %+v, want empty", tables)
	}
}

func TestIsMarker(t *testing.T) {
	tests := []struct {
		row  []string
		want bool
	}{
		{[]string{"Launch"}, true},
		{[]string{"", "Launch", ""}, true},
		{[]string{"Launch", "extra"}, false},
		{[]string{"", "  ", ""}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsMarker(tt.row); got != tt.want {
			t.Errorf("IsMarker(%v) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

func TestIsSettingsRow(t *testing.T) {
	header := eventHeader

	settings := make([]string, len(header))
	settings[8] = "http://img"
	settings[9] = "description"
	settings[10] = "2025-01-01"
	settings[11] = "enabled"
	if !IsSettingsRow(header, settings) {
		t.Error("metadata-only row not classified as settings row")
	}

	registrant := make([]string, len(header))
	registrant[0] = "Sam"
	registrant[2] = "sam@x.com"
	if IsSettingsRow(header, registrant) {
		t.Error("registrant row classified as settings row")
	}

	// A registrant row with a stray value in a metadata column is still a
	// registrant row: any populated non-metadata cell decides.
	mixed := append([]string(nil), registrant...)
	mixed[9] = "oops"
	if IsSettingsRow(header, mixed) {
		t.Error("mixed row classified as settings row")
	}

	empty := make([]string, len(header))
	if !IsSettingsRow(header, empty) {
		t.Error("empty row should classify as settings row")
	}
}
