// Package tablestore interprets a sheet's row sequence as a series of named
// tables. Each table is introduced by a marker row, a row with exactly one
// populated cell holding the table's name, and runs until the next marker row
// or the end of the sheet. Within a table, row 0 is the header and the first
// "settings row" carries table-level metadata in the metadata columns.
//
// Table boundaries are re-derived from a fresh read on every operation;
// nothing is cached between calls.
package tablestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/sheets"
)

var (
	// ErrNotFound is returned when no marker row matches the table name.
	ErrNotFound = errors.New("tablestore: table not found")

	// ErrExists is returned when creating a table whose name collides with an
	// existing marker, exactly or case-insensitively.
	ErrExists = errors.New("tablestore: table already exists")
)

// Metadata column names. A row whose populated cells all fall under these
// columns is a settings row, not a registrant record.
const (
	ColImage       = "Image"
	ColDescription = "EventDescription"
	ColDate        = "EventDate"
	ColStatus      = "EventStatus"
)

var metadataColumns = map[string]bool{
	ColImage:       true,
	ColDescription: true,
	ColDate:        true,
	ColStatus:      true,
}

// Table locates one named table inside a sheet.
// Start is the marker row index; End is exclusive and points at the next
// marker row or one past the last row of the sheet.
type Table struct {
	Name  string
	Start int64
	End   int64
}

// Store provides table operations over a RowStore.
type Store struct {
	rows sheets.RowStore
}

// New returns a Store reading and writing through rs.
func New(rs sheets.RowStore) *Store {
	return &Store{rows: rs}
}

// IsMarker reports whether a row delimits a table: exactly one populated cell.
func IsMarker(row []string) bool {
	populated := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			populated++
		}
	}
	return populated == 1
}

// markerName returns the single populated cell of a marker row.
func markerName(row []string) string {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return cell
		}
	}
	return ""
}

// IsSettingsRow reports whether every populated cell of row sits under a
// metadata column. Classification is by content, not position: in practice
// only the first data row qualifies, but readers must not assume so.
func IsSettingsRow(header, row []string) bool {
	for i, cell := range row {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if i >= len(header) || !metadataColumns[header[i]] {
			return false
		}
	}
	return true
}

// fold normalizes a table name for the case-insensitive fallback match.
func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// parse scans all rows and returns the tables in sheet order.
func parse(rows [][]string) []Table {
	var tables []Table
	for i, row := range rows {
		if !IsMarker(row) {
			continue
		}
		if n := len(tables); n > 0 {
			tables[n-1].End = int64(i)
		}
		tables = append(tables, Table{
			Name:  markerName(row),
			Start: int64(i),
			End:   int64(len(rows)),
		})
	}
	return tables
}

// List returns every table of the sheet. A sheet with no marker rows yields
// an empty list.
func (s *Store) List(ctx context.Context, sheet string) ([]Table, error) {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return nil, err
	}
	return parse(rows), nil
}

// Create appends a new table (marker row followed by the header row) at the
// end of the sheet. It fails with ErrExists when any existing marker matches
// the name exactly or under case-insensitive normalization.
func (s *Store) Create(ctx context.Context, sheet, name string, header []string) error {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return err
	}
	folded := fold(name)
	for _, t := range parse(rows) {
		if t.Name == name || fold(t.Name) == folded {
			return fmt.Errorf("%w: %q", ErrExists, name)
		}
	}
	return s.rows.AppendRows(ctx, sheet, [][]string{
		{name},
		append([]string(nil), header...),
	})
}

// find resolves a table by name: exact match first, then a trimmed
// case-insensitive fallback. The fallback exists because table names travel
// as URL path segments and may come back decoded or re-cased.
func find(tables []Table, name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	folded := fold(name)
	for _, t := range tables {
		if fold(t.Name) == folded {
			return t, true
		}
	}
	return Table{}, false
}

// Find locates a table by name, with the case-insensitive fallback.
func (s *Store) Find(ctx context.Context, sheet, name string) (Table, error) {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return Table{}, err
	}
	t, ok := find(parse(rows), name)
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// Read returns a table's rows from the header row (inclusive) to its end
// (exclusive). The marker row is excluded.
func (s *Store) Read(ctx context.Context, sheet, name string) ([][]string, error) {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return nil, err
	}
	t, ok := find(parse(rows), name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rows[t.Start+1 : t.End], nil
}

// AppendRow adds one row at the end of the named table. The offset is
// re-derived from a fresh read: when the table is the last one in the sheet
// the row goes through the store's append primitive, otherwise it is
// inserted just before the next table's marker.
func (s *Store) AppendRow(ctx context.Context, sheet, name string, row []string) error {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return err
	}
	t, ok := find(parse(rows), name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if t.End >= int64(len(rows)) {
		return s.rows.AppendRows(ctx, sheet, [][]string{row})
	}
	return s.rows.InsertRows(ctx, sheet, t.End, [][]string{row})
}

// UpdateRow overwrites the row at the given offset within the named table.
// Offset 0 is the header row.
func (s *Store) UpdateRow(ctx context.Context, sheet, name string, offset int64, row []string) error {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return err
	}
	t, ok := find(parse(rows), name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	index := t.Start + 1 + offset
	if index >= t.End {
		return fmt.Errorf("%w: row %d of %q", ErrNotFound, offset, name)
	}
	return s.rows.UpdateRow(ctx, sheet, index, row)
}

// Delete removes a table entirely, marker row included. Lookup is exact-match
// only: destructive operations do not get the case-insensitive fallback.
func (s *Store) Delete(ctx context.Context, sheet, name string) error {
	rows, err := s.rows.ReadSheet(ctx, sheet)
	if err != nil {
		return err
	}
	for _, t := range parse(rows) {
		if t.Name == name {
			return s.rows.DeleteRows(ctx, sheet, t.Start, t.End)
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}
