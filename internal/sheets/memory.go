package sheets

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process RowStore. It backs the "memory" store backend for
// local development and every package test that needs a row store.
type Memory struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[string][][]string)}
}

func (m *Memory) ReadSheet(_ context.Context, sheet string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, sheet)
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *Memory) AppendRows(_ context.Context, sheet string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, sheet)
	}
	for _, row := range rows {
		existing = append(existing, append([]string(nil), row...))
	}
	m.sheets[sheet] = existing
	return nil
}

func (m *Memory) InsertRows(_ context.Context, sheet string, index int64, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, sheet)
	}
	if index < 0 || index > int64(len(existing)) {
		return fmt.Errorf("%w: insert index %d out of range", ErrUnavailable, index)
	}
	inserted := make([][]string, 0, len(existing)+len(rows))
	inserted = append(inserted, existing[:index]...)
	for _, row := range rows {
		inserted = append(inserted, append([]string(nil), row...))
	}
	inserted = append(inserted, existing[index:]...)
	m.sheets[sheet] = inserted
	return nil
}

func (m *Memory) UpdateRow(_ context.Context, sheet string, index int64, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, sheet)
	}
	// Writing past the current grid extends it, matching the backing
	// service's behavior for updates beyond the populated range.
	for int64(len(existing)) <= index {
		existing = append(existing, nil)
	}
	existing[index] = append([]string(nil), row...)
	m.sheets[sheet] = existing
	return nil
}

func (m *Memory) CreateSheet(_ context.Context, sheet string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[sheet]; ok {
		return fmt.Errorf("%w: %q", ErrConflict, sheet)
	}
	m.sheets[sheet] = nil
	return nil
}

func (m *Memory) RenameSheet(_ context.Context, oldName, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	if _, ok := m.sheets[newName]; ok && newName != oldName {
		return fmt.Errorf("%w: %q", ErrConflict, newName)
	}
	delete(m.sheets, oldName)
	m.sheets[newName] = rows
	return nil
}

func (m *Memory) DeleteRows(_ context.Context, sheet string, start, end int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, sheet)
	}
	if start < 0 || end > int64(len(existing)) || start > end {
		return fmt.Errorf("%w: delete range [%d,%d) out of range", ErrUnavailable, start, end)
	}
	m.sheets[sheet] = append(existing[:start], existing[end:]...)
	return nil
}
