package filehost

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Host for tests and the "memory" backend.
// URLs are stable but not actually routable.
type Memory struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemory returns an empty in-memory host.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

func (m *Memory) Upload(_ context.Context, folder, name string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := folder + "/" + name
	m.files[path] = append([]byte(nil), data...)
	return "memory://" + path, nil
}

func (m *Memory) Delete(_ context.Context, folder, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := folder + "/" + name
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	delete(m.files, path)
	return nil
}

// Has reports whether a file exists, for assertions in tests.
func (m *Memory) Has(folder, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[folder+"/"+name]
	return ok
}
