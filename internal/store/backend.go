package store

// #region imports
import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// #endregion

// #region backend

// Backend persists raw affinity state bytes. Read returns an error wrapping
// os.ErrNotExist when nothing has been persisted yet; Write must be atomic so
// a concurrent reader never observes a truncated state.
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// #endregion backend

// #region file-backend

// FileBackend stores the state as a single JSON file at Path, writing through
// a temp file in the same directory followed by a rename.
type FileBackend struct {
	Path string
}

// Read returns the file contents.
func (b FileBackend) Read() ([]byte, error) {
	return os.ReadFile(b.Path)
}

// Write persists data atomically via write-to-temp-then-rename.
func (b FileBackend) Write(data []byte) error {
	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".affinity-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := os.Rename(tmpName, b.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// #endregion file-backend

// #region memory-backend

// MemoryBackend keeps state bytes in memory. Used in tests and by callers
// that want the engine without a filesystem.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

// Read returns a copy of the stored bytes, or os.ErrNotExist before the
// first write.
func (b *MemoryBackend) Read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, fmt.Errorf("memory backend: %w", os.ErrNotExist)
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Write replaces the stored bytes.
func (b *MemoryBackend) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}

// #endregion memory-backend
