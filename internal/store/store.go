package store

// #region imports
import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/affinity"
)

// #endregion

// #region load-info

// LoadSource says where a loaded state came from.
type LoadSource string

const (
	// SourceFile: the persisted state was read and validated.
	SourceFile LoadSource = "file"
	// SourceSeedMissing: nothing persisted yet, seed defaults returned.
	SourceSeedMissing LoadSource = "seed_missing"
	// SourceSeedCorrupt: persisted state unreadable or invalid, seed
	// defaults returned. Err carries the cause for diagnosis.
	SourceSeedCorrupt LoadSource = "seed_corrupt"
)

// LoadInfo reports the provenance of a Load result. Callers that care about
// degraded loads inspect Source; Load itself never fails.
type LoadInfo struct {
	Source LoadSource
	Err    error
}

// Degraded reports whether seed defaults were substituted.
func (i LoadInfo) Degraded() bool {
	return i.Source != SourceFile
}

// #endregion load-info

// #region store-struct

// Store owns affinity state persistence over an injectable backend. All
// mutation goes through Update, which serializes the whole
// load-mutate-save cycle, so two updates through one Store cannot lose
// writes and every save lands atomically.
type Store struct {
	mu      sync.Mutex
	backend Backend
	now     func() time.Time
}

// New creates a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// NewFile creates a file-backed Store at path.
func NewFile(path string) *Store {
	return New(FileBackend{Path: path})
}

// #endregion store-struct

// #region load

// Load reads the persisted state. Missing or corrupt state degrades to the
// seed defaults and never fails; LoadInfo distinguishes the two default
// paths from a genuine file read.
func (s *Store) Load() (affinity.State, LoadInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (affinity.State, LoadInfo) {
	data, err := s.backend.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return affinity.SeedState(), LoadInfo{Source: SourceSeedMissing, Err: err}
		}
		return affinity.SeedState(), LoadInfo{Source: SourceSeedCorrupt, Err: err}
	}

	var st affinity.State
	if err := json.Unmarshal(data, &st); err != nil {
		return affinity.SeedState(), LoadInfo{Source: SourceSeedCorrupt, Err: err}
	}
	if check := affinity.Validate(st); !check.Passed {
		return affinity.SeedState(), LoadInfo{
			Source: SourceSeedCorrupt,
			Err:    fmt.Errorf("state invariants violated: %v", check.FailReasons),
		}
	}
	return st, LoadInfo{Source: SourceFile}
}

// #endregion load

// #region save

// Save stamps last_updated with the current UTC time and persists the whole
// state. Write failures are surfaced: silently losing a learning update is
// worse than stopping.
func (s *Store) Save(st *affinity.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(st)
}

func (s *Store) saveLocked(st *affinity.State) error {
	stamp := s.now().UTC().Format(affinity.TimestampLayout)
	st.LastUpdated = &stamp

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// #endregion save

// #region update

// Update runs fn over the current state and persists the result, holding the
// store lock for the whole load-mutate-save cycle. The returned LoadInfo
// reports whether fn saw seed defaults.
func (s *Store) Update(fn func(*affinity.State) error) (LoadInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, info := s.loadLocked()
	if err := fn(&st); err != nil {
		return info, err
	}
	if err := s.saveLocked(&st); err != nil {
		return info, err
	}
	return info, nil
}

// #endregion update

// #region score-accessors

// Score returns the stored score for (module, variant, task), defaulting to
// the neutral prior when absent at any level.
func (s *Store) Score(module, variant string, task affinity.TaskType) float64 {
	st, _ := s.Load()
	return st.Matrix.Score(module, variant, task)
}

// SetScore clamps and stores one score through the scoped update cycle.
// Unknown module/variant pairs are left untouched.
func (s *Store) SetScore(module, variant string, task affinity.TaskType, score float64) error {
	_, err := s.Update(func(st *affinity.State) error {
		st.Matrix.SetScore(module, variant, task, score)
		return nil
	})
	return err
}

// #endregion score-accessors
