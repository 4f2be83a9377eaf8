// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Keeps the encoded record rather than the *game.State itself, so a memory
// slot has exactly the same round-trip behavior as the file slot.
//
// Characteristics:
//   - Single slot: Save overwrites any previous record.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/kl-charizard/mastermind-sba/internal/game"
)

// memory is a byte-slice backed Store.
type memory struct {
	mu   sync.RWMutex // guards data
	data []byte       // nil until the first Save
	now  func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{now: time.Now}
}

// Save encodes the state and replaces the slot contents.
func (m *memory) Save(ctx context.Context, s *game.State) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = buf.Bytes()
	return nil
}

// Load decodes the slot. Returns ErrNoSave if nothing was saved yet.
func (m *memory) Load(ctx context.Context) (*game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return nil, ErrNoSave
	}
	return Decode(bytes.NewReader(m.data), m.now())
}
