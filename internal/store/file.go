package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kl-charizard/mastermind-sba/internal/game"
)

// File is the on-disk save slot at <dir>/SaveFile.
type File struct {
	path string
	now  func() time.Time
}

// NewFileStore returns the save slot inside dir.
func NewFileStore(dir string) *File {
	return &File{path: filepath.Join(dir, SaveFile), now: time.Now}
}

// Path returns the slot's file path.
func (f *File) Path() string { return f.path }

// Save truncates the slot and writes s. The file is closed on every path
// and a failed close is reported, since that is where buffered writes fail.
func (f *File) Save(ctx context.Context, s *game.State) (err error) {
	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("open save file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close save file: %w", cerr)
		}
	}()
	if err := Encode(out, s); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}

// Load reads and decodes the slot.
func (f *File) Load(ctx context.Context) (*game.State, error) {
	in, err := os.Open(f.path)
	if err != nil {
		if notExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrNoSave, err)
		}
		return nil, fmt.Errorf("open save file: %w", err)
	}
	defer in.Close()
	return Decode(in, f.now())
}
