package store

import (
	"context"
	"errors"
	"io/fs"

	"github.com/kl-charizard/mastermind-sba/internal/game"
)

// SaveFile is the fixed name of the save slot.
const SaveFile = "mastermind_save.txt"

var (
	// ErrNoSave means the slot has never been written.
	ErrNoSave = errors.New("no saved game")

	// ErrUnsupportedFormat means the record header is missing or is not FormatVersion.
	ErrUnsupportedFormat = errors.New("unsupported save format")

	// ErrCorrupted means the header was fine but the record is short or invalid.
	ErrCorrupted = errors.New("corrupted save")
)

// Store defines the persistence interface for the single save slot.
// It satisfies game.Saver.
type Store interface {
	// Save overwrites the slot with s.
	Save(ctx context.Context, s *game.State) error

	// Load returns the saved session, or ErrNoSave, ErrUnsupportedFormat,
	// ErrCorrupted, or a wrapped I/O error. No partial state is ever returned.
	Load(ctx context.Context) (*game.State, error)
}

// IsFormatError reports whether err means the slot exists but cannot be used.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrCorrupted)
}

func notExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
