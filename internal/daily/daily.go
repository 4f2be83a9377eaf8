package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/kl-charizard/mastermind-sba/internal/game"
)

// Difficulty is the preset every daily code uses.
const Difficulty = game.Medium

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a generator seed for a date using keyed BLAKE2b(salt, YYYY-MM-DD).
// The salt is hashed first so any length is accepted as a key.
func Seed(date time.Time, salt string) uint64 {
	key := blake2b.Sum256([]byte(salt))
	h, _ := blake2b.New256(key[:]) // 32-byte key is always accepted
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64
	return binary.BigEndian.Uint64(sum[:8])
}

// Secret returns the daily code for a date. Every player with the same salt
// gets the same code for the same UTC day.
func Secret(date time.Time, salt string, maxAttempts int) (game.Config, game.Code, error) {
	cfg := Difficulty.Config(maxAttempts, game.VsComputer)
	code, err := game.NewSeededGenerator(Seed(date, salt)).Generate(cfg.CodeLength, cfg.Repeats)
	return cfg, code, err
}
