package game

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Generator draws random secrets. The randomness source is injected so tests
// (and the daily code) can fix the sequence with a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator wraps an arbitrary randomness source.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator returns a generator whose output is fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomGenerator returns a generator seeded from crypto/rand.
func NewRandomGenerator() *Generator {
	var b [32]byte
	_, _ = crand.Read(b[:])
	return NewGenerator(rand.NewChaCha8(b))
}

// Generate produces a code of the given length.
// Under AllowRepeats each digit is drawn independently from 1–6; under
// NoRepeats digits are drawn without replacement, so lengths above 6 are
// rejected before any sampling happens.
func (g *Generator) Generate(length int, repeats RepeatPolicy) (Code, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	if repeats == NoRepeats && length > AlphabetSize {
		return nil, ErrLengthExceedsAlphabet
	}

	code := make(Code, length)
	if repeats == AllowRepeats {
		for i := range code {
			code[i] = MinDigit + Digit(g.rng.IntN(AlphabetSize))
		}
		return code, nil
	}

	// Partial Fisher–Yates over the alphabet.
	var pool [AlphabetSize]Digit
	for i := range pool {
		pool[i] = MinDigit + Digit(i)
	}
	for i := 0; i < length; i++ {
		j := i + g.rng.IntN(AlphabetSize-i)
		pool[i], pool[j] = pool[j], pool[i]
		code[i] = pool[i]
	}
	return code, nil
}
