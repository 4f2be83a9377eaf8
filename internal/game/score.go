package game

// Score compares a guess against the secret and returns the peg counts.
// Both codes must have the same length; mismatched inputs score zero.
//
// Pass 1:
//   - Count exact matches (red pegs). Matched positions are excluded from
//     the leftover tallies on both sides.
//
// Pass 2:
//   - Tally leftover digit values for secret and guess.
//
// Pass 3:
//   - For each value, the smaller of the two leftover tallies is the number
//     of white pegs it contributes.
//
// No position of either code is counted twice, so Exact+Misplaced never
// exceeds the code length, and the result does not depend on which code is
// passed as the secret.
func Score(secret, guess Code) Feedback {
	var fb Feedback
	if secret.Len() != guess.Len() {
		return fb
	}

	var secretLeft, guessLeft [MaxDigit + 1]int
	for i := range secret {
		if secret[i] == guess[i] {
			fb.Exact++
			continue
		}
		secretLeft[secret[i]]++
		guessLeft[guess[i]]++
	}

	for v := MinDigit; v <= MaxDigit; v++ {
		fb.Misplaced += min(secretLeft[v], guessLeft[v])
	}
	return fb
}
