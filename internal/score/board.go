// internal/score/board.go
//
// In-memory best-score bookkeeping for the Higher or Lower game.
//
// Characteristics:
//   - Tracks the fewest guesses used to win, per difficulty.
//   - A best only ever initializes or decreases; it never increases.
//   - State is lost when the process restarts.
//   - Not safe for concurrent use; the owner serializes calls.

package score

import (
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/game"
)

// Result reports what RecordWin did.
type Result string

const (
	NoChange  Result = "no_change"
	NewRecord Result = "new_record"
)

// Board maps each difficulty to its best guess count.
// Absent keys mean "no win yet".
type Board struct {
	best map[game.Difficulty]int
}

// NewBoard constructs an empty Board.
func NewBoard() *Board {
	return &Board{best: make(map[game.Difficulty]int)}
}

// RecordWin stores guesses as the new best for d if none exists yet
// or guesses is strictly lower than the current best.
// Non-positive counts are ignored.
func (b *Board) RecordWin(d game.Difficulty, guesses int) Result {
	if guesses < 1 {
		return NoChange
	}
	if cur, ok := b.best[d]; ok && guesses >= cur {
		return NoChange
	}
	b.best[d] = guesses
	return NewRecord
}

// BestFor returns the best guess count for d; ok is false before the first win.
func (b *Board) BestFor(d game.Difficulty) (best int, ok bool) {
	best, ok = b.best[d]
	return best, ok
}

// Snapshot copies every recorded best.
func (b *Board) Snapshot() map[game.Difficulty]int {
	out := make(map[game.Difficulty]int, len(b.best))
	for d, n := range b.best {
		out[d] = n
	}
	return out
}
