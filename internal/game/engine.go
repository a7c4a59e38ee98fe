// internal/game/engine.go
//
// Core game engine for a single Higher or Lower session.
// Responsibilities:
//   - Start rounds from the fixed difficulty table, drawing a secret in [1, upper].
//   - Parse and range-check raw guess text without counting rejected input.
//   - Produce hints (direction + proximity tier) and enforce the guess budget.
//   - Track state transitions: not_started → active → won/lost.
//
// Notes:
//   - Randomness comes from an injected Source so tests can force the secret.
//   - A Session is owned by one caller and is not safe for concurrent use.
//   - Evaluate after a terminal state is a no-op returning KindIdle.
package game

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Source yields a uniformly distributed integer in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

func (f SourceFunc) IntN(n int) int { return f(n) }

// defaultSource draws from the runtime-seeded global generator.
type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Session holds the state of the current round.
type Session struct {
	src Source

	roundID    string
	difficulty Difficulty // zero until the first Start
	secret     int
	guesses    int
	limit      int // 0 = unlimited
	state      State
}

// NewSession constructs a session with no active difficulty.
// A nil src uses the global math/rand/v2 generator.
func NewSession(src Source) *Session {
	if src == nil {
		src = defaultSource{}
	}
	return &Session{src: src, state: StateNotStarted}
}

// Start (re)initializes the session for level and draws a new secret.
// Any state transitions to active. Values outside the three presets fall
// back to Hard, matching the last row of the table.
func (s *Session) Start(level Difficulty) RoundInfo {
	if !level.Valid() {
		level = Hard
	}
	upper := level.UpperBound()
	limit, _ := level.GuessLimit()

	s.roundID = uuid.NewString()
	s.difficulty = level
	s.limit = limit
	s.guesses = 0
	s.secret = s.src.IntN(upper) + 1
	s.state = StateActive

	return RoundInfo{RoundID: s.roundID, Difficulty: level, UpperBound: upper}
}

// Evaluate applies one raw guess to the active round.
//
// Rejections (no guess counted, state untouched):
//   - No active round (never started, or already won/lost) → KindIdle.
//   - Text is not an integer → KindInvalidInput.
//   - Integer outside [1, UpperBound] → KindOutOfRange.
//
// Otherwise the guess is counted and the result is KindWin, KindOutOfGuesses
// (limit reached without a match, secret revealed) or KindHint.
func (s *Session) Evaluate(raw string) Outcome {
	if s.state != StateActive {
		return Outcome{Kind: KindIdle}
	}

	guess, ok := parseGuess(raw)
	if !ok {
		return Outcome{Kind: KindInvalidInput}
	}
	upper := s.difficulty.UpperBound()
	if guess < 1 || guess > upper {
		return Outcome{Kind: KindOutOfRange, UpperBound: upper}
	}

	s.guesses++
	if guess == s.secret {
		s.state = StateWon
		return Outcome{Kind: KindWin, Guesses: s.guesses}
	}

	out := Outcome{
		Kind:      KindHint,
		Direction: TooHigh,
		Tier:      TierFor(abs(s.secret - guess)),
	}
	if guess < s.secret {
		out.Direction = TooLow
	}

	if s.limit > 0 {
		remaining := s.limit - s.guesses
		if remaining <= 0 {
			s.state = StateLost
			return Outcome{Kind: KindOutOfGuesses, Secret: s.secret}
		}
		out.Remaining, out.Limited = remaining, true
	}
	return out
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Difficulty returns the active difficulty; ok is false before the first Start.
func (s *Session) Difficulty() (d Difficulty, ok bool) {
	return s.difficulty, s.difficulty.Valid()
}

// RoundID identifies the current round for log correlation ("" before Start).
func (s *Session) RoundID() string { return s.roundID }

// GuessesTaken counts valid guesses in the current round.
func (s *Session) GuessesTaken() int { return s.guesses }

// UpperBound of the current round (0 before Start).
func (s *Session) UpperBound() int { return s.difficulty.UpperBound() }

// Secret is exposed for logging and tests. ok is false before Start.
func (s *Session) Secret() (secret int, ok bool) {
	return s.secret, s.state != StateNotStarted
}

// parseGuess accepts an optionally signed base-10 integer surrounded by
// whitespace. Overflowing values are treated as unparseable.
func parseGuess(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
