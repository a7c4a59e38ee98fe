// internal/game/types.go
//
// Core type definitions for the Higher or Lower game engine.
// Defines:
//   - Difficulty: the three fixed presets and their (range, guess limit) table.
//   - Direction / Tier: the two halves of a hint.
//   - Kind / Outcome: the structured result of evaluating one guess.
//   - State: the round state machine (not_started → active → won|lost).

package game

import (
	"errors"
	"strings"
)

// Difficulty selects the range and guess budget of a round.
// The zero value means "no difficulty chosen yet".
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// settings is one row of the fixed difficulty table.
type settings struct {
	upper int // secret is drawn from [1, upper]
	limit int // 0 = unlimited guesses
}

var table = map[Difficulty]settings{
	Easy:   {upper: 10},
	Medium: {upper: 50, limit: 7},
	Hard:   {upper: 100, limit: 5},
}

// ErrUnknownDifficulty is returned by ParseDifficulty for labels outside the three presets.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists the presets in display order.
func Difficulties() []Difficulty { return []Difficulty{Easy, Medium, Hard} }

// ParseDifficulty maps a label ("Easy", "medium", " HARD ") to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, ErrUnknownDifficulty
}

// Valid reports whether d is one of the three presets.
func (d Difficulty) Valid() bool {
	_, ok := table[d]
	return ok
}

// UpperBound is the inclusive top of the secret's range.
func (d Difficulty) UpperBound() int { return table[d].upper }

// GuessLimit returns the guess budget for d; ok is false when guesses are unlimited.
func (d Difficulty) GuessLimit() (limit int, ok bool) {
	l := table[d].limit
	return l, l > 0
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return ""
}

// MarshalText makes Difficulty usable as a JSON string and map key.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, ErrUnknownDifficulty
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts the same labels as ParseDifficulty.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Direction tells the player which way to move.
type Direction string

const (
	TooLow  Direction = "too_low"
	TooHigh Direction = "too_high"
)

// Tier is the proximity hint derived from |secret - guess|.
type Tier string

const (
	VeryClose Tier = "very_close"
	Warm      Tier = "warm"
	Cold      Tier = "cold"
)

// Proximity thresholds. Not configurable.
const (
	veryCloseMax = 3
	warmMax      = 10
)

// TierFor classifies a non-negative distance.
//
//	distance <= 3       → VeryClose
//	4 <= distance <= 10 → Warm
//	distance > 10       → Cold
func TierFor(distance int) Tier {
	switch {
	case distance <= veryCloseMax:
		return VeryClose
	case distance <= warmMax:
		return Warm
	default:
		return Cold
	}
}

// Kind discriminates an Outcome.
type Kind string

const (
	KindIdle         Kind = "idle"          // no active round; nothing happened
	KindInvalidInput Kind = "invalid_input" // text is not an integer
	KindOutOfRange   Kind = "out_of_range"  // integer outside [1, UpperBound]
	KindHint         Kind = "hint"
	KindWin          Kind = "win"
	KindOutOfGuesses Kind = "out_of_guesses"
)

// Outcome is the structured result of Session.Evaluate.
// Only the fields relevant to Kind are populated:
//   - OutOfRange:   UpperBound
//   - Hint:         Direction, Tier, Remaining/Limited
//   - Win:          Guesses
//   - OutOfGuesses: Secret
type Outcome struct {
	Kind       Kind      `json:"kind"`
	UpperBound int       `json:"upperBound,omitempty"`
	Direction  Direction `json:"direction,omitempty"`
	Tier       Tier      `json:"tier,omitempty"`
	Remaining  int       `json:"remaining,omitempty"`
	Limited    bool      `json:"limited,omitempty"` // false = remaining is "none"
	Guesses    int       `json:"guesses,omitempty"`
	Secret     int       `json:"secret,omitempty"`
}

// Counted reports whether the outcome consumed a guess.
func (o Outcome) Counted() bool {
	switch o.Kind {
	case KindHint, KindWin, KindOutOfGuesses:
		return true
	}
	return false
}

// RoundInfo is returned by Session.Start so the caller can announce the range.
type RoundInfo struct {
	RoundID    string     `json:"roundId"`
	Difficulty Difficulty `json:"difficulty"`
	UpperBound int        `json:"upperBound"`
}

// State is the round lifecycle.
type State string

const (
	StateNotStarted State = "not_started"
	StateActive     State = "active"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Finished reports whether the state is terminal (won or lost).
func (s State) Finished() bool { return s == StateWon || s == StateLost }
