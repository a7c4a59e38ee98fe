package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/game"
)

func TestRecordWin_FirstWinIsRecord(t *testing.T) {
	b := NewBoard()
	_, ok := b.BestFor(game.Easy)
	assert.False(t, ok)

	assert.Equal(t, NewRecord, b.RecordWin(game.Easy, 4))
	best, ok := b.BestFor(game.Easy)
	assert.True(t, ok)
	assert.Equal(t, 4, best)
}

func TestRecordWin_NeverRaises(t *testing.T) {
	b := NewBoard()
	b.RecordWin(game.Medium, 5)

	assert.Equal(t, NoChange, b.RecordWin(game.Medium, 7))
	best, _ := b.BestFor(game.Medium)
	assert.Equal(t, 5, best)

	assert.Equal(t, NoChange, b.RecordWin(game.Medium, 5), "ties are not records")

	assert.Equal(t, NewRecord, b.RecordWin(game.Medium, 3))
	best, _ = b.BestFor(game.Medium)
	assert.Equal(t, 3, best)
}

func TestRecordWin_PerDifficulty(t *testing.T) {
	b := NewBoard()
	b.RecordWin(game.Easy, 2)
	b.RecordWin(game.Hard, 4)

	_, ok := b.BestFor(game.Medium)
	assert.False(t, ok)
	assert.Equal(t, map[game.Difficulty]int{game.Easy: 2, game.Hard: 4}, b.Snapshot())
}

func TestRecordWin_IgnoresNonPositive(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, NoChange, b.RecordWin(game.Hard, 0))
	_, ok := b.BestFor(game.Hard)
	assert.False(t, ok)
}

func TestSnapshot_IsCopy(t *testing.T) {
	b := NewBoard()
	b.RecordWin(game.Easy, 3)
	snap := b.Snapshot()
	snap[game.Easy] = 1

	best, _ := b.BestFor(game.Easy)
	assert.Equal(t, 3, best)
}
