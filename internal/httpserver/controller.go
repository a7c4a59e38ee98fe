// internal/httpserver/controller.go
//
// The controller turns UI events into calls on the single GameSession and
// ScoreBoard, and keeps the screen the page is showing.
//
// Events are serialized by mu so the core sees one event at a time, the way
// a single UI thread would deliver them. The core types themselves hold no locks.

package httpserver

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/game"
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/score"
)

type controller struct {
	mu      sync.Mutex // guards everything below
	session *game.Session
	board   *score.Board
	screen  View
}

func newController(session *game.Session, board *score.Board) *controller {
	return &controller{session: session, board: board, screen: blankView()}
}

// start handles "difficulty chosen".
func (c *controller) start(d game.Difficulty) (game.RoundInfo, View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info := c.session.Start(d)
	secret, _ := c.session.Secret()
	log.Info().Str("round", info.RoundID).Stringer("difficulty", info.Difficulty).
		Int("upper", info.UpperBound).Msg("round started")
	log.Debug().Str("round", info.RoundID).Int("secret", secret).Msg("secret drawn")

	best, ok := c.board.BestFor(info.Difficulty)
	c.screen = View{
		Message:     roundMessage(info.UpperBound),
		MessageTone: ToneAccent,
		ResultTone:  ToneNormal,
		Score:       scoreLine(info.Difficulty, best, ok),
		ScoreTone:   ToneNormal,
	}
	return info, c.screen
}

// guess handles "guess submitted", from the button or the Enter key alike.
// rec is empty unless the guess won the round.
func (c *controller) guess(text string) (out game.Outcome, rec score.Result, v View) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out = c.session.Evaluate(text)
	if out.Kind == game.KindIdle {
		return out, "", c.screen
	}

	round := c.session.RoundID()
	log.Debug().Str("round", round).Str("kind", string(out.Kind)).
		Int("guesses", c.session.GuessesTaken()).Msg("guess evaluated")

	c.screen.Result, c.screen.ResultTone = outcomeLine(out)

	switch out.Kind {
	case game.KindWin:
		d, _ := c.session.Difficulty()
		rec = c.board.RecordWin(d, out.Guesses)
		if rec == score.NewRecord {
			c.screen.Score, c.screen.ScoreTone = msgNewRecord, ToneSuccess
		}
		log.Info().Str("round", round).Int("guesses", out.Guesses).
			Str("score", string(rec)).Msg("round won")
	case game.KindOutOfGuesses:
		log.Info().Str("round", round).Int("secret", out.Secret).Msg("round lost")
	}
	return out, rec, c.screen
}

// restart resets the screen only. The round in progress keeps its secret
// and guess count.
func (c *controller) restart() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = blankView()
	return c.screen
}

// view returns the current screen.
func (c *controller) view() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// scores returns every best, with nil for difficulties not yet won.
func (c *controller) scores() map[game.Difficulty]*int {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.board.Snapshot()
	out := make(map[game.Difficulty]*int, len(game.Difficulties()))
	for _, d := range game.Difficulties() {
		var best *int
		if n, ok := snap[d]; ok {
			best = &n
		}
		out[d] = best
	}
	return out
}
