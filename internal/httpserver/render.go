// internal/httpserver/render.go
//
// Text composition for the game screen. The core returns structured
// outcomes; everything the player reads is built here.

package httpserver

import (
	"fmt"

	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/game"
)

// Tone selects the color a line is painted with.
type Tone string

const (
	ToneNormal  Tone = "normal"
	ToneAccent  Tone = "accent"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
	ToneWarn    Tone = "warn"
)

// View is the full screen: three text lines and their tones.
type View struct {
	Message     string `json:"message"`
	MessageTone Tone   `json:"messageTone"`
	Result      string `json:"result"`
	ResultTone  Tone   `json:"resultTone"`
	Score       string `json:"score"`
	ScoreTone   Tone   `json:"scoreTone"`
}

const (
	msgChoose      = "Choose a difficulty to start"
	msgNewRecord   = "🏆 NEW HIGH SCORE!"
	msgInvalidText = "Enter a valid number!"
)

// blankView is the screen before any round and after Restart.
func blankView() View {
	return View{
		Message:     msgChoose,
		MessageTone: ToneAccent,
		ResultTone:  ToneNormal,
		ScoreTone:   ToneNormal,
	}
}

func roundMessage(upper int) string {
	return fmt.Sprintf("I'm thinking of a number between 1 and %d", upper)
}

// scoreLine renders the best score for d, "--" when there is none.
func scoreLine(d game.Difficulty, best int, ok bool) string {
	b := "--"
	if ok {
		b = fmt.Sprint(best)
	}
	return fmt.Sprintf("🏆 Best (%s): %s guesses", d, b)
}

// outcomeLine renders the result line for an evaluated guess.
// KindIdle renders nothing; the caller leaves the screen as is.
func outcomeLine(o game.Outcome) (string, Tone) {
	switch o.Kind {
	case game.KindInvalidInput:
		return msgInvalidText, ToneError
	case game.KindOutOfRange:
		return fmt.Sprintf("Enter a number between 1 and %d", o.UpperBound), ToneWarn
	case game.KindWin:
		return fmt.Sprintf("🎉 You got it in %d guesses!", o.Guesses), ToneSuccess
	case game.KindOutOfGuesses:
		return fmt.Sprintf("💀 Out of guesses! The number was %d.", o.Secret), ToneError
	case game.KindHint:
		return hintLine(o), ToneNormal
	}
	return "", ToneNormal
}

func hintLine(o game.Outcome) string {
	s := "Too high!"
	if o.Direction == game.TooLow {
		s = "Too low!"
	}
	switch o.Tier {
	case game.VeryClose:
		s += " 🔥 Very close!"
	case game.Warm:
		s += " 🌡️ Warm"
	default:
		s += " ❄️ Cold"
	}
	if o.Limited {
		s += fmt.Sprintf("\nGuesses left: %d", o.Remaining)
	}
	return s
}
