package pkg

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/notnil/chess"
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Unknown
)

const (
	// The human always plays white, the engine answers as black.
	HumanColor  = White
	EngineColor = Black
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

func (pc PlayerColor) Chess() chess.Color {
	switch pc {
	case White:
		return chess.White
	case Black:
		return chess.Black
	default:
		return chess.NoColor
	}
}

func ColorOf(c chess.Color) PlayerColor {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	default:
		return Unknown
	}
}

const maxNickLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-.]+`)

// Nickname cleans up nick for display. An empty result is replaced by a
// random pet name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > maxNickLength {
		nick = nick[:maxNickLength]
	} else if nick == "" {
		nick = petname.Generate(2, "-")
	}
	return nick
}
