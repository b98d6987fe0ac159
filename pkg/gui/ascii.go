package gui

import (
	"strings"

	"github.com/fatih/color"
	"github.com/notnil/chess"
)

// Palette colours the line-mode board.
type Palette struct {
	Light  *color.Color
	Dark   *color.Color
	High   *color.Color
	Select *color.Color
	Check  *color.Color
	Label  *color.Color
}

var DefaultPalette = Palette{
	Light:  color.New(color.BgHiWhite, color.FgBlack),
	Dark:   color.New(color.BgGreen, color.FgBlack),
	High:   color.New(color.BgYellow, color.FgBlack),
	Select: color.New(color.BgCyan, color.FgBlack),
	Check:  color.New(color.BgRed, color.FgBlack),
	Label:  color.New(color.FgHiBlack),
}

func (p Palette) square(sq chess.Square, m Marks) *color.Color {
	switch sq {
	case m.Selected:
		return p.Select
	case m.Check:
		return p.Check
	case m.LastFrom, m.LastTo:
		return p.High
	}
	if IsDark(sq) {
		return p.Dark
	}
	return p.Light
}

// ASCII draws b as text, one line per rank followed by the file labels.
// Every square is two columns wide.
func ASCII(b *chess.Board, flipped bool, m Marks, p Palette) string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		sb.WriteString(p.Label.Sprint(RankLabel(row, flipped)))
		sb.WriteByte(' ')
		for col := 0; col < NumCols; col++ {
			sq := SquareAt(row, col, flipped)
			sb.WriteString(p.square(sq, m).Sprint(Glyph(b.Piece(sq)) + " "))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < NumCols; col++ {
		sb.WriteString(p.Label.Sprint(FileLabel(col, flipped) + " "))
	}
	sb.WriteByte('\n')
	return sb.String()
}
