// Package gui holds the presentation helpers shared by the terminal clients:
// themes, square colours, coordinates and move lists.
package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
)

const (
	NumRows = 8
	NumCols = 8
)

// Glyph returns the unicode glyph of p, or a blank for an empty square.
func Glyph(p chess.Piece) string {
	if p == chess.NoPiece {
		return " "
	}
	return p.String()
}

// squareColor reports the colour of the square itself (a1 is dark)
func squareColor(sq chess.Square) chess.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return chess.Black
	}
	return chess.White
}

// IsDark reports whether sq is a dark square.
func IsDark(sq chess.Square) bool {
	return squareColor(sq) == chess.Black
}

// SquareBg returns the theme's color corresponding to the square
func SquareBg(sq chess.Square, t Theme) tcell.Color {
	if IsDark(sq) {
		return t.SquareDark
	}
	return t.SquareLight
}

// PieceFg returns the theme's foreground for a piece
func PieceFg(p chess.Piece, t Theme) tcell.Color {
	if p.Color() == chess.Black {
		return t.Black
	}
	return t.White
}

// Marks holds the squares drawn with a non-default background.
type Marks struct {
	Selected chess.Square
	LastFrom chess.Square
	LastTo   chess.Square
	Check    chess.Square
}

// NoMarks has every mark unset.
var NoMarks = Marks{
	Selected: chess.NoSquare,
	LastFrom: chess.NoSquare,
	LastTo:   chess.NoSquare,
	Check:    chess.NoSquare,
}

// Bg picks the background of sq. Selection wins over check, check over
// the last move highlight.
func (m Marks) Bg(sq chess.Square, t Theme) tcell.Color {
	switch sq {
	case m.Selected:
		return t.SquareSelect
	case m.Check:
		return t.SquareCheck
	case m.LastFrom, m.LastTo:
		return t.SquareHigh
	}
	return SquareBg(sq, t)
}

// SquareAt converts a board cell to a square. Row 0 is the top of the
// board; flipped puts black at the bottom.
func SquareAt(row, col int, flipped bool) chess.Square {
	if row < 0 || row >= NumRows || col < 0 || col >= NumCols {
		return chess.NoSquare
	}
	if flipped {
		return chess.NewSquare(chess.File(NumCols-col-1), chess.Rank(row))
	}
	return chess.NewSquare(chess.File(col), chess.Rank(NumRows-row-1))
}

// CellOf is the inverse of SquareAt.
func CellOf(sq chess.Square, flipped bool) (row, col int) {
	f, r := int(sq.File()), int(sq.Rank())
	if flipped {
		return r, NumCols - f - 1
	}
	return NumRows - r - 1, f
}

// RankLabel is the rank shown left of board row.
func RankLabel(row int, flipped bool) string {
	if flipped {
		return chess.Rank(row).String()
	}
	return chess.Rank(NumRows - row - 1).String()
}

// FileLabel is the file shown under board column.
func FileLabel(col int, flipped bool) string {
	if flipped {
		return chess.File(NumCols - col - 1).String()
	}
	return chess.File(col).String()
}

// ParseSquare turns "e4" into its square.
func ParseSquare(s string) (chess.Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare, false
	}
	return chess.NewSquare(chess.File(s[0]-'a'), chess.Rank(s[1]-'1')), true
}

// MoveSquares splits a UCI move such as "e7e8q" into its squares.
func MoveSquares(uci string) (from, to chess.Square, ok bool) {
	if len(uci) < 4 {
		return chess.NoSquare, chess.NoSquare, false
	}
	from, ok1 := ParseSquare(uci[:2])
	to, ok2 := ParseSquare(uci[2:4])
	if !ok1 || !ok2 {
		return chess.NoSquare, chess.NoSquare, false
	}
	return from, to, true
}

// KingSquare finds the king of colour c.
func KingSquare(b *chess.Board, c chess.Color) chess.Square {
	king := chess.WhiteKing
	if c == chess.Black {
		king = chess.BlackKing
	}
	for sq, p := range b.SquareMap() {
		if p == king {
			return sq
		}
	}
	return chess.NoSquare
}

// Attacked reports whether a piece of colour by attacks sq.
func Attacked(b *chess.Board, sq chess.Square, by chess.Color) bool {
	for from, p := range b.SquareMap() {
		if p.Color() == by && attacks(b, p, from, sq) {
			return true
		}
	}
	return false
}

func attacks(b *chess.Board, p chess.Piece, from, to chess.Square) bool {
	df := int(to.File()) - int(from.File())
	dr := int(to.Rank()) - int(from.Rank())
	straight := (df == 0) != (dr == 0)
	diagonal := df != 0 && abs(df) == abs(dr)
	switch p.Type() {
	case chess.Pawn:
		forward := 1
		if p.Color() == chess.Black {
			forward = -1
		}
		return dr == forward && abs(df) == 1
	case chess.Knight:
		return abs(df)*abs(dr) == 2
	case chess.King:
		return max(abs(df), abs(dr)) == 1
	case chess.Bishop:
		return diagonal && pathClear(b, from, df, dr)
	case chess.Rook:
		return straight && pathClear(b, from, df, dr)
	case chess.Queen:
		return (straight || diagonal) && pathClear(b, from, df, dr)
	}
	return false
}

// pathClear reports whether the squares strictly between from and
// from+(df, dr) are empty.
func pathClear(b *chess.Board, from chess.Square, df, dr int) bool {
	n := max(abs(df), abs(dr))
	sf, sr := sign(df), sign(dr)
	for i := 1; i < n; i++ {
		sq := chess.NewSquare(chess.File(int(from.File())+i*sf), chess.Rank(int(from.Rank())+i*sr))
		if b.Piece(sq) != chess.NoPiece {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
