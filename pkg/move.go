package pkg

import (
	"fmt"

	"github.com/notnil/chess"
)

// MoveRequest is a single drop gesture: a piece taken from one square and
// released on another.
type MoveRequest struct {
	From      string
	To        string
	Promotion chess.PieceType
}

// NewMoveRequest always asks for a queen; the promotion is ignored when the
// move is not a promotion.
func NewMoveRequest(from, to string) MoveRequest {
	return MoveRequest{From: from, To: to, Promotion: chess.Queen}
}

func (m MoveRequest) String() string {
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// resolve finds the legal move in pos matching the request.
func (m MoveRequest) resolve(pos *chess.Position) (*chess.Move, bool) {
	var plain *chess.Move
	for _, valid := range pos.ValidMoves() {
		if valid.S1().String() != m.From || valid.S2().String() != m.To {
			continue
		}
		switch valid.Promo() {
		case m.Promotion:
			return valid, true
		case chess.NoPieceType:
			plain = valid
		}
	}
	return plain, plain != nil
}
