package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/notnil/chess"
	"github.com/qnkhuat/boardterm/pkg/gui"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrNothingToUndo = errors.New("nothing to undo")
)

type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// Terminal reports whether no further moves are legal.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Snapshot is one entry of the game history.
type Snapshot struct {
	FEN  string
	Move string // UCI, empty for the initial position or an unexplained jump
	SAN  string
	Turn PlayerColor
}

// GameState is a value: every operation returns a new GameState and leaves
// the receiver untouched, so a view holding an older value never sees it
// change underneath it.
type GameState struct {
	id        string
	snapshots []Snapshot
	game      *chess.Game
}

func NewGameState() GameState {
	s, err := GameStateFromFEN(StartingFEN)
	if err != nil {
		panic(err)
	}
	return s
}

func GameStateFromFEN(fen string) (GameState, error) {
	game, err := GameFromFEN(fen)
	if err != nil {
		return GameState{}, err
	}
	pos := game.Position()
	return GameState{
		id: uuid.NewString(),
		snapshots: []Snapshot{{
			FEN:  pos.String(),
			Turn: ColorOf(pos.Turn()),
		}},
		game: game,
	}, nil
}

func (s GameState) ID() string {
	return s.id
}

func (s GameState) FEN() string {
	return s.current().FEN
}

func (s GameState) Turn() PlayerColor {
	return s.current().Turn
}

// Position must be treated as read-only.
func (s GameState) Position() *chess.Position {
	return s.game.Position()
}

func (s GameState) Status() Status {
	switch s.game.Position().Status() {
	case chess.Checkmate:
		return StatusCheckmate
	case chess.Stalemate:
		return StatusStalemate
	default:
		return StatusOngoing
	}
}

// InCheck reports whether the side to move is in check, however the
// position was reached.
func (s GameState) InCheck() bool {
	b := s.Position().Board()
	turn := s.Turn().Chess()
	king := gui.KingSquare(b, turn)
	return king != chess.NoSquare && gui.Attacked(b, king, turn.Other())
}

func (s GameState) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}

// LastMove returns the snapshot produced by the most recent move.
func (s GameState) LastMove() (Snapshot, bool) {
	if len(s.snapshots) < 2 {
		return Snapshot{}, false
	}
	last := s.current()
	return last, last.Move != ""
}

// History lists the recorded moves in SAN, or UCI when SAN is unknown. A
// position loaded without a legal move leading to it shows as "...".
func (s GameState) History() []string {
	out := make([]string, 0, s.Plies())
	for _, snap := range s.snapshots[1:] {
		switch {
		case snap.SAN != "":
			out = append(out, snap.SAN)
		case snap.Move != "":
			out = append(out, snap.Move)
		default:
			out = append(out, "...")
		}
	}
	return out
}

// Plies is the number of half-moves recorded since the game started.
func (s GameState) Plies() int {
	return len(s.snapshots) - 1
}

// Apply plays req on a copy of the state. An illegal request returns
// ErrInvalidMove and the zero GameState.
func (s GameState) Apply(req MoveRequest) (GameState, error) {
	game, err := GameFromFEN(s.FEN())
	if err != nil {
		return GameState{}, err
	}
	before := game.Position()
	move, ok := req.resolve(before)
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrInvalidMove, req)
	}
	san := chess.AlgebraicNotation{}.Encode(before, move)
	if err := game.Move(move); err != nil {
		return GameState{}, fmt.Errorf("%w: %s: %v", ErrInvalidMove, req, err)
	}
	after := game.Position()
	return s.with(game, Snapshot{
		FEN:  after.String(),
		Move: chess.UCINotation{}.Encode(before, move),
		SAN:  san,
		Turn: ColorOf(after.Turn()),
	}), nil
}

// Load replaces the position with fen while keeping the history. When fen is
// reachable by one legal move from the current position, that move is
// recorded too.
func (s GameState) Load(fen string) (GameState, error) {
	game, err := GameFromFEN(fen)
	if err != nil {
		return GameState{}, err
	}
	pos := game.Position()
	snap := Snapshot{
		FEN:  pos.String(),
		Turn: ColorOf(pos.Turn()),
	}
	before := s.game.Position()
	if move := findMove(before, pos); move != nil {
		snap.Move = chess.UCINotation{}.Encode(before, move)
		snap.SAN = chess.AlgebraicNotation{}.Encode(before, move)
	}
	return s.with(game, snap), nil
}

// Undo drops the last plies half-moves.
func (s GameState) Undo(plies int) (GameState, error) {
	if plies < 1 || plies > s.Plies() {
		return GameState{}, fmt.Errorf("%w: %d plies requested, %d available", ErrNothingToUndo, plies, s.Plies())
	}
	kept := s.snapshots[:len(s.snapshots)-plies]
	game, err := GameFromFEN(kept[len(kept)-1].FEN)
	if err != nil {
		return GameState{}, err
	}
	snapshots := make([]Snapshot, len(kept))
	copy(snapshots, kept)
	return GameState{id: s.id, snapshots: snapshots, game: game}, nil
}

func (s GameState) current() Snapshot {
	return s.snapshots[len(s.snapshots)-1]
}

func (s GameState) with(game *chess.Game, snap Snapshot) GameState {
	snapshots := make([]Snapshot, len(s.snapshots), len(s.snapshots)+1)
	copy(snapshots, s.snapshots)
	return GameState{
		id:        s.id,
		snapshots: append(snapshots, snap),
		game:      game,
	}
}

// findMove returns the legal move leading from before to after, comparing
// piece placement and side to move only.
func findMove(before, after *chess.Position) *chess.Move {
	want := positionKey(after.String())
	for _, m := range before.ValidMoves() {
		if positionKey(before.Update(m).String()) == want {
			return m
		}
	}
	return nil
}

func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return fen
	}
	return fields[0] + " " + fields[1]
}
