package pkg

import (
	"testing"

	"github.com/notnil/chess"
)

func TestMoveRequestResolve(t *testing.T) {
	pos := NewGameState().Position()

	m, ok := NewMoveRequest("g1", "f3").resolve(pos)
	if !ok || m.S1() != chess.G1 || m.S2() != chess.F3 {
		t.Fatalf("resolve g1f3 = %v, %v", m, ok)
	}
	if _, ok := NewMoveRequest("g1", "g3").resolve(pos); ok {
		t.Error("g1g3 resolved")
	}
	if got := NewMoveRequest("g1", "f3").String(); got != "g1f3" {
		t.Errorf("String() = %q", got)
	}
}

func TestMoveRequestPromotes(t *testing.T) {
	s, err := GameStateFromFEN("8/1P6/8/8/8/8/k7/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := NewMoveRequest("b7", "b8").resolve(s.Position())
	if !ok || m.Promo() != chess.Queen {
		t.Fatalf("resolve b7b8 = %v, %v", m, ok)
	}

	under := MoveRequest{From: "b7", To: "b8", Promotion: chess.Knight}
	m, ok = under.resolve(s.Position())
	if !ok || m.Promo() != chess.Knight {
		t.Errorf("resolve b7b8n = %v, %v", m, ok)
	}
}
