package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/qnkhuat/boardterm/pkg/gui"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	engine := &scriptedEngine{err: errors.New("offline")}
	cl := NewClient(engine, gui.ThemeBasic, "tester")
	cl.Ctrl.Start()
	return cl
}

func cellBg(cl *Client, row, col int) interface{} {
	_, bg, _ := cl.Board.GetCell(row, col).Style.Decompose()
	return bg
}

func TestClientRendersBoard(t *testing.T) {
	cl := newTestClient(t)

	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "8"},
		{7, 0, "1"},
		{8, 1, " a"},
		{8, 8, " h"},
		{0, 1, " ♜"},
		{7, 5, " ♔"},
		{6, 5, " ♙"},
		{4, 5, "  "},
	}
	for _, c := range cases {
		if got := cl.Board.GetCell(c.row, c.col).Text; got != c.want {
			t.Errorf("cell %d,%d = %q, want %q", c.row, c.col, got, c.want)
		}
	}
	if !strings.Contains(cl.Status.GetText(true), StartingFEN) {
		t.Errorf("status = %q", cl.Status.GetText(true))
	}
}

func TestClientTwoClickMove(t *testing.T) {
	cl := newTestClient(t)

	cl.SelectCell(4, 5) // empty e4 cannot be picked up
	cl.SelectCell(6, 5) // e2
	if got := cellBg(cl, 6, 5); got != cl.Theme.SquareSelect {
		t.Errorf("selected square bg = %v", got)
	}
	cl.SelectCell(4, 5) // e4

	if got := cl.Board.GetCell(4, 5).Text; got != " ♙" {
		t.Errorf("e4 = %q", got)
	}
	if got := cellBg(cl, 6, 5); got != cl.Theme.SquareHigh {
		t.Errorf("e2 bg = %v, want last move highlight", got)
	}
	if cl.Ctrl.Phase() != PhaseAwaitingEngineReply {
		t.Errorf("phase = %s", cl.Ctrl.Phase())
	}
	if !strings.Contains(cl.Moves.GetText(true), "1.   e4") {
		t.Errorf("moves = %q", cl.Moves.GetText(true))
	}
	if !strings.Contains(cl.Status.GetText(true), "Black to move") {
		t.Errorf("status = %q", cl.Status.GetText(true))
	}
}

func TestClientDeselect(t *testing.T) {
	cl := newTestClient(t)
	cl.SelectCell(6, 5)
	cl.SelectCell(6, 5)
	if got := cellBg(cl, 6, 5); got != cl.Theme.SquareDark && got != cl.Theme.SquareLight {
		t.Errorf("deselected square bg = %v", got)
	}
	if cl.state.Plies() != 0 {
		t.Error("deselecting made a move")
	}
}

func TestClientInvalidMoveShowsModal(t *testing.T) {
	cl := newTestClient(t)
	cl.SelectCell(6, 5)
	cl.SelectCell(3, 5) // e5

	if name, _ := cl.Pages.GetFrontPage(); name != pageNotify {
		t.Errorf("front page = %q", name)
	}
	if got := cl.Board.GetCell(6, 5).Text; got != " ♙" {
		t.Errorf("e2 = %q after rejected move", got)
	}
	if cl.Ctrl.State().FEN() != StartingFEN {
		t.Errorf("FEN = %q", cl.Ctrl.State().FEN())
	}
}

func TestClientFlip(t *testing.T) {
	cl := newTestClient(t)
	cl.Flip()
	if got := cl.Board.GetCell(0, 0).Text; got != "1" {
		t.Errorf("top rank label = %q", got)
	}
	if got := cl.Board.GetCell(0, 4).Text; got != " ♔" {
		t.Errorf("cell 0,4 = %q, want the white king", got)
	}
	// Clicks follow the flipped board: row 1, col 5 is d2.
	cl.SelectCell(1, 5)
	cl.SelectCell(3, 5)
	if last, ok := cl.Ctrl.State().LastMove(); !ok || last.Move != "d2d4" {
		t.Errorf("last move = %+v", last)
	}
}
