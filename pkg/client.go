package pkg

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/boardterm/pkg/gui"
	"github.com/rivo/tview"
)

const (
	pageBoard  = "board"
	pageNotify = "notify"
	movesShown = 12
)

// Client is the full-screen board. It is both the View and the Notifier of
// its Controller.
type Client struct {
	App     *tview.Application
	Pages   *tview.Pages
	Board   *tview.Table
	Status  *tview.TextView
	Moves   *tview.TextView
	Layout  *tview.Grid
	Modal   *tview.Modal
	Ctrl    *Controller
	Theme   gui.Theme
	Nick    string
	flipped bool
	// selected is the source square of a move being entered
	selected chess.Square
	state    GameState
}

func NewClient(engine Engine, theme gui.Theme, nick string) *Client {
	app := tview.NewApplication()
	cl := &Client{
		App:      app,
		Board:    tview.NewTable(),
		Status:   tview.NewTextView().SetDynamicColors(true),
		Moves:    tview.NewTextView(),
		Modal:    tview.NewModal(),
		Theme:    theme,
		Nick:     nick,
		selected: chess.NoSquare,
	}
	cl.Ctrl = NewController(engine, cl, cl, cl.dispatch)

	// Game options
	newBtn := tview.NewButton(string(ActionNewGame)).SetSelectedFunc(cl.Ctrl.NewGame)
	undoBtn := tview.NewButton(string(ActionUndo)).SetSelectedFunc(func() { cl.Ctrl.Undo() })
	flipBtn := tview.NewButton(string(ActionFlip)).SetSelectedFunc(cl.Flip)
	exitBtn := tview.NewButton(string(ActionExit)).SetSelectedFunc(cl.App.Stop)

	gameOptions := tview.NewGrid().
		SetColumns(10, 10).
		SetRows(1, 1, 1, -1).
		SetGap(1, 1).
		AddItem(newBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(undoBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(flipBtn, 1, 0, 1, 1, 0, 0, false).
		AddItem(exitBtn, 1, 1, 1, 1, 0, 0, false).
		AddItem(cl.Moves, 3, 0, 1, 2, 0, 0, false)

	cl.Board.SetBorder(true).SetTitle(fmt.Sprintf(" boardterm: %s ", nick))
	cl.Status.SetBorder(true)

	cl.Layout = tview.NewGrid().
		SetRows(-1, 12, 4, -1).
		SetColumns(-1, 24, 24, -1).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(gameOptions, 1, 2, 2, 1, 0, 0, false).
		AddItem(cl.Status, 2, 1, 1, 1, 0, 0, false)

	cl.Modal.SetTextColor(theme.Msg).
		AddButtons([]string{string(ActionOK)}).
		SetDoneFunc(func(int, string) {
			cl.Pages.HidePage(pageNotify)
			cl.App.SetFocus(cl.Board)
		})

	cl.Pages = tview.NewPages().
		AddPage(pageBoard, cl.Layout, true, true).
		AddPage(pageNotify, cl.Modal, false, false)

	cl.initTable()
	return cl
}

func (cl *Client) initTable() {
	cl.Board.SetSelectable(true, true)
	cl.Board.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			cl.App.Stop()
		}
	}).SetSelectedFunc(cl.SelectCell)
	cl.Board.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			cl.Ctrl.NewGame()
		case 'u':
			cl.Ctrl.Undo()
		case 'f':
			cl.Flip()
		case 'q':
			cl.App.Stop()
		default:
			return event
		}
		return nil
	})
}

// Run blocks until the player exits.
func (cl *Client) Run() error {
	cl.Ctrl.Start()
	cl.Board.Select(gui.NumRows-2, gui.NumCols/2+1)

	done := make(chan struct{})
	defer close(done)
	go cl.tick(done)

	return cl.App.SetRoot(cl.Pages, true).EnableMouse(true).Run()
}

// tick refreshes the engine clock while it thinks.
func (cl *Client) tick(done <-chan struct{}) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			cl.App.QueueUpdateDraw(func() {
				if cl.Ctrl.Phase() == PhaseAwaitingEngineReply {
					cl.renderStatus()
				}
			})
		}
	}
}

func (cl *Client) dispatch(f func()) {
	cl.App.QueueUpdateDraw(f)
}

// SelectCell implements the two-click move: the first click picks the
// source, the second the target. Clicking the source again cancels.
func (cl *Client) SelectCell(row, col int) {
	sq := gui.SquareAt(row, col-1, cl.flipped) // 1 column for the rank
	if sq == chess.NoSquare {
		return
	}
	switch {
	case cl.selected == chess.NoSquare:
		if cl.state.Position().Board().Piece(sq) == chess.NoPiece {
			return
		}
		cl.selected = sq
		cl.RenderTable()
	case cl.selected == sq:
		cl.selected = chess.NoSquare
		cl.RenderTable()
	default:
		from := cl.selected
		cl.selected = chess.NoSquare
		cl.Ctrl.HandleDrop(from.String(), sq.String())
	}
}

func (cl *Client) Flip() {
	cl.flipped = !cl.flipped
	cl.RenderTable()
}

// Render implements View.
func (cl *Client) Render(s GameState) {
	if s.ID() != cl.state.ID() {
		cl.selected = chess.NoSquare
	}
	cl.state = s
	cl.RenderTable()
	cl.renderStatus()
	cl.renderMoves()
}

// Notify implements Notifier with a modal dialog.
func (cl *Client) Notify(msg string) {
	log.Printf("notify: %s", msg)
	cl.Modal.SetText(msg)
	cl.Pages.ShowPage(pageNotify)
	cl.App.SetFocus(cl.Modal)
}

func (cl *Client) RenderTable() {
	board := cl.state.Position().Board()
	marks := marksFor(cl.state, cl.selected)
	var r, f int
	// Step through the ranks starting with the top row
	for r = 0; r <= gui.NumRows; r++ {
		// Each column
		for f = 0; f <= gui.NumCols; f++ {
			if f == 0 && r != gui.NumRows { // draw rank square
				cell := tview.NewTableCell(gui.RankLabel(r, cl.flipped)).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.Theme.Rank).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}

			if r == gui.NumRows && f > 0 { // Draw files square
				cell := tview.NewTableCell(" " + gui.FileLabel(f-1, cl.flipped)).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.Theme.File).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}

			if r == gui.NumRows && f == 0 { // The bottom left tile is not used
				cl.Board.SetCell(r, f, tview.NewTableCell("").SetSelectable(false))
				continue
			}

			// Draw the pieces
			sq := gui.SquareAt(r, f-1, cl.flipped)
			p := board.Piece(sq)
			style := tcell.StyleDefault.
				Background(marks.Bg(sq, cl.Theme)).
				Foreground(gui.PieceFg(p, cl.Theme))
			cell := tview.NewTableCell(" " + gui.Glyph(p)).
				SetAlign(tview.AlignCenter).
				SetStyle(style)
			cl.Board.SetCell(r, f, cell)
		}
	}
}

func (cl *Client) renderStatus() {
	s := cl.state
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s to move", s.Turn())
	if s.InCheck() {
		sb.WriteString(", check")
	}
	if cl.Ctrl.Phase() == PhaseAwaitingEngineReply {
		fmt.Fprintf(&sb, "  [yellow]thinking %s[-]", cl.Ctrl.Thinking())
	}
	fmt.Fprintf(&sb, "\n%s", s.FEN())
	cl.Status.SetText(sb.String())
}

func (cl *Client) renderMoves() {
	var sb strings.Builder
	for _, mp := range gui.RecentMoves(cl.state.History(), movesShown) {
		sb.WriteString(gui.FormatPair(mp))
		sb.WriteByte('\n')
	}
	cl.Moves.SetText(sb.String())
}

// marksFor collects the highlighted squares of s.
func marksFor(s GameState, selected chess.Square) gui.Marks {
	m := gui.NoMarks
	m.Selected = selected
	if last, ok := s.LastMove(); ok {
		m.LastFrom, m.LastTo, _ = gui.MoveSquares(last.Move)
	}
	if s.InCheck() {
		m.Check = gui.KingSquare(s.Position().Board(), s.Turn().Chess())
	}
	return m
}
