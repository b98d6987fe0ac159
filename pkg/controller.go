package pkg

import (
	"context"
	"log"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingEngineReply
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAwaitingEngineReply:
		return "AwaitingEngineReply"
	default:
		return "Unknown"
	}
}

// View displays a game state. Render is always called on the UI goroutine.
type View interface {
	Render(s GameState)
}

// Notifier shows a message the player has to acknowledge.
type Notifier interface {
	Notify(msg string)
}

// Dispatcher runs f on the UI goroutine.
type Dispatcher func(f func())

// Controller mediates between the board view, the rules library and the
// move-search service. All methods must be called on the UI goroutine.
type Controller struct {
	state    GameState
	phase    Phase
	engine   Engine
	view     View
	notifier Notifier
	dispatch Dispatcher
	clock    *Clock
	requests int // id of the newest engine request
}

func NewController(engine Engine, view View, notifier Notifier, dispatch Dispatcher) *Controller {
	return &Controller{
		state:    NewGameState(),
		phase:    PhaseIdle,
		engine:   engine,
		view:     view,
		notifier: notifier,
		dispatch: dispatch,
		clock:    NewClock(),
	}
}

func (c *Controller) State() GameState {
	return c.state
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Thinking is the engine's thinking time as m:ss, or the last one when idle.
func (c *Controller) Thinking() string {
	return c.clock.String()
}

// Start draws the initial position.
func (c *Controller) Start() {
	c.setState(c.state)
}

// HandleDrop applies the move from -> to, promoting to a queen when needed.
// It reports whether the move was accepted.
func (c *Controller) HandleDrop(from, to string) bool {
	next, err := c.state.Apply(NewMoveRequest(from, to))
	if err != nil {
		log.Printf("[%s] %v", shortID(c.state.ID()), err)
		c.notifier.Notify(MsgInvalidMove)
		// Redraw the last legal position over whatever the view showed.
		c.setState(c.state)
		return false
	}

	log.Printf("[%s] %s played %s", shortID(next.ID()), ColorOf(c.state.Position().Turn()), from+to)
	c.abandonRequest()
	c.state = next
	// A mated or stalemated engine has no legal reply to search for, so the
	// game ends here without a request.
	if next.Turn() == EngineColor && !next.Status().Terminal() {
		c.requestReply()
	}
	// Render after the request so the view sees the new phase.
	c.view.Render(next)
	c.endIfTerminal()
	return true
}

// NewGame abandons the current game, including a pending engine reply.
func (c *Controller) NewGame() {
	log.Printf("[%s] new game", shortID(c.state.ID()))
	c.reset()
}

// Load starts a new game from fen. When the engine is to move there, it is
// asked for a reply right away.
func (c *Controller) Load(fen string) error {
	next, err := GameStateFromFEN(fen)
	if err != nil {
		return err
	}
	log.Printf("[%s] loaded %q", shortID(next.ID()), next.FEN())
	c.abandonRequest()
	c.state = next
	if next.Turn() == EngineColor && !next.Status().Terminal() {
		c.requestReply()
	}
	c.view.Render(next)
	c.endIfTerminal()
	return nil
}

// Undo takes back the human's last move together with the reply to it.
func (c *Controller) Undo() bool {
	if c.phase == PhaseAwaitingEngineReply {
		c.notifier.Notify(MsgEngineThinking)
		return false
	}
	plies := 1
	if c.state.Turn() == HumanColor {
		plies = 2
	}
	if plies > c.state.Plies() {
		plies = c.state.Plies()
	}
	next, err := c.state.Undo(plies)
	if err != nil {
		log.Printf("[%s] %v", shortID(c.state.ID()), err)
		c.notifier.Notify(MsgNothingToUndo)
		return false
	}
	log.Printf("[%s] undo %d plies", shortID(next.ID()), plies)
	c.setState(next)
	return true
}

func (c *Controller) requestReply() {
	c.phase = PhaseAwaitingEngineReply
	c.clock.Tick()

	c.requests++
	seq, id, fen := c.requests, c.state.ID(), c.state.FEN()
	log.Printf("[%s] asking engine for %q at depth %d", shortID(id), fen, SearchDepth)
	go func() {
		reply, err := c.engine.BestMove(context.Background(), fen, SearchDepth)
		c.dispatch(func() {
			c.handleReply(seq, id, reply, err)
		})
	}()
}

func (c *Controller) handleReply(seq int, id, reply string, err error) {
	if seq != c.requests || id != c.state.ID() || c.phase != PhaseAwaitingEngineReply {
		log.Printf("[%s] dropping stale engine reply %q", shortID(id), reply)
		return
	}
	elapsed := c.clock.Pause()
	if err != nil {
		log.Printf("[%s] %v", shortID(id), err)
		return
	}

	next, err := c.state.Load(reply)
	if err != nil {
		log.Printf("[%s] %v: %v", shortID(id), ErrEngineRequest, err)
		return
	}
	log.Printf("[%s] engine replied %q in %s", shortID(id), reply, elapsed)
	c.phase = PhaseIdle
	c.setState(next)
	c.endIfTerminal()
}

// endIfTerminal announces a finished game and starts a new one.
func (c *Controller) endIfTerminal() bool {
	switch c.state.Status() {
	case StatusCheckmate:
		c.notifier.Notify(MsgCheckmate)
	case StatusStalemate:
		c.notifier.Notify(MsgStalemate)
	default:
		return false
	}
	log.Printf("[%s] %s", shortID(c.state.ID()), c.state.Status())
	c.reset()
	return true
}

// abandonRequest makes a pending engine reply stale.
func (c *Controller) abandonRequest() {
	if c.phase != PhaseAwaitingEngineReply {
		return
	}
	c.requests++
	c.phase = PhaseIdle
	c.clock.Reset()
}

func (c *Controller) reset() {
	c.abandonRequest()
	c.phase = PhaseIdle
	c.clock.Reset()
	c.setState(NewGameState())
}

func (c *Controller) setState(s GameState) {
	c.state = s
	c.view.Render(s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
