package pkg

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/notnil/chess"
	"github.com/qnkhuat/boardterm/pkg/gui"
)

// SerialDispatcher runs closures one at a time. The line-mode client has no
// event loop, so this lock stands in for the UI goroutine.
type SerialDispatcher struct {
	mu sync.Mutex
}

func (d *SerialDispatcher) Dispatch(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f()
}

var (
	warnColor   = color.New(color.FgRed, color.Bold)
	statusColor = color.New(color.FgCyan)
	thinkColor  = color.New(color.FgYellow)
)

// Command is one line-mode command.
type Command struct {
	Name        string
	ShortName   string
	Description string
	Handler     func(c *Console, args []string)
}

// Console is the line-mode client: it prints the board after every change
// and reads moves such as "e2 e4" from a readline prompt.
type Console struct {
	Ctrl     *Controller
	Out      io.Writer
	Palette  gui.Palette
	serial   SerialDispatcher
	commands map[string]*Command
	flipped  bool
	quit     bool
	state    GameState
}

func NewConsole(engine Engine, out io.Writer) *Console {
	c := &Console{
		Out:      out,
		Palette:  gui.DefaultPalette,
		commands: make(map[string]*Command),
	}
	c.Ctrl = NewController(engine, c, c, c.serial.Dispatch)
	for _, cmd := range consoleCommands {
		c.commands[cmd.Name] = cmd
		if cmd.ShortName != "" {
			c.commands[cmd.ShortName] = cmd
		}
	}
	return c
}

var consoleCommands = []*Command{
	{"new", "n", "Start a new game", func(c *Console, _ []string) { c.Ctrl.NewGame() }},
	{"undo", "u", "Take back your last move", func(c *Console, _ []string) { c.Ctrl.Undo() }},
	{"flip", "f", "Turn the board around", func(c *Console, _ []string) {
		c.flipped = !c.flipped
		c.printBoard()
	}},
	{"board", "b", "Show the board", func(c *Console, _ []string) { c.Render(c.state) }},
	{"fen", "", "Print the current position, or set it with fen <FEN>", func(c *Console, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(c.Out, c.state.FEN())
			return
		}
		if err := c.Ctrl.Load(strings.Join(args, " ")); err != nil {
			warnColor.Fprintln(c.Out, err)
		}
	}},
	{"moves", "m", "List the moves played", func(c *Console, _ []string) {
		for _, mp := range gui.MovePairs(c.state.History()) {
			fmt.Fprintln(c.Out, gui.FormatPair(mp))
		}
	}},
	{"help", "?", "Show available commands", func(c *Console, _ []string) { c.printHelp() }},
	{"quit", "q", "Leave", func(c *Console, _ []string) { c.quit = true }},
}

// Completer offers the command names to readline.
func Completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(consoleCommands))
	for _, cmd := range consoleCommands {
		items = append(items, readline.PcItem(cmd.Name))
	}
	return readline.NewPrefixCompleter(items...)
}

// Run reads commands until quit or end of input.
func (c *Console) Run(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "boardterm > ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    Completer(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	// Engine replies arrive while the prompt is waiting.
	c.Out = rl.Stdout()

	c.serial.Dispatch(func() {
		fmt.Fprintln(c.Out, "Type 'help' for commands")
		c.Ctrl.Start()
	})
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if c.Exec(line) {
			return nil
		}
	}
}

// Exec runs one input line and reports whether the console should exit.
func (c *Console) Exec(line string) (quit bool) {
	c.serial.Dispatch(func() {
		c.exec(strings.TrimSpace(line))
		quit = c.quit
	})
	return quit
}

func (c *Console) exec(line string) {
	if line == "" {
		return
	}
	if from, to, ok := parseMove(line); ok {
		c.Ctrl.HandleDrop(from, to)
		return
	}
	fields := strings.Fields(line)
	cmd, ok := c.commands[strings.ToLower(fields[0])]
	if !ok {
		warnColor.Fprintf(c.Out, "unknown command %q, type 'help'\n", fields[0])
		return
	}
	cmd.Handler(c, fields[1:])
}

// parseMove accepts "e2e4", "e2 e4" and "e2-e4". A trailing promotion piece
// is ignored, pawns always promote to a queen.
func parseMove(line string) (from, to string, ok bool) {
	s := strings.ToLower(line)
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(s) == 5 && strings.ContainsRune("qrbn", rune(s[4])) {
		s = s[:4]
	}
	if _, _, ok := gui.MoveSquares(s); !ok || len(s) != 4 {
		return "", "", false
	}
	return s[:2], s[2:], true
}

// Render implements View.
func (c *Console) Render(s GameState) {
	c.state = s
	c.printBoard()
	statusColor.Fprintf(c.Out, "%s to move", s.Turn())
	if last, ok := s.LastMove(); ok {
		statusColor.Fprintf(c.Out, ", last move %s", last.Move)
	}
	if s.InCheck() {
		warnColor.Fprint(c.Out, ", check")
	}
	fmt.Fprintln(c.Out)
	if c.Ctrl.Phase() == PhaseAwaitingEngineReply {
		thinkColor.Fprintln(c.Out, MsgEngineThinking)
	}
}

// Notify implements Notifier.
func (c *Console) Notify(msg string) {
	log.Printf("notify: %s", msg)
	warnColor.Fprintln(c.Out, msg)
}

func (c *Console) printBoard() {
	fmt.Fprint(c.Out, gui.ASCII(c.state.Position().Board(), c.flipped, marksFor(c.state, chess.NoSquare), c.Palette))
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.Out, "Enter a move as e2e4 or e2 e4. Commands:")
	names := make([]string, 0, len(c.commands))
	for name, cmd := range c.commands {
		if name == cmd.Name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.commands[name]
		short := ""
		if cmd.ShortName != "" {
			short = "(" + cmd.ShortName + ")"
		}
		fmt.Fprintf(c.Out, "  %-6s %-4s %s\n", cmd.Name, short, cmd.Description)
	}
}
