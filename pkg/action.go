package pkg

// Action labels the buttons and commands offered next to the board.
type Action string

const (
	ActionNewGame Action = "New Game"
	ActionUndo    Action = "Undo"
	ActionFlip    Action = "Flip"
	ActionExit    Action = "Exit"
	ActionOK      Action = "OK"
)

// Notification texts shown to the player.
const (
	MsgInvalidMove    = "Invalid move!"
	MsgCheckmate      = "Checkmate! Game over."
	MsgStalemate      = "Stalemate! Game over."
	MsgNothingToUndo  = "Nothing to undo."
	MsgEngineThinking = "Engine is thinking..."
)
