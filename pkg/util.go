package pkg

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/notnil/chess"
)

const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func GameFromFEN(gamefen string) (*chess.Game, error) {
	fen, err := chess.FEN(gamefen)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidFEN, gamefen, err)
	}
	return chess.NewGame(fen, chess.UseNotation(chess.UCINotation{})), nil
}

// InitLog sends the standard logger to dest. The terminal belongs to the
// board, so nothing is ever logged to stdout.
func InitLog(dest, prefix string) io.Closer {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	return f
}
