package pkg

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
)

func TestPlayerColor(t *testing.T) {
	for _, pc := range []PlayerColor{White, Black} {
		if ColorOf(pc.Chess()) != pc {
			t.Errorf("%s does not survive chess.Color", pc)
		}
	}
	if ColorOf(chess.NoColor) != Unknown || Unknown.String() != "Unknown" {
		t.Error("NoColor should map to Unknown")
	}
	if HumanColor == EngineColor {
		t.Error("the engine plays the other side")
	}
}

func TestNickname(t *testing.T) {
	if got := Nickname("alice"); got != "alice" {
		t.Errorf("Nickname(alice) = %q", got)
	}
	if got := Nickname("al ice;rm -rf"); got != "alicerm-rf" {
		t.Errorf("Nickname = %q", got)
	}
	if got := Nickname(strings.Repeat("x", 40)); len(got) != maxNickLength {
		t.Errorf("long nick kept %d chars", len(got))
	}
	if got := Nickname("!!!"); got == "" || !strings.Contains(got, "-") {
		t.Errorf("empty nick became %q, want a pet name", got)
	}
}
