package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name         string      `json:"name"`
	SquareDark   tcell.Color `json:"squareDark"`
	SquareLight  tcell.Color `json:"squareLight"`
	SquareHigh   tcell.Color `json:"squareHigh"`
	SquareSelect tcell.Color `json:"squareSelect"`
	SquareCheck  tcell.Color `json:"squareCheck"`
	White        tcell.Color `json:"white"`
	Black        tcell.Color `json:"black"`
	Msg          tcell.Color `json:"msg"`
	Rank         tcell.Color `json:"rank"`
	File         tcell.Color `json:"file"`
}

// ThemeHex is the form a Theme takes in a themes file
type ThemeHex struct {
	Name         string `json:"name"`
	SquareDark   string `json:"squareDark"`
	SquareLight  string `json:"squareLight"`
	SquareHigh   string `json:"squareHigh"`
	SquareSelect string `json:"squareSelect"`
	SquareCheck  string `json:"squareCheck"`
	White        string `json:"white"`
	Black        string `json:"black"`
	Msg          string `json:"msg"`
	Rank         string `json:"rank"`
	File         string `json:"file"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareHigh.Hex()),
		fmtHex(t.SquareSelect.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareHigh),
		tcell.GetColor(t.SquareSelect),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
	}
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, ErrNoTheme
}

// LoadTheme looks want up in r (a JSON list of ThemeHex) when r is not nil,
// then among the built-in themes.
func LoadTheme(want string, r io.Reader) (Theme, error) {
	if r != nil {
		var themes []ThemeHex
		if err := json.NewDecoder(r).Decode(&themes); err != nil {
			return Theme{}, fmt.Errorf("theme: %w", err)
		}
		if t, err := ImportThemes(want, themes); err == nil {
			return t, nil
		}
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %s", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color226, // SquareHigh
	tcell.Color223, // SquareSelect
	tcell.Color218, // SquareCheck
	tcell.Color232, // White
	tcell.Color232, // Black
	tcell.Color160, // Msg
	tcell.Color247, // Rank
	tcell.Color247, // File
}

// ThemeClassic is a high contrast blue and green board
var ThemeClassic = Theme{
	"classic",         // Name
	tcell.ColorGreen,  // SquareDark
	tcell.ColorBlue,   // SquareLight
	tcell.ColorYellow, // SquareHigh
	tcell.ColorRed,    // SquareSelect
	tcell.ColorPurple, // SquareCheck
	tcell.ColorWhite,  // White
	tcell.ColorBlack,  // Black
	tcell.ColorRed,    // Msg
	tcell.ColorWhite,  // Rank
	tcell.ColorWhite,  // File
}

var Themes = []Theme{ThemeBasic, ThemeClassic}
