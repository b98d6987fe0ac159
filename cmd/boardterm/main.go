package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/qnkhuat/boardterm/pkg"
	"github.com/qnkhuat/boardterm/pkg/gui"
	"golang.org/x/term"
)

func main() {
	cfg, err := pkg.LoadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logFile := pkg.InitLog(cfg.Log, "CLIENT: ")
	defer logFile.Close()

	theme, err := loadTheme(cfg)
	if err != nil {
		log.Fatal(err)
	}
	nick := pkg.Nickname(cfg.Nick)
	engine := pkg.NewHTTPEngine(cfg.EngineURL, cfg.EngineTimeout)

	// A full-screen board needs a terminal on both ends
	plain := cfg.Plain || !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd()))
	log.Printf("New client %s, engine %s, plain %v", nick, cfg.EngineURL, plain)

	if plain {
		err = pkg.NewConsole(engine, os.Stdout).Run(cfg.HistoryFile)
	} else {
		err = pkg.NewClient(engine, theme, nick).Run()
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Client %s left", nick)
}

func loadTheme(cfg *pkg.Config) (gui.Theme, error) {
	if cfg.ThemeFile == "" {
		return gui.LoadTheme(cfg.Theme, nil)
	}
	f, err := os.Open(cfg.ThemeFile)
	if err != nil {
		return gui.Theme{}, err
	}
	defer f.Close()
	return gui.LoadTheme(cfg.Theme, f)
}
