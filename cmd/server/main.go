package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/qnkhuat/boardterm/pkg"
)

func main() {
	cfg, err := pkg.LoadServerConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logFile := pkg.InitLog(cfg.Log, "SERVER: ")
	defer logFile.Close()

	log.Println("Server started")
	s, err := pkg.NewSSHServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe()
	}()
	color.Green("boardterm is served at ssh://localhost%s", cfg.SSHAddr)
	color.Cyan("engine: %s, client: %s", cfg.EngineURL, cfg.ClientBin)

	sigc := make(chan os.Signal, 1)
	// Wait for teminate signal
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Fatal(err)
		}
	case sig := <-sigc:
		log.Printf("Received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}
	log.Println("Server stopped")
}
