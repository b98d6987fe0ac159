package pkg

import (
	"context"
	"testing"
	"time"
)

func TestGenerateHostKey(t *testing.T) {
	signer, err := GenerateHostKey()
	if err != nil {
		t.Fatal(err)
	}
	if got := signer.PublicKey().Type(); got != "ssh-ed25519" {
		t.Errorf("key type = %s", got)
	}
}

func TestSSHServerClientArgs(t *testing.T) {
	s, err := NewSSHServer(&ServerConfig{
		SSHAddr:     "127.0.0.1:0",
		ClientBin:   "boardterm",
		EngineURL:   "http://engine/best-move",
		IdleTimeout: time.Minute,
	})
	if err != nil {
		t.Fatal(err)
	}
	args := s.ClientArgs("carol")
	want := []string{"--nick", "carol", "--engine", "http://engine/best-move"}
	if len(args) != len(want) {
		t.Fatalf("args = %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args = %v, want %v", args, want)
			break
		}
	}
}

func TestSSHServerShutdown(t *testing.T) {
	s, err := NewSSHServer(&ServerConfig{SSHAddr: "127.0.0.1:0", ClientBin: "boardterm", EngineURL: DefaultEngineURL})
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	// Shutdown may race the listener; either way ListenAndServe must return.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewSSHServerBadHostKey(t *testing.T) {
	_, err := NewSSHServer(&ServerConfig{SSHAddr: ":0", HostKey: "/nonexistent/key"})
	if err == nil {
		t.Error("missing host key file accepted")
	}
}
