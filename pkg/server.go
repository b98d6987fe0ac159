package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// SSHServer hosts the board client: every ssh session gets its own client
// process attached to a pty.
type SSHServer struct {
	ListenAddress string
	ClientBinary  string
	EngineURL     string
	HostKeyFile   string
	IdleTimeout   time.Duration

	server *ssh.Server
}

func NewSSHServer(cfg *ServerConfig) (*SSHServer, error) {
	if cfg.SSHAddr == "" {
		return nil, errors.New("ssh server listen address must be specified")
	}
	s := &SSHServer{
		ListenAddress: cfg.SSHAddr,
		ClientBinary:  cfg.ClientBin,
		EngineURL:     cfg.EngineURL,
		HostKeyFile:   cfg.HostKey,
		IdleTimeout:   cfg.IdleTimeout,
	}
	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.Handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err := s.server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("host key %s: %w", s.HostKeyFile, err)
		}
		return s, nil
	}
	signer, err := GenerateHostKey()
	if err != nil {
		return nil, err
	}
	log.Printf("Generated host key %s", gossh.FingerprintSHA256(signer.PublicKey()))
	s.server.AddHostKey(signer)
	return s, nil
}

// ListenAndServe blocks until Shutdown is called or the listener fails.
func (s *SSHServer) ListenAndServe() error {
	log.Printf("Listening for ssh at %s", s.ListenAddress)
	err := s.server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *SSHServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// GenerateHostKey returns a throwaway ed25519 host key.
func GenerateHostKey() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	return gossh.NewSignerFromKey(priv)
}

// ClientArgs are the arguments the client binary is started with for user.
func (s *SSHServer) ClientArgs(user string) []string {
	return []string{"--nick", Nickname(user), "--engine", s.EngineURL}
}

func (s *SSHServer) Handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "failed to start boardterm: non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.ClientBinary, s.ClientArgs(sess.User())...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Printf("session %s: %v", sess.RemoteAddr(), err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()
	log.Printf("session %s: started client for %q", sess.RemoteAddr(), sess.User())

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("session %s: resize: %v", sess.RemoteAddr(), err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	code := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		if code <= 0 {
			code = 1
		}
		log.Printf("session %s: client exited: %v", sess.RemoteAddr(), err)
	}
	sess.Exit(code)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
