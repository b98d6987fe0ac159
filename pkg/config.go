package pkg

import (
	"flag"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable, e.g. BOARDTERM_ENGINE_URL.
const EnvPrefix = "BOARDTERM"

// Config is the board client's configuration. Defaults come from the struct
// tags, the environment overrides them and flags override the environment.
type Config struct {
	EngineURL     string        `envconfig:"ENGINE_URL" default:"http://127.0.0.1:5000/best-move" validate:"required,url"`
	EngineTimeout time.Duration `envconfig:"ENGINE_TIMEOUT" default:"0s" validate:"gte=0"`
	Log           string        `envconfig:"LOG" default:"./log" validate:"required"`
	Theme         string        `envconfig:"THEME" default:"basic" validate:"required"`
	ThemeFile     string        `envconfig:"THEME_FILE"`
	Plain         bool          `envconfig:"PLAIN"`
	HistoryFile   string        `envconfig:"HISTORY_FILE" default:".boardterm_history"`
	Nick          string        `envconfig:"NICK"`
}

func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	fs := flag.NewFlagSet("boardterm", flag.ContinueOnError)
	fs.StringVar(&cfg.EngineURL, "engine", cfg.EngineURL, "URL of the move-search service")
	fs.DurationVar(&cfg.EngineTimeout, "engine-timeout", cfg.EngineTimeout, "engine request timeout, 0 waits forever")
	fs.StringVar(&cfg.Log, "log", cfg.Log, "path to log file")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "board theme")
	fs.StringVar(&cfg.ThemeFile, "theme-file", cfg.ThemeFile, "JSON file with extra themes")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "line mode instead of the full-screen board")
	fs.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "line mode history file")
	fs.StringVar(&cfg.Nick, "nick", cfg.Nick, "name shown in the title")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ServerConfig configures the ssh host.
type ServerConfig struct {
	SSHAddr     string        `envconfig:"SSH_ADDR" default:":2222" validate:"required"`
	HostKey     string        `envconfig:"HOST_KEY"`
	ClientBin   string        `envconfig:"CLIENT_BIN" default:"boardterm" validate:"required"`
	EngineURL   string        `envconfig:"ENGINE_URL" default:"http://127.0.0.1:5000/best-move" validate:"required,url"`
	IdleTimeout time.Duration `envconfig:"IDLE_TIMEOUT" default:"5m" validate:"gte=0"`
	Log         string        `envconfig:"LOG" default:"./server.log" validate:"required"`
}

func LoadServerConfig(args []string) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	fs := flag.NewFlagSet("boardterm-server", flag.ContinueOnError)
	fs.StringVar(&cfg.SSHAddr, "addr", cfg.SSHAddr, "ssh listen address")
	fs.StringVar(&cfg.HostKey, "host-key", cfg.HostKey, "host key file, a fresh key is generated when empty")
	fs.StringVar(&cfg.ClientBin, "client", cfg.ClientBin, "board client binary started for each session")
	fs.StringVar(&cfg.EngineURL, "engine", cfg.EngineURL, "URL of the move-search service, passed to clients")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "close idle sessions after this long")
	fs.StringVar(&cfg.Log, "log", cfg.Log, "path to log file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
