package pkg

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EngineURL != DefaultEngineURL {
		t.Errorf("EngineURL = %q", cfg.EngineURL)
	}
	if cfg.EngineTimeout != 0 || cfg.Log != "./log" || cfg.Theme != "basic" || cfg.Plain {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigLayers(t *testing.T) {
	t.Setenv("BOARDTERM_ENGINE_URL", "http://engine:9000/best-move")
	t.Setenv("BOARDTERM_ENGINE_TIMEOUT", "3s")
	t.Setenv("BOARDTERM_THEME", "classic")

	cfg, err := LoadConfig([]string{"--theme", "basic", "--plain", "--nick", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EngineURL != "http://engine:9000/best-move" || cfg.EngineTimeout != 3*time.Second {
		t.Errorf("environment ignored: %+v", cfg)
	}
	if cfg.Theme != "basic" || !cfg.Plain || cfg.Nick != "bob" {
		t.Errorf("flags ignored: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := LoadConfig([]string{"--engine", "not a url"}); err == nil {
		t.Error("bad engine url accepted")
	}
	if _, err := LoadConfig([]string{"--engine-timeout", "-1s"}); err == nil {
		t.Error("negative timeout accepted")
	}
	if _, err := LoadConfig([]string{"--bogus"}); err == nil {
		t.Error("unknown flag accepted")
	}

	t.Setenv("BOARDTERM_ENGINE_TIMEOUT", "soon")
	if _, err := LoadConfig(nil); err == nil {
		t.Error("bad duration in environment accepted")
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("BOARDTERM_CLIENT_BIN", "/usr/local/bin/boardterm")

	cfg, err := LoadServerConfig([]string{"--addr", ":2022"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SSHAddr != ":2022" || cfg.ClientBin != "/usr/local/bin/boardterm" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.IdleTimeout != 5*time.Minute || cfg.HostKey != "" {
		t.Errorf("defaults = %+v", cfg)
	}
}
