package config

import (
	"os"
	"testing"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"app", "-a", ":7070", "-d", "postgres://flag/db", "-unrelated", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	if cfg.Addr != ":7070" {
		t.Fatalf("Addr = %q, want :7070", cfg.Addr)
	}
	if cfg.DatabaseDSN != "postgres://flag/db" {
		t.Fatalf("DatabaseDSN = %q, want flag value", cfg.DatabaseDSN)
	}
}

func TestParseFlags_NoFlagsKeepsValues(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"app"}

	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg
	parseFlags(cfg)

	if *cfg != want {
		t.Fatalf("config changed without flags: %+v", cfg)
	}
}
