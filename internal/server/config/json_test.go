package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJson_OverlaysNamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	content := `{"address": ":6060", "database_dsn": "postgres://json/db"}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	oldArgs := os.Args
	os.Args = []string{"app", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.Addr != ":6060" {
		t.Fatalf("Addr = %q, want :6060", cfg.Addr)
	}
	if cfg.DatabaseDSN != "postgres://json/db" {
		t.Fatalf("DatabaseDSN = %q, want json value", cfg.DatabaseDSN)
	}
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	if err := os.WriteFile(path, []byte(`{"address": ":6060"}`), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	oldArgs := os.Args
	os.Args = []string{"app", "-config", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	dsn := cfg.DatabaseDSN
	parseJson(cfg)

	if cfg.Addr != ":6060" {
		t.Fatalf("Addr = %q, want :6060", cfg.Addr)
	}
	if cfg.DatabaseDSN != dsn {
		t.Fatalf("DatabaseDSN changed to %q, want default kept", cfg.DatabaseDSN)
	}
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"app"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg
	parseJson(cfg)

	if *cfg != want {
		t.Fatalf("config changed without a -c flag: %+v", cfg)
	}
}
