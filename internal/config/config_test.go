package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "min_support: 0.05\nlens: support\nitem_column: product\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MinSupport != 0.05 {
		t.Errorf("MinSupport = %g, want 0.05", cfg.MinSupport)
	}
	if cfg.Lens != "support" {
		t.Errorf("Lens = %s, want support", cfg.Lens)
	}
	if cfg.ItemColumn != "product" {
		t.Errorf("ItemColumn = %s, want product", cfg.ItemColumn)
	}

	// Untouched fields keep their defaults.
	def := Default()
	if cfg.MinConfidence != def.MinConfidence {
		t.Errorf("MinConfidence = %g, want default %g", cfg.MinConfidence, def.MinConfidence)
	}
	if cfg.InvoiceColumn != def.InvoiceColumn {
		t.Errorf("InvoiceColumn = %s, want default %s", cfg.InvoiceColumn, def.InvoiceColumn)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("min_support: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestConfig_ParamsMapping(t *testing.T) {
	cfg := Default()
	cfg.MinSupport = 0.2
	cfg.LongtailMaxSupport = 0.1

	p := cfg.Params()
	if p.MinSupport != 0.2 {
		t.Errorf("Params.MinSupport = %g, want 0.2", p.MinSupport)
	}
	if p.LongtailMaxSupport != 0.1 {
		t.Errorf("Params.LongtailMaxSupport = %g, want 0.1", p.LongtailMaxSupport)
	}
}

func TestDir_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "shelfwise") {
		t.Errorf("dir = %s", dir)
	}
}
