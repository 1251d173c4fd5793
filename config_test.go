package postgrid

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	if cfg.Name != "Blog" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Blog")
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":3000")
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize)
	}
	if cfg.IndexPath != "public/assets/posts.json" {
		t.Errorf("IndexPath = %q", cfg.IndexPath)
	}
	if cfg.GridRateLimit != 120 {
		t.Errorf("GridRateLimit = %d, want 120", cfg.GridRateLimit)
	}
}

func TestSetDefaultsKeepsExplicitSource(t *testing.T) {
	cfg := SiteConfig{IndexURL: "/assets/posts.json", URL: "https://example.com/"}
	cfg.setDefaults()
	if cfg.IndexPath != "" {
		t.Errorf("IndexPath should stay empty when IndexURL is set, got %q", cfg.IndexPath)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postgrid.yml")
	yml := `name: Bio Unfold
url: https://example.com
page_size: 8
tags:
  - Biology
  - Go
thumb_width: 320
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POSTGRID_ADDR", ":8080")
	t.Setenv("POSTGRID_PAGE_SIZE", "10")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Bio Unfold" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want env override :8080", cfg.Addr)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want env override 10", cfg.PageSize)
	}
	if len(cfg.Tags) != 2 || cfg.Tags[0] != "Biology" {
		t.Errorf("Tags = %v", cfg.Tags)
	}
	if cfg.ThumbWidth != 320 {
		t.Errorf("ThumbWidth = %d", cfg.ThumbWidth)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}
