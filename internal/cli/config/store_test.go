package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "config.json"))
}

func TestStore_LoadMissing(t *testing.T) {
	st := testStore(t)

	cfg, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.URL != "" || cfg.Token != "" {
		t.Errorf("missing file should load as empty config, got %+v", cfg)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	st := testStore(t)

	want := Config{URL: "https://planka.example.com", Token: "tok-abc"}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestStore_SavePermissions(t *testing.T) {
	st := testStore(t)

	if err := st.Save(Config{Token: "secret"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(st.Path())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(filepath.Join(dir, "nested", "planka", "config.json"))

	if err := st.Save(Config{URL: "http://localhost:3000"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(st.Path()); err != nil {
		t.Errorf("config file should exist after Save: %v", err)
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	st := testStore(t)

	if err := os.WriteFile(st.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := st.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load error = %v, want ErrCorrupt", err)
	}
}

func TestStore_SetTokenPreservesURL(t *testing.T) {
	st := testStore(t)

	if err := st.SetURL("https://planka.example.com"); err != nil {
		t.Fatalf("SetURL failed: %v", err)
	}
	if err := st.SetToken("tok-xyz"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	cfg, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.URL != "https://planka.example.com" {
		t.Errorf("URL = %q, SetToken should not clobber it", cfg.URL)
	}
	if cfg.Token != "tok-xyz" {
		t.Errorf("Token = %q, want %q", cfg.Token, "tok-xyz")
	}
}

func TestStore_ClearIdempotent(t *testing.T) {
	st := testStore(t)

	if err := st.Save(Config{URL: "http://localhost:3000"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	// Clearing again must not fail.
	if err := st.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}

	cfg, err := st.Load()
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if cfg.URL != "" || cfg.Token != "" {
		t.Errorf("config should be empty after Clear, got %+v", cfg)
	}
}

func TestStore_EmptyFieldsOmitted(t *testing.T) {
	st := testStore(t)

	if err := st.Save(Config{URL: "http://localhost:3000"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(data), "token") {
		t.Errorf("empty token should be omitted from file, got %s", data)
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	want := filepath.Join("/tmp/xdg-test", "planka", "config.json")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

func TestDefaultPath_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	want := filepath.Join("/home/tester", ".config", "planka", "config.json")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

func TestNewStore_DefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	st := NewStore("")
	if st.Path() != DefaultPath() {
		t.Errorf("Path = %q, want %q", st.Path(), DefaultPath())
	}
}
