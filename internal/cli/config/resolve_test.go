package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_FileOnly(t *testing.T) {
	st := testStore(t)
	if err := st.Save(Config{URL: "http://file:3000", Token: "file-token"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sess, err := st.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess.URL != "http://file:3000" {
		t.Errorf("URL = %q, want file value", sess.URL)
	}
	if sess.Token != "file-token" {
		t.Errorf("Token = %q, want file value", sess.Token)
	}
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	st := testStore(t)
	if err := st.Save(Config{URL: "http://file:3000", Token: "file-token"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PLANKA_URL", "http://env:3000")

	sess, err := st.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess.URL != "http://env:3000" {
		t.Errorf("URL = %q, env should override file", sess.URL)
	}
	if sess.Token != "file-token" {
		t.Errorf("Token = %q, untouched fields keep the file value", sess.Token)
	}
}

func TestResolve_FlagOverridesEnv(t *testing.T) {
	st := testStore(t)
	if err := st.Save(Config{URL: "http://file:3000"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PLANKA_URL", "http://env:3000")
	t.Setenv("PLANKA_TOKEN", "env-token")

	sess, err := st.Resolve("http://flag:3000", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess.URL != "http://flag:3000" {
		t.Errorf("URL = %q, flag should override env", sess.URL)
	}
	if sess.Token != "env-token" {
		t.Errorf("Token = %q, env should fill fields the flag left unset", sess.Token)
	}
}

func TestResolve_MissingFile(t *testing.T) {
	st := testStore(t)

	sess, err := st.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess.URL != "" || sess.Token != "" {
		t.Errorf("no sources should yield empty session, got %+v", sess)
	}
}

func TestResolve_CorruptFile(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "config.json"))
	if err := os.WriteFile(st.Path(), []byte("not json at all"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := st.Resolve("", "")
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Resolve error = %v, want ErrCorrupt", err)
	}
}

func TestResolve_FlagsOnly(t *testing.T) {
	st := testStore(t)

	sess, err := st.Resolve("http://flag:3000", "flag-token")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sess.URL != "http://flag:3000" || sess.Token != "flag-token" {
		t.Errorf("session = %+v, want flag values", sess)
	}
}
