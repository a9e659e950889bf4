package planka

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plankutil/planka-cli/internal/cli/connection"
)

func TestLogin(t *testing.T) {
	var gotBody map[string]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/access-tokens" {
			t.Errorf("request = %s %s, want POST /api/access-tokens", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"item":"tok-fresh"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", nil)
	defer client.Close()

	token, err := client.Login(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("login must not send an Authorization header, got %q", gotAuth)
	}
	if gotBody["emailOrUsername"] != "alice@example.com" || gotBody["password"] != "hunter2" {
		t.Errorf("body = %v, want credentials", gotBody)
	}
	if token != "tok-fresh" {
		t.Errorf("token = %q, want tok-fresh", token)
	}
	if client.Token() != "tok-fresh" {
		t.Errorf("client should adopt the new token, got %q", client.Token())
	}
}

func TestLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"E_INVALID_CREDENTIALS"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "", nil)
	defer client.Close()

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	var authErr *connection.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, any rejected login should be an *connection.AuthError", err)
	}
	if client.Token() != "" {
		t.Errorf("token should stay empty after a failed login, got %q", client.Token())
	}
}

func TestLogout(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"item":{}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", nil)
	defer client.Close()

	if err := client.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/access-tokens/me" {
		t.Errorf("request = %s %s, want DELETE /api/access-tokens/me", gotMethod, gotPath)
	}
}
