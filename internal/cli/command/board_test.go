package command

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBoardCommand(t *testing.T) {
	cmd := BoardCommand()
	if cmd.Name != "board" {
		t.Errorf("Name = %q, want board", cmd.Name)
	}

	subs := subcommandNames(cmd.Subcommands)
	for _, name := range []string{"get", "create", "update", "delete", "activity", "member"} {
		if !subs[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestBoardCreate_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "board", "create", "10", "Sprint"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/api/projects/10/boards" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
	if rec.body["name"] != "Sprint" || rec.body["position"] != float64(65535) {
		t.Errorf("body = %v", rec.body)
	}
}

func TestBoardGet_GroupedView(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/boards/20" {
			t.Errorf("path = %s, want /api/boards/20", r.URL.Path)
		}
		w.Write([]byte(`{
			"item": {"id": "20", "name": "Sprint"},
			"included": {
				"lists": [{"id": "l1", "name": "Backlog", "position": 1}],
				"cards": [{"id": "c1", "name": "first", "listId": "l1", "position": 1}]
			}
		}`))
	}))
	defer srv.Close()

	if err := runApp(t, srv.URL, "board", "get", "20"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestBoardMemberAdd_DefaultRole(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "board", "member", "add", "20", "60"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/api/boards/20/board-memberships" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
	if rec.body["userId"] != "60" || rec.body["role"] != "editor" {
		t.Errorf("body = %v, want editor default role", rec.body)
	}
}

func TestBoardMemberRemove_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "board", "member", "remove", "--force", "70"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodDelete || rec.path != "/api/board-memberships/70" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
}
