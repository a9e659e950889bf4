package command

import (
	"net/http"
	"testing"
)

func TestCardCommand(t *testing.T) {
	cmd := CardCommand()
	if cmd.Name != "card" {
		t.Errorf("Name = %q, want card", cmd.Name)
	}

	subs := subcommandNames(cmd.Subcommands)
	required := []string{
		"get", "create", "update", "move", "duplicate", "delete",
		"activity", "member", "label",
	}
	for _, name := range required {
		if !subs[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestCardCreate_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	err := runApp(t, srv.URL, "card", "create", "--position", "1", "--description", "details", "5", "Fix bug")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/api/lists/5/cards" {
		t.Errorf("request = %s %s, want POST /api/lists/5/cards", rec.method, rec.path)
	}
	if rec.body["name"] != "Fix bug" || rec.body["position"] != float64(1) {
		t.Errorf("body = %v", rec.body)
	}
	if rec.body["description"] != "details" {
		t.Errorf("description missing from body: %v", rec.body)
	}
}

func TestCardCreate_DefaultPosition(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "card", "create", "5", "Fix bug"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.body["position"] != float64(65535) {
		t.Errorf("position = %v, want the sparse default", rec.body["position"])
	}
	if _, ok := rec.body["description"]; ok {
		t.Errorf("unset description should not be sent: %v", rec.body)
	}
}

func TestCardMove_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "card", "move", "--position", "2", "40", "31"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPatch || rec.path != "/api/cards/40" {
		t.Errorf("request = %s %s, want PATCH /api/cards/40", rec.method, rec.path)
	}
	if rec.body["listId"] != "31" || rec.body["position"] != float64(2) {
		t.Errorf("body = %v, want listId and position only", rec.body)
	}
	if len(rec.body) != 2 {
		t.Errorf("move must not touch other fields: %v", rec.body)
	}
}

func TestCardLabelRemove_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "card", "label", "remove", "40", "50"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodDelete || rec.path != "/api/cards/40/card-labels/labelId:50" {
		t.Errorf("request = %s %s, want DELETE with labelId: prefix", rec.method, rec.path)
	}
}

func TestCardMemberAdd_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "card", "member", "add", "40", "60"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/api/cards/40/card-memberships" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
	if rec.body["userId"] != "60" {
		t.Errorf("body = %v, want userId", rec.body)
	}
}

func TestCardDelete_Forced(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "card", "delete", "--force", "40"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodDelete || rec.path != "/api/cards/40" {
		t.Errorf("request = %s %s, want DELETE /api/cards/40", rec.method, rec.path)
	}
}
