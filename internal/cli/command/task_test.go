package command

import (
	"net/http"
	"testing"
)

func TestTaskListCommand(t *testing.T) {
	cmd := TaskListCommand()
	if cmd.Name != "tasklist" {
		t.Errorf("Name = %q, want tasklist", cmd.Name)
	}

	subs := subcommandNames(cmd.Subcommands)
	for _, name := range []string{"create", "get", "update", "delete"} {
		if !subs[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestTaskCommand(t *testing.T) {
	cmd := TaskCommand()
	if cmd.Name != "task" {
		t.Errorf("Name = %q, want task", cmd.Name)
	}

	subs := subcommandNames(cmd.Subcommands)
	for _, name := range []string{"create", "complete", "update", "delete"} {
		if !subs[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestTaskListCreate_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "tasklist", "create", "40", "Checklist"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/api/cards/40/task-lists" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
	if rec.body["name"] != "Checklist" {
		t.Errorf("body = %v", rec.body)
	}
}

func TestTaskComplete_Request(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "task", "complete", "90"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.method != http.MethodPatch || rec.path != "/api/tasks/90" {
		t.Errorf("request = %s %s", rec.method, rec.path)
	}
	if rec.body["isCompleted"] != true || len(rec.body) != 1 {
		t.Errorf("body = %v, want isCompleted only", rec.body)
	}
}

func TestTaskComplete_Undo(t *testing.T) {
	var rec recorder
	srv := newMockServer(t, &rec)

	if err := runApp(t, srv.URL, "task", "complete", "--undo", "90"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if rec.body["isCompleted"] != false {
		t.Errorf("body = %v, want isCompleted false", rec.body)
	}
}
