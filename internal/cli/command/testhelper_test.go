package command

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

// recorder captures the last request an action sent and answers with a
// canned envelope.
type recorder struct {
	method string
	path   string
	body   map[string]any
}

func newMockServer(t *testing.T, rec *recorder) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.body = nil
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			json.Unmarshal(data, &rec.body)
		}
		w.Write([]byte(`{"item":{"id":"1","name":"Demo"},"items":[{"id":"1"},{"id":"2"}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// runApp runs the application against the given server with an
// isolated config file, as a user invocation would.
func runApp(t *testing.T, serverURL string, args ...string) error {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	full := []string{"planka-cli",
		"--config", cfgPath,
		"--server", serverURL,
		"--token", "test-token",
	}
	full = append(full, args...)
	return App().Run(full)
}

// subcommandNames collects the subcommand names of a command group.
func subcommandNames(cmds []*cli.Command) map[string]bool {
	names := make(map[string]bool)
	for _, cmd := range cmds {
		names[cmd.Name] = true
	}
	return names
}
