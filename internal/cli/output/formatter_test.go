package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTable, "*output.TableFormatter"},
		{FormatJSON, "*output.JSONFormatter"},
		{FormatYAML, "*output.YAMLFormatter"},
		{Format("bogus"), "*output.TableFormatter"},
	}

	for _, tt := range tests {
		f := NewFormatter(tt.format)
		switch tt.want {
		case "*output.TableFormatter":
			if _, ok := f.(*TableFormatter); !ok {
				t.Errorf("NewFormatter(%q) = %T, want TableFormatter", tt.format, f)
			}
		case "*output.JSONFormatter":
			if _, ok := f.(*JSONFormatter); !ok {
				t.Errorf("NewFormatter(%q) = %T, want JSONFormatter", tt.format, f)
			}
		case "*output.YAMLFormatter":
			if _, ok := f.(*YAMLFormatter); !ok {
				t.Errorf("NewFormatter(%q) = %T, want YAMLFormatter", tt.format, f)
			}
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	data := map[string]any{"id": "1", "name": "Demo"}
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "Demo" {
		t.Errorf("round trip lost data: %v", decoded)
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Errorf("output should be indented:\n%s", buf.String())
	}
}

func TestYAMLFormatter(t *testing.T) {
	f := &YAMLFormatter{}
	var buf bytes.Buffer

	data := map[string]any{"id": "1", "nested": map[string]any{"k": "v"}}
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["id"] != "1" {
		t.Errorf("round trip lost data: %v", decoded)
	}
}
