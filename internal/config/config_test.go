package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/flux/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort || cfg.Server.Host != DefaultHost {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Snapshot.Dir != DefaultSnapshotDir {
		t.Errorf("snapshot.dir = %q", cfg.Snapshot.Dir)
	}
	if cfg.State == nil {
		t.Error("state should default to an empty map")
	}
	if cfg.Address() != "localhost:3000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("port = %d", cfg.Server.Port)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "flux.json", `{
		"name": "counter",
		"server": {"port": 8080},
		"render": {"pretty": true},
		"state": {"count": 3}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "counter" || cfg.Server.Port != 8080 || !cfg.Render.Pretty {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("defaults should fill missing host, got %q", cfg.Server.Host)
	}
	if cfg.State["count"] != float64(3) {
		t.Errorf("state = %v", cfg.State)
	}
	if cfg.Path() != filepath.Join(dir, "flux.json") {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "flux.yaml", `
name: yamlapp
log:
  level: debug
  format: json
snapshot:
  s3:
    bucket: snaps
    prefix: flux/
state:
  title: hello
  nested:
    a: 1
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Snapshot.S3.Bucket != "snaps" || cfg.Snapshot.S3.Prefix != "flux/" {
		t.Errorf("s3 = %+v", cfg.Snapshot.S3)
	}
	nested, ok := cfg.State["nested"].(map[string]any)
	if !ok || nested["a"] != 1 {
		t.Errorf("state.nested = %#v", cfg.State["nested"])
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		code    string
	}{
		{"bad json", "flux.json", "{", "E202"},
		{"bad port", "flux.json", `{"server":{"port":70000}}`, "E201"},
		{"bad level", "flux.yml", "log:\n  level: loud\n", "E201"},
		{"bad format", "flux.yaml", "log:\n  format: xml\n", "E201"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, errors.New(tt.code)) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if errors.Code(err) != "E202" {
		t.Errorf("err = %v", err)
	}
}

func TestLoadState(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "state.yaml", "count: 2\ntitle: t\n")
	js := writeFile(t, dir, "state.json", `{"count": 4}`)

	s, err := LoadState(yml)
	if err != nil || s["count"] != 2 || s["title"] != "t" {
		t.Errorf("yaml state = %v, %v", s, err)
	}
	s, err = LoadState(js)
	if err != nil || s["count"] != float64(4) {
		t.Errorf("json state = %v, %v", s, err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.json", "out.yaml"} {
		cfg := New()
		cfg.Name = "saved"
		cfg.Server.Port = 9000

		path := filepath.Join(dir, name)
		if err := cfg.SaveTo(path); err != nil {
			t.Fatalf("SaveTo(%s): %v", name, err)
		}
		loaded, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", name, err)
		}
		if loaded.Name != "saved" || loaded.Server.Port != 9000 {
			t.Errorf("%s: loaded = %+v", name, loaded)
		}
	}
}

func TestNewLogger(t *testing.T) {
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("json output = %s", out)
	}
}
