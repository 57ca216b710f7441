package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/flux"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// chdir runs the test in an empty directory so no flux.json is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestApplySets(t *testing.T) {
	state, err := applySets(flux.State{"count": 1}, []string{
		"count=5",
		"title=hello",
		"user.name=ada",
		`tags=["a","b"]`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if state["count"] != float64(5) {
		t.Errorf("count = %v", state["count"])
	}
	if state["title"] != "hello" {
		t.Errorf("title = %v", state["title"])
	}
	user, _ := state["user"].(map[string]any)
	if user["name"] != "ada" {
		t.Errorf("user = %v", state["user"])
	}
	if tags, _ := state["tags"].([]any); len(tags) != 2 {
		t.Errorf("tags = %v", state["tags"])
	}
}

func TestApplySetsInvalid(t *testing.T) {
	if _, err := applySets(flux.State{}, []string{"nope"}); err == nil {
		t.Error("expected error for missing =")
	}
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		spec    string
		name    string
		payload flux.State
		wantErr bool
	}{
		{"reset", "reset", nil, false},
		{`increment:{"amount":2}`, "increment", flux.State{"amount": float64(2)}, false},
		{`rename:{"title":"a:b"}`, "rename", flux.State{"title": "a:b"}, false},
		{"increment:{bad", "", nil, true},
		{":{}", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, payload, err := parseDispatch(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if name != tt.name {
				t.Errorf("name = %q, want %q", name, tt.name)
			}
			for k, v := range tt.payload {
				if payload[k] != v {
					t.Errorf("payload[%s] = %v, want %v", k, payload[k], v)
				}
			}
		})
	}
}

func TestParseDispatchBadPayloadCode(t *testing.T) {
	_, _, err := parseDispatch("increment:[")
	if errors.Code(err) != "E402" {
		t.Errorf("code = %q, want E402", errors.Code(err))
	}
}

func TestQuery(t *testing.T) {
	state := flux.State{"count": 3, "title": "flux", "nested": map[string]any{"ok": true}}
	tests := map[string]string{
		"count":     "3",
		"title":     "flux",
		"nested.ok": "true",
	}
	for path, want := range tests {
		got, err := query(state, path)
		if err != nil {
			t.Errorf("query(%q): %v", path, err)
			continue
		}
		if got != want {
			t.Errorf("query(%q) = %q, want %q", path, got, want)
		}
	}
	if _, err := query(state, "missing"); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestRenderCommand(t *testing.T) {
	chdir(t)
	out, err := execute(t, "render", "--set", "count=2", "--dispatch", `increment:{"amount":3}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>flux</title>", "<strong>5</strong>", "app-styles-elem"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderQuery(t *testing.T) {
	chdir(t)
	out, err := execute(t, "render", "--dispatch", `rename:{"title":"Hi"}`, "--query", "title")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "Hi" {
		t.Errorf("out = %q", out)
	}
}

func TestRenderUnknownAction(t *testing.T) {
	chdir(t)
	_, err := execute(t, "render", "--dispatch", "explode")
	if errors.Code(err) != "E401" {
		t.Errorf("err = %v, want E401", err)
	}
}

func TestRenderConfigAndStateFile(t *testing.T) {
	dir := chdir(t)
	os.WriteFile(filepath.Join(dir, "flux.yaml"), []byte("name: demo\nstate:\n  title: from-config\n"), 0644)
	os.WriteFile(filepath.Join(dir, "state.json"), []byte(`{"count": 7}`), 0644)

	out, err := execute(t, "render", "--state", "state.json")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>demo</title>", "<h1>from-config</h1>", "<strong>7</strong>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSnapshotCommand(t *testing.T) {
	dir := chdir(t)
	out := filepath.Join(dir, "out")
	if _, err := execute(t, "snapshot", "--dir", out, "--key", "home", "--dispatch", "increment"); err != nil {
		t.Fatal(err)
	}

	html, err := os.ReadFile(filepath.Join(out, "home.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "<strong>1</strong>") {
		t.Errorf("html = %s", html)
	}
	state, err := os.ReadFile(filepath.Join(out, "home.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(state), `"count": 1`) {
		t.Errorf("state = %s", state)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("out = %q", out)
	}
}

func TestLiveServerActions(t *testing.T) {
	chdir(t)
	flags := &appFlags{}
	s, err := flags.newSession(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	srv := newLiveServer(s)

	req := httptest.NewRequest(http.MethodPost, "/actions/increment", strings.NewReader(`{"amount": 4}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if v, _ := s.app.View(); v.Count != 4 {
		t.Errorf("count = %d, want 4", v.Count)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "flux_dispatches_total") {
		t.Errorf("metrics missing dispatch counter")
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"count": 1}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watchFile: %v", err)
	}
}
