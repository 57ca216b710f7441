package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/vango-dev/flux/internal/config"
	"github.com/vango-dev/flux/internal/demo"
	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/component"
	"github.com/vango-dev/flux/pkg/dom"
	"github.com/vango-dev/flux/pkg/flux"
	"github.com/vango-dev/flux/pkg/render"
	"github.com/vango-dev/flux/pkg/telemetry"
)

// appFlags are the flags shared by every command that builds the app.
type appFlags struct {
	configPath string
	statePath  string
	sets       []string
	dispatches []string
}

func (f *appFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (default: flux.json or flux.yaml in the working directory)")
	cmd.Flags().StringVar(&f.statePath, "state", "", "JSON or YAML file merged over the configured initial state")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Set a state value before mounting, as path=value (repeatable)")
	cmd.Flags().StringArrayVarP(&f.dispatches, "dispatch", "d", nil, "Dispatch an action after mounting, as name or name:{json} (repeatable)")
}

// session is a mounted demo app with its instrumentation.
type session struct {
	cfg      *config.Config
	app      *demo.App
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

func (f *appFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadFile(f.configPath)
	}
	return config.Load(".")
}

// initialState merges the configured state, the --state file and --set edits.
func (f *appFlags) initialState(cfg *config.Config) (flux.State, error) {
	state := flux.State(cfg.State).Clone()
	if f.statePath != "" {
		loaded, err := config.LoadState(f.statePath)
		if err != nil {
			return nil, err
		}
		state = flux.Merge(state, loaded)
	}
	return applySets(state, f.sets)
}

// newSession loads config and state, builds the demo app and mounts it.
func (f *appFlags) newSession(logOut io.Writer) (*session, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	state, err := f.initialState(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.NewLogger(logOut)
	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(telemetry.WithNamespace("flux"), telemetry.WithRegistry(registry))
	tracer := telemetry.NewTracer()

	app := demo.NewApp(dom.NewDocument(), state, metrics.Middleware(), tracer.Middleware())
	mounter := &component.Mounter{
		Logger:   logger,
		Observer: telemetry.Observers{metrics, tracer},
	}
	app.Mount(mounter)

	s := &session{cfg: cfg, app: app, registry: registry, metrics: metrics, logger: logger}
	for _, spec := range f.dispatches {
		name, payload, err := parseDispatch(spec)
		if err != nil {
			return nil, err
		}
		if err := app.Dispatch(name, payload); err != nil {
			return nil, errors.New("E401").Wrap(err)
		}
	}
	return s, nil
}

func (s *session) renderer(pretty bool) *render.Renderer {
	return render.NewRenderer(render.RendererConfig{
		Pretty: pretty || s.cfg.Render.Pretty,
		Indent: s.cfg.Render.Indent,
	})
}

func (s *session) page(pretty bool) (string, error) {
	return s.renderer(pretty).RenderPageToString(render.PageData{
		Document: s.app.Doc,
		Title:    s.cfg.Name,
	})
}

// applySets applies path=value edits to state. Values that parse as JSON are
// stored as JSON, anything else as a string.
func applySets(state flux.State, sets []string) (flux.State, error) {
	if len(sets) == 0 {
		return state, nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	for _, set := range sets {
		path, value, ok := strings.Cut(set, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid --set %q: expected path=value", set)
		}
		if gjson.Valid(value) {
			data, err = sjson.SetRawBytes(data, path, []byte(value))
		} else {
			data, err = sjson.SetBytes(data, path, value)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", set, err)
		}
	}
	out := flux.State{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDispatch splits name[:json] into an action name and payload.
func parseDispatch(spec string) (string, flux.State, error) {
	name, raw, _ := strings.Cut(spec, ":")
	if name == "" {
		return "", nil, fmt.Errorf("invalid --dispatch %q: missing action name", spec)
	}
	if strings.TrimSpace(raw) == "" {
		return name, nil, nil
	}
	var payload flux.State
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", nil, errors.New("E402").WithDetail(fmt.Sprintf("--dispatch %s: %v", name, err))
	}
	return name, payload, nil
}

// query returns the state value at a gjson path.
func query(state flux.State, path string) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return "", fmt.Errorf("no state value at %q", path)
	}
	if res.Type == gjson.String {
		return res.Str, nil
	}
	return res.Raw, nil
}
