package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/flux/internal/demo"
	"github.com/vango-dev/flux/pkg/flux"
	"github.com/vango-dev/flux/pkg/live"
)

func serveCmd() *cobra.Command {
	var (
		flags appFlags
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the app live over HTTP",
		Long: `Start the live server. The page is rendered on /, actions are posted to
/actions/{name}, the state is available on /state and browsers receive the
re-rendered body over the /_live WebSocket after every change.

With --watch, edits to the --state file replace the store state.

Examples:
  flux serve
  flux serve --addr :8080
  flux serve --state state.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && flags.statePath == "" {
				return fmt.Errorf("--watch requires --state")
			}
			return runServe(cmd.Context(), &flags, addr, watch)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the --state file into the store when it changes")

	return cmd
}

func runServe(ctx context.Context, flags *appFlags, addr string, watch bool) error {
	s, err := flags.newSession(os.Stderr)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = s.cfg.Address()
	}

	srv := newLiveServer(s)
	defer srv.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		reload := func() {
			state, err := flags.initialState(s.cfg)
			if err != nil {
				s.logger.Warn("state reload failed", "path", flags.statePath, "error", err)
				return
			}
			srv.SetState(flux.Merge(demo.InitialState(), state))
			s.logger.Info("state reloaded", "path", flags.statePath)
		}
		go func() {
			if err := watchFile(ctx, flags.statePath, 100*time.Millisecond, reload); err != nil {
				s.logger.Error("state watcher stopped", "error", err)
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	printBanner()
	success("Serving %s on http://%s", s.cfg.Name, addr)
	info("Actions:  POST /actions/{name}")
	info("State:    GET  /state")
	info("Metrics:  GET  /metrics")
	if watch {
		info("Watching: %s", flags.statePath)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	warn("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newLiveServer exposes the session's app and registers every demo action.
func newLiveServer(s *session) *live.Server {
	srv := live.New(live.Config{
		Document:   s.app.Doc,
		Dispatcher: s.app.Dispatcher,
		Title:      s.cfg.Name,
		Renderer:   s.renderer(false),
		Logger:     s.logger,
		Gatherer:   s.registry,
	})
	for name, fn := range demo.Actions {
		srv.Handle(name, fn)
	}
	return srv
}
