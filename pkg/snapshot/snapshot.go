package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/flux"
)

// Sink stores snapshot objects.
type Sink interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// Write stores html under key+".html" and state under key+".json".
func Write(ctx context.Context, sink Sink, key string, html string, state flux.State) error {
	key = strings.Trim(key, "/")
	if key == "" {
		key = DefaultKey(time.Now())
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.New("E301").WithDetail("State is not JSON-serialisable.").Wrap(err)
	}

	if err := sink.Put(ctx, key+".html", []byte(html), "text/html; charset=utf-8"); err != nil {
		return errors.FromError(err, "E301")
	}
	if err := sink.Put(ctx, key+".json", append(data, '\n'), "application/json"); err != nil {
		return errors.FromError(err, "E301")
	}
	return nil
}

// DefaultKey returns a timestamp key for t.
func DefaultKey(t time.Time) string {
	return "snapshot-" + t.UTC().Format("20060102T150405Z")
}

// DirSink writes objects as files below a directory.
type DirSink struct {
	dir string
}

// NewDirSink creates a sink rooted at dir. The directory is created on first write.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Put implements Sink.
func (s *DirSink) Put(ctx context.Context, key string, body []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if rel, err := filepath.Rel(s.dir, path); err != nil || strings.HasPrefix(rel, "..") {
		return errors.New("E301").WithDetail(fmt.Sprintf("Key %q escapes the snapshot directory.", key))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("E301").Wrap(err)
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return errors.New("E301").Wrap(err)
	}
	return nil
}
