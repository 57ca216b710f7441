package component

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/dom"
)

// MountObserver is notified once per mounted source.
type MountObserver interface {
	ObserveMount(component string, elapsed time.Duration, err error)
}

// Mounter mounts and renders sources into a host element.
type Mounter struct {
	// Logger receives one error record per failed source.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observer, if set, is notified for every source.
	Observer MountObserver
}

// RenderDOM mounts sources into host using the default logger.
func RenderDOM(host *dom.Element, sources ...Source) {
	(&Mounter{}).Mount(host, sources...)
}

// Mount processes sources in reverse order: each is instantiated, mounted,
// rendered and its element appended to host. Failures are logged and
// returned in processing order; they never stop the remaining sources.
func (m *Mounter) Mount(host *dom.Element, sources ...Source) []error {
	var errs []error
	for i := len(sources) - 1; i >= 0; i-- {
		start := time.Now()
		name, err := m.mountOne(host, sources[i])
		if m.Observer != nil {
			m.Observer.ObserveMount(name, time.Since(start), err)
		}
		if err != nil {
			m.logger().Error("component mount failed",
				"component", name,
				"code", errors.Code(err),
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	return errs
}

func (m *Mounter) mountOne(host *dom.Element, src Source) (name string, err error) {
	name = nameOf(src)
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("E103").WithComponent(name).Wrap(panicError(r))
		}
	}()

	if isNil(src) {
		return name, errors.New("E101")
	}
	c := src.Instance()
	if isNil(c) {
		return name, errors.New("E101").WithComponent(name)
	}
	name = nameOf(c)

	mounted := c.Mount()
	if isNil(mounted) {
		return name, errors.New("E101").WithComponent(name)
	}

	el, ok := mounted.Render().(*dom.Element)
	if !ok || el == nil {
		return name, errors.New("E102").WithComponent(name)
	}
	if el.Contains(host) {
		return name, errors.New("E102").WithComponent(name).
			WithDetail("Render() returned the host element or one of its ancestors, which cannot be appended to the host.")
	}

	host.AppendChild(el)
	return name, nil
}

func (m *Mounter) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
