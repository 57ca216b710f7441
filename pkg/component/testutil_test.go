package component

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/vango-dev/flux/pkg/dom"
)

// label renders its "text" prop into a <p>.
type label struct {
	*Base
	renders int
}

func newLabel(doc dom.Document, text string) *label {
	l := &label{}
	l.Base = Extend(l, map[string]any{"text": text}, WithDocument(doc))
	return l
}

func (l *label) Render() dom.Node {
	l.renders++
	el := l.Element()
	el.ReplaceChildren(dom.P(fmt.Sprint(l.Props()["text"])))
	return el
}

// nilMount breaks the mount contract.
type nilMount struct{ *Base }

func newNilMount(doc dom.Document) *nilMount {
	c := &nilMount{}
	c.Base = Extend(c, nil, WithDocument(doc))
	return c
}

func (c *nilMount) Mount() Component { return nil }

// textRender breaks the render contract by returning a text node.
type textRender struct{ *Base }

func newTextRender(doc dom.Document) *textRender {
	c := &textRender{}
	c.Base = Extend(c, nil, WithDocument(doc))
	return c
}

func (c *textRender) Render() dom.Node { return dom.NewText("not an element") }

// panicky panics from Mount.
type panicky struct{ *Base }

func newPanicky(doc dom.Document) *panicky {
	c := &panicky{}
	c.Base = Extend(c, nil, WithDocument(doc))
	return c
}

func (c *panicky) Mount() Component { panic("mount exploded") }

// wrapper mounts to a different component.
type wrapper struct {
	*Base
	inner Component
}

func (w *wrapper) Mount() Component { return w.inner }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
