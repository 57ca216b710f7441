package component

import (
	"testing"

	"github.com/vango-dev/flux/pkg/dom"
)

func styleText(t *testing.T, doc dom.Document) string {
	t.Helper()
	el := doc.GetElementByID(StyleElementID)
	if el == nil {
		t.Fatal("style element not found")
	}
	return el.TextContent()
}

func TestInjectStaticCSSCreatesStyleElement(t *testing.T) {
	doc := dom.NewDocument()
	c := New(nil, WithDocument(doc))

	c.InjectStaticCSS(".a{color:red}")

	el := doc.GetElementByID(StyleElementID)
	if el == nil {
		t.Fatal("style element should be attached to the document")
	}
	if el.Tag != "style" || el.ParentElement() != doc.Head() {
		t.Errorf("style element = <%s> under %v", el.Tag, el.ParentElement())
	}
	if el.TextContent() != ".a{color:red}" {
		t.Errorf("text = %q", el.TextContent())
	}
}

func TestInjectStaticCSSIsIdempotent(t *testing.T) {
	doc := dom.NewDocument()

	InjectStaticCSS(doc, ".a{}")
	InjectStaticCSS(doc, ".b{}")
	first := styleText(t, doc)
	InjectStaticCSS(doc, ".b{}")
	InjectStaticCSS(doc, ".a{}")

	if got := styleText(t, doc); got != first || got != ".a{}.b{}" {
		t.Errorf("text = %q, want %q", got, ".a{}.b{}")
	}
	if n := len(doc.Head().Children()); n != 1 {
		t.Errorf("head has %d children, want exactly one style element", n)
	}
}

func TestInjectStaticCSSEmptyNotAttached(t *testing.T) {
	doc := dom.NewDocument()

	InjectStaticCSS(doc, "")
	if doc.GetElementByID(StyleElementID) != nil {
		t.Error("empty css should not attach a style element")
	}

	InjectStaticCSS(doc, ".x{}")
	InjectStaticCSS(doc, "")
	if got := styleText(t, doc); got != ".x{}" {
		t.Errorf("text = %q", got)
	}
}

func TestInjectStaticCSSSharedAcrossComponents(t *testing.T) {
	doc := dom.NewDocument()
	a := newLabel(doc, "a")
	b := newLabel(doc, "b")

	a.InjectStaticCSS("p{margin:0}")
	b.InjectStaticCSS("p{margin:0}")

	if got := styleText(t, doc); got != "p{margin:0}" {
		t.Errorf("text = %q", got)
	}
}
