package dom

import "testing"

func TestNewDocumentStructure(t *testing.T) {
	doc := NewDocument()

	if doc.DocumentElement().Tag != "html" {
		t.Errorf("root tag = %q, want html", doc.DocumentElement().Tag)
	}
	if doc.Head().ParentElement() != doc.DocumentElement() {
		t.Error("head should be attached to the root")
	}
	if doc.Body().ParentElement() != doc.DocumentElement() {
		t.Error("body should be attached to the root")
	}
}

func TestGetElementByIDOnlyFindsAttached(t *testing.T) {
	doc := NewDocument()

	detached := doc.CreateElement("div")
	detached.SetID("box")
	if got := doc.GetElementByID("box"); got != nil {
		t.Fatalf("detached element should not be found, got %v", got)
	}

	doc.Body().AppendChild(detached)
	if got := doc.GetElementByID("box"); got != detached {
		t.Errorf("GetElementByID = %v, want %v", got, detached)
	}
	if got := doc.GetElementByID(""); got != nil {
		t.Errorf("empty id should not match, got %v", got)
	}
}

func TestAppendChildReparents(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	child := NewElement("span")

	a.AppendChild(child)
	b.AppendChild(child)

	if len(a.Children()) != 0 {
		t.Errorf("a should have no children, got %d", len(a.Children()))
	}
	if child.ParentElement() != b {
		t.Error("child should be parented to b")
	}
}

func TestTextContent(t *testing.T) {
	e := Div(P("Hello, "), Span(Strong("World")), "!")

	if got := e.TextContent(); got != "Hello, World!" {
		t.Errorf("TextContent = %q", got)
	}

	e.SetTextContent("replaced")
	if got := e.TextContent(); got != "replaced" {
		t.Errorf("TextContent after set = %q", got)
	}
	if len(e.Children()) != 1 {
		t.Errorf("expected one text child, got %d", len(e.Children()))
	}

	e.SetTextContent("")
	if len(e.Children()) != 0 {
		t.Errorf("expected no children after clearing, got %d", len(e.Children()))
	}
}

func TestBuilderAttributes(t *testing.T) {
	var none *Element
	e := Div(ID("main"), Class("a", "b"), nil, none, []Attr{Data("x", "1"), {}}, "text")

	if e.ID() != "main" {
		t.Errorf("id = %q", e.ID())
	}
	if v, _ := e.GetAttribute("class"); v != "a b" {
		t.Errorf("class = %q", v)
	}
	if v, ok := e.GetAttribute("data-x"); !ok || v != "1" {
		t.Errorf("data-x = %q, %v", v, ok)
	}
	names := e.AttributeNames()
	if len(names) != 3 || names[0] != "class" || names[1] != "data-x" || names[2] != "id" {
		t.Errorf("AttributeNames = %v", names)
	}
	if len(e.Children()) != 1 {
		t.Errorf("expected 1 child, got %d", len(e.Children()))
	}
}

func TestDefaultDocument(t *testing.T) {
	SetDefault(nil)
	t.Cleanup(func() { SetDefault(nil) })

	first := Default()
	if first == nil {
		t.Fatal("Default returned nil")
	}
	if Default() != first {
		t.Error("Default should return the same document until reset")
	}

	custom := NewDocument()
	SetDefault(custom)
	if Default() != Document(custom) {
		t.Error("SetDefault should replace the process-wide document")
	}
}

func TestNodeTypeString(t *testing.T) {
	if ElementNode.String() != "Element" || TextNode.String() != "Text" {
		t.Error("unexpected NodeType strings")
	}
	if NodeType(99).String() != "Unknown" {
		t.Error("unknown NodeType should stringify as Unknown")
	}
}

func TestAppendChildRefusesCycles(t *testing.T) {
	doc := NewDocument()
	host := doc.CreateElement("div")
	host.SetID("x")
	doc.Body().AppendChild(host)

	tests := []struct {
		name  string
		child *Element
	}{
		{"self", host},
		{"parent", doc.Body()},
		{"root", doc.DocumentElement()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != ErrHierarchy {
					t.Errorf("recover() = %v, want ErrHierarchy", r)
				}
			}()
			host.AppendChild(tt.child)
		})
	}

	if got := doc.GetElementByID("x"); got != host {
		t.Errorf("tree damaged: GetElementByID = %v", got)
	}
	if host.ParentElement() != doc.Body() {
		t.Error("host should still be parented to body")
	}
}

func TestContains(t *testing.T) {
	inner := Span("x")
	outer := Div(P(inner))

	if !outer.Contains(outer) {
		t.Error("element should contain itself")
	}
	if !outer.Contains(inner) {
		t.Error("outer should contain nested span")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if outer.Contains(nil) {
		t.Error("Contains(nil) should be false")
	}
}
