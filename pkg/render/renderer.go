package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-dev/flux/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serialises host trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node dom.Node) error {
	return r.renderNode(w, node, 0)
}

// RenderChildren renders the children of el without el's own tags.
func (r *Renderer) RenderChildren(w io.Writer, el *dom.Element) error {
	for _, child := range el.Children() {
		if err := r.renderNode(w, child, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNode(w io.Writer, node dom.Node, depth int) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *dom.Element:
		if n == nil {
			return nil
		}
		return r.renderElement(w, n, depth)
	case *dom.Text:
		if n == nil {
			return nil
		}
		_, err := io.WriteString(w, escapeHTML(n.Data))
		return err
	default:
		return fmt.Errorf("unknown node type: %T", node)
	}
}

func (r *Renderer) renderElement(w io.Writer, el *dom.Element, depth int) error {
	tag := el.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	for _, name := range el.AttributeNames() {
		value, _ := el.GetAttribute(name)
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(value)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		r.newline(w)
		return nil
	}

	children := el.Children()
	if isRawTextElement(tag) {
		if _, err := io.WriteString(w, escapeRawText(tag, el.TextContent())); err != nil {
			return err
		}
	} else {
		block := r.config.Pretty && hasElementChild(children) && !isInlineElement(tag)
		if block {
			r.newline(w)
		}
		for _, child := range children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}
		if block {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

func hasElementChild(children []dom.Node) bool {
	for _, c := range children {
		if c.NodeType() == dom.ElementNode {
			return true
		}
	}
	return false
}
