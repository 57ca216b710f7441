package render

import (
	"bytes"
	"io"

	"github.com/vango-dev/flux/pkg/dom"
)

// PageDocument is the part of a document a page is built from.
type PageDocument interface {
	Head() *dom.Element
	Body() *dom.Element
}

// PageData contains the data needed to render a complete HTML page.
type PageData struct {
	// Document supplies the head and body content.
	Document PageDocument

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Scripts are inline scripts appended to the end of the body.
	Scripts []string
}

// RenderPage writes a complete HTML page for data.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	lang := data.Lang
	if lang == "" {
		lang = "en"
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="` + escapeAttr(lang) + `">`)
	buf.WriteString("<head>")
	buf.WriteString(`<meta charset="utf-8">`)
	if data.Title != "" {
		buf.WriteString("<title>" + escapeHTML(data.Title) + "</title>")
	}
	if data.Document != nil {
		if err := r.RenderChildren(&buf, data.Document.Head()); err != nil {
			return err
		}
	}
	buf.WriteString("</head>")
	buf.WriteString("<body>")
	if data.Document != nil {
		if err := r.RenderChildren(&buf, data.Document.Body()); err != nil {
			return err
		}
	}
	for _, script := range data.Scripts {
		buf.WriteString("<script>" + escapeRawText("script", script) + "</script>")
	}
	buf.WriteString("</body></html>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// RenderPageToString renders a complete page to a string.
func (r *Renderer) RenderPageToString(data PageData) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
