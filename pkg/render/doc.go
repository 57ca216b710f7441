// Package render serialises flux host trees to HTML.
//
// The Renderer walks a dom.Node tree and writes HTML to an io.Writer, with
// optional pretty printing for development. RenderPage wraps a document's head
// and body into a complete page with doctype, title and inline scripts.
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(doc.Body())
//
// Text is escaped, attribute values are escaped, and the content of raw text
// elements (<style>, <script>) is written verbatim.
package render
