package component

import (
	"strings"
	"sync"

	"github.com/vango-dev/flux/pkg/dom"
)

// StyleElementID is the id of the single document-level style element that
// InjectStaticCSS writes to.
const StyleElementID = "app-styles-elem"

var cssMu sync.Mutex

// InjectStaticCSS adds css to the component document's shared style element.
func (b *Base) InjectStaticCSS(css string) {
	InjectStaticCSS(b.doc, css)
}

// InjectStaticCSS adds css to doc's shared style element. If the element
// exists, css is appended unless its text already contains css. Otherwise the
// element is created, and attached to the head only when css is non-empty.
func InjectStaticCSS(doc dom.Document, css string) {
	cssMu.Lock()
	defer cssMu.Unlock()

	if el := doc.GetElementByID(StyleElementID); el != nil {
		styles := el.TextContent()
		if !strings.Contains(styles, css) {
			el.SetTextContent(styles + css)
		}
		return
	}

	el := doc.CreateElement("style")
	el.SetID(StyleElementID)
	el.SetTextContent(css)
	if css != "" {
		doc.Head().AppendChild(el)
	}
}
