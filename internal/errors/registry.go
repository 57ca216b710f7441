package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Component Errors (E101-E199)
	// ============================================

	"E101": {
		Category:   CategoryComponent,
		Message:    "{component} component Mount() method must return instance of component",
		Detail:     "RenderDOM calls Mount() and renders whatever it returns. Mount() returned nil, so there is nothing to render.",
		Suggestion: "Return the component itself (or the component that should be rendered) from Mount()",
		DocURL:     "https://flux.vango.dev/docs/errors/E101",
	},
	"E102": {
		Category:   CategoryComponent,
		Message:    "{component} component Render() method must return HTML element",
		Detail:     "RenderDOM appends the node returned by Render() to the host element. Only a non-nil *dom.Element can be appended.",
		Suggestion: "Return an element such as dom.Div(...) from Render()",
		DocURL:     "https://flux.vango.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryComponent,
		Message:  "{component} component panicked while mounting",
		Detail:   "A Mount() or Render() implementation panicked. The component was skipped and its siblings were still rendered.",
		DocURL:   "https://flux.vango.dev/docs/errors/E103",
	},

	// ============================================
	// Config Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The flux configuration file contains invalid values.",
		DocURL:   "https://flux.vango.dev/docs/errors/E201",
	},
	"E202": {
		Category:   CategoryConfig,
		Message:    "Configuration file could not be read",
		Detail:     "The configuration or state file exists but could not be read or parsed.",
		Suggestion: "Check the file is valid JSON (.json) or YAML (.yaml, .yml)",
		DocURL:     "https://flux.vango.dev/docs/errors/E202",
	},

	// ============================================
	// Snapshot Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategorySnapshot,
		Message:  "Snapshot write failed",
		Detail:   "The rendered page or state could not be written to the snapshot sink.",
		DocURL:   "https://flux.vango.dev/docs/errors/E301",
	},

	// ============================================
	// Live Server Errors (E401-E499)
	// ============================================

	"E401": {
		Category:   CategoryLive,
		Message:    "Unknown action",
		Detail:     "No action is registered under the requested name.",
		Suggestion: "Register the action with Server.Handle before dispatching it",
		DocURL:     "https://flux.vango.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryLive,
		Message:  "Invalid action payload",
		Detail:   "The request body must be a JSON object.",
		DocURL:   "https://flux.vango.dev/docs/errors/E402",
	},
	"E403": {
		Category:   CategoryLive,
		Message:    "Action failed",
		Detail:     "The action's transform panicked. The store state is unchanged.",
		Suggestion: "Check the transform handles the payload it was sent",
		DocURL:     "https://flux.vango.dev/docs/errors/E403",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template Template) {
	registry[code] = template
}
