package demo

import (
	"strings"
	"testing"

	"github.com/vango-dev/flux/pkg/component"
	"github.com/vango-dev/flux/pkg/dom"
	"github.com/vango-dev/flux/pkg/flux"
	"github.com/vango-dev/flux/pkg/render"
)

func mountApp(t *testing.T, initial flux.State) *App {
	t.Helper()
	app := NewApp(dom.NewDocument(), initial)
	if errs := app.Mount(&component.Mounter{}); len(errs) != 0 {
		t.Fatalf("mount errors: %v", errs)
	}
	return app
}

func bodyHTML(t *testing.T, app *App) string {
	t.Helper()
	var b strings.Builder
	if err := render.NewRenderer(render.RendererConfig{}).RenderChildren(&b, app.Doc.Body()); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestMountOrder(t *testing.T) {
	app := mountApp(t, nil)
	html := bodyHTML(t, app)

	h := strings.Index(html, "<header")
	c := strings.Index(html, "flux-counter")
	f := strings.Index(html, "<footer")
	if !(h >= 0 && h < c && c < f) {
		t.Errorf("unexpected order in %s", html)
	}
}

func TestDispatchRerendersSubscribers(t *testing.T) {
	app := mountApp(t, nil)

	if err := app.Dispatch("increment", flux.State{"amount": 5}); err != nil {
		t.Fatal(err)
	}
	if err := app.Dispatch("rename", flux.State{"title": "Counter"}); err != nil {
		t.Fatal(err)
	}

	html := bodyHTML(t, app)
	if !strings.Contains(html, "<strong>5</strong>") {
		t.Errorf("count not re-rendered: %s", html)
	}
	if !strings.Contains(html, "<h1>Counter</h1>") {
		t.Errorf("title not re-rendered: %s", html)
	}

	v, err := app.View()
	if err != nil || v.Count != 5 || v.Title != "Counter" {
		t.Errorf("View = %+v, %v", v, err)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	app := mountApp(t, nil)
	if err := app.Dispatch("explode", nil); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestActions(t *testing.T) {
	tests := []struct {
		name    string
		fn      flux.Transform
		state   flux.State
		payload flux.State
		want    int
	}{
		{"increment default", Increment, flux.State{"count": 1}, nil, 2},
		{"increment json amount", Increment, flux.State{"count": float64(1)}, flux.State{"amount": float64(3)}, 4},
		{"decrement", Decrement, flux.State{"count": 1}, flux.State{"amount": 2}, -1},
		{"reset", Reset, flux.State{"count": 9}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.state, tt.payload)
			if got["count"] != tt.want {
				t.Errorf("count = %v, want %d", got["count"], tt.want)
			}
		})
	}
}

func TestInitialStateOverlay(t *testing.T) {
	app := NewApp(dom.NewDocument(), flux.State{"count": 7})
	v, _ := app.View()
	if v.Count != 7 || v.Title != "flux" {
		t.Errorf("View = %+v", v)
	}
}

func TestStylesInjectedOnce(t *testing.T) {
	app := mountApp(t, nil)
	app.Mount(&component.Mounter{})

	style := app.Doc.GetElementByID(component.StyleElementID)
	if style == nil {
		t.Fatal("style element missing")
	}
	if strings.Count(style.TextContent(), "flux-header{") != 1 {
		t.Errorf("styles duplicated: %s", style.TextContent())
	}
}

func TestFooterLocalState(t *testing.T) {
	app := mountApp(t, nil)
	app.Footer.Touch()
	app.Footer.Touch()

	if !strings.Contains(bodyHTML(t, app), "touched 2 times") {
		t.Errorf("footer = %s", bodyHTML(t, app))
	}
}
