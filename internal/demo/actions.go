package demo

import "github.com/vango-dev/flux/pkg/flux"

// Actions are the demo transforms by name.
var Actions = map[string]flux.Transform{
	"increment": Increment,
	"decrement": Decrement,
	"reset":     Reset,
	"rename":    Rename,
}

// Increment adds payload.amount (default 1) to count.
func Increment(s, p flux.State) flux.State {
	return flux.Merge(s, flux.State{"count": intOf(s["count"]) + amount(p)})
}

// Decrement subtracts payload.amount (default 1) from count.
func Decrement(s, p flux.State) flux.State {
	return flux.Merge(s, flux.State{"count": intOf(s["count"]) - amount(p)})
}

// Reset sets count back to zero.
func Reset(s, _ flux.State) flux.State {
	return flux.Merge(s, flux.State{"count": 0})
}

// Rename sets title from payload.title.
func Rename(s, p flux.State) flux.State {
	title, _ := p["title"].(string)
	return flux.Merge(s, flux.State{"title": title})
}

func amount(p flux.State) int {
	if v, ok := p["amount"]; ok {
		return intOf(v)
	}
	return 1
}

// intOf accepts the numeric types state picks up from Go code, JSON and YAML.
func intOf(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
