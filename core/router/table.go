package router

import "strings"

// HandlerFunc defines the handler function type
type HandlerFunc func(ctx any) error

// Table is an ordered, method-keyed route table. Patterns are either exact
// paths ("/user-agent") or prefixes ending in a named catch-all
// ("/echo/*text"). Within a method, routes are tried in registration order
// and the first match wins.
type Table struct {
	routes map[string][]route
}

type route struct {
	pattern   string
	prefix    string // literal part before the catch-all
	paramName string // empty for exact routes
	handler   HandlerFunc
}

// Match is the result of a successful lookup
type Match struct {
	Handler HandlerFunc
	Pattern string
	Param   string
	Value   string
}

// NewTable creates an empty route table
func NewTable() *Table {
	return &Table{
		routes: make(map[string][]route),
	}
}

// Add registers a route
func (t *Table) Add(method, pattern string, handler HandlerFunc) {
	if pattern == "" || pattern[0] != '/' {
		panic("path must begin with '/'")
	}
	if handler == nil {
		panic("nil handler for " + method + " " + pattern)
	}

	r := route{pattern: pattern, prefix: pattern, handler: handler}
	if i := strings.IndexByte(pattern, '*'); i >= 0 {
		if i == len(pattern)-1 {
			panic("wildcards must be named")
		}
		if strings.ContainsAny(pattern[i+1:], "/*") {
			panic("catch-all routes are only allowed at the end of the path")
		}
		r.prefix = pattern[:i]
		r.paramName = pattern[i+1:]
	}

	t.routes[method] = append(t.routes[method], r)
}

// Find finds the first route matching method and path. The catch-all value
// is the path with the route prefix removed once.
func (t *Table) Find(method, path string) (Match, bool) {
	for _, r := range t.routes[method] {
		if r.paramName == "" {
			if path == r.prefix {
				return Match{Handler: r.handler, Pattern: r.pattern}, true
			}
			continue
		}
		if rest, ok := strings.CutPrefix(path, r.prefix); ok {
			return Match{
				Handler: r.handler,
				Pattern: r.pattern,
				Param:   r.paramName,
				Value:   rest,
			}, true
		}
	}
	return Match{}, false
}
