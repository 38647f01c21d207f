package search

import (
	"net/url"
	"strings"
)

// Placeholder is the token in an engine URL template that the encoded query
// is substituted for.
const Placeholder = "{query}"

// fallbackTemplate is used when the requested engine is not in the registry.
const fallbackTemplate = "https://www.google.com/search?q=" + Placeholder

// Engine is one named search engine with its URL template.
type Engine struct {
	Name string
	URL  string
}

// Registry is an ordered list of engines. Order follows the source the
// registry was loaded from and drives menu ordering.
type Registry []Engine

// Lookup returns the template for the named engine.
func (r Registry) Lookup(name string) (string, bool) {
	for _, e := range r {
		if e.Name == name {
			return e.URL, true
		}
	}
	return "", false
}

// Names returns engine names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// BuildURL substitutes the percent-encoded query into the named engine's
// template. An engine missing from the registry falls back to a built-in
// template, so the result is always a well-formed URL.
func BuildURL(engineName, query string, reg Registry) string {
	tpl, ok := reg.Lookup(engineName)
	if !ok {
		tpl = fallbackTemplate
	}
	return strings.ReplaceAll(tpl, Placeholder, encodeQuery(query))
}

// encodeQuery percent-encodes every reserved character, including spaces as
// %20 rather than '+' so the result is valid in any part of a query string.
func encodeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}
