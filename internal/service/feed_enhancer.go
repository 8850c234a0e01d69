package service

import "github.com/pagecms/internal/routing"

// FeedEnhancer rewrites routes of feed pages: the parameters tail is
// replaced by a format extension so a feed page answers both
// /alias.xml and /alias.json.
type FeedEnhancer struct{}

// ConfigureRoute swaps the default parameters placeholder for a format
// placeholder and constrains it to the supported formats.
func (FeedEnhancer) ConfigureRoute(route *routing.Route, page routing.Page) {
	base := "/" + page.Alias + ".{format}"
	if prefix := page.URLPrefix; prefix != "" {
		base = "/" + prefix + base
	}
	route.Path = base

	delete(route.Defaults, routing.ParametersKey)
	delete(route.Requirements, routing.ParametersKey)
	route.Defaults["format"] = "xml"
	route.Requirements["format"] = "xml|json"
}

// URLSuffixes reports every suffix a feed route can produce.
func (FeedEnhancer) URLSuffixes() []string {
	return []string{".xml", ".json"}
}
