package routing

import (
	"regexp"
	"slices"
	"strings"
	"sync"
)

// RouteEnhancer adjusts the generated route of a page type after the default
// path construction. Implementations are registered per type and may rewrite
// path, defaults and requirements before the route is returned.
type RouteEnhancer interface {
	ConfigureRoute(route *Route, page Page)

	// URLSuffixes reports every URL suffix the enhancer can produce, so
	// the registry can aggregate them for request matching.
	URLSuffixes() []string
}

// CompositionChecker decides whether content elements may be composed into a
// page of the registered type.
type CompositionChecker interface {
	SupportsComposition(page Page) bool
}

type staticComposition bool

func (s staticComposition) SupportsComposition(Page) bool {
	return bool(s)
}

// StaticComposition returns a CompositionChecker with a fixed answer, for
// types whose composition support does not depend on the page.
func StaticComposition(allowed bool) CompositionChecker {
	return staticComposition(allowed)
}

type registration struct {
	config      RouteConfig
	enhancer    RouteEnhancer
	composition CompositionChecker
}

// fullPathPattern marks config paths that already carry their own extension:
// a dot followed by a placeholder token running to the end of the string
// (for example "/feed/{alias}.{format}"). Such paths never receive a suffix.
var fullPathPattern = regexp.MustCompile(`\.[^/]*\{[^{}]+\}$`)

// PageRegistry maps page types to route templates, optional enhancers and
// optional composition checkers, and builds concrete routes per page.
//
// The registry is a shared singleton: Add and Remove are meant for the
// configuration phase, concurrent reads during request serving are safe.
type PageRegistry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]registration
	roots   RootConfigSource
}

// NewPageRegistry returns an empty registry backed by the given content-root
// source.
func NewPageRegistry(roots RootConfigSource) *PageRegistry {
	return &PageRegistry{
		entries: make(map[string]registration),
		roots:   roots,
	}
}

// Add registers a route template for a page type. Re-adding a type fully
// replaces its config, enhancer and composition checker but keeps the type's
// original position in Keys. A nil composition checker permits composition.
func (r *PageRegistry) Add(pageType string, config RouteConfig, enhancer RouteEnhancer, composition CompositionChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[pageType]; !exists {
		r.order = append(r.order, pageType)
	}
	r.entries[pageType] = registration{
		config:      config,
		enhancer:    enhancer,
		composition: composition,
	}
}

// Remove deletes the registration for a page type. Removing an unknown type
// is a no-op; subsequent route building falls back to the default template.
func (r *PageRegistry) Remove(pageType string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[pageType]; !exists {
		return
	}
	delete(r.entries, pageType)
	r.order = slices.DeleteFunc(r.order, func(t string) bool { return t == pageType })
}

// Keys returns the registered page types in first-registration order.
func (r *PageRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// RouteForPage builds the concrete route for a page. Unknown types use the
// default template: the page alias followed by a parameters placeholder.
func (r *PageRegistry) RouteForPage(page Page) *Route {
	r.mu.RLock()
	reg := r.entries[page.Type]
	r.mu.RUnlock()

	defaults := map[string]string{}
	requirements := map[string]string{}

	suffix := page.URLSuffix
	if reg.config.URLSuffix != nil {
		suffix = *reg.config.URLSuffix
	}

	var path string
	switch {
	case reg.config.Path == "":
		path = prefixed(page.URLPrefix, "/"+page.Alias+"{!"+ParametersKey+"}") + suffix
		defaults[ParametersKey] = ""
		if page.RequireItem {
			requirements[ParametersKey] = "/.+"
		} else {
			requirements[ParametersKey] = "(/.+?)?"
		}
	case strings.HasPrefix(reg.config.Path, "/"):
		path = prefixed(page.URLPrefix, reg.config.Path)
		if !fullPathPattern.MatchString(reg.config.Path) {
			path += suffix
		}
	default:
		path = prefixed(page.URLPrefix, "/"+page.Alias+"/"+reg.config.Path) + suffix
	}

	route := &Route{
		Path:         path,
		Host:         page.Domain,
		Page:         &page,
		Defaults:     defaults,
		Requirements: requirements,
	}

	if reg.enhancer != nil {
		reg.enhancer.ConfigureRoute(route, page)
	}

	return route
}

// PathRegexes returns the configured path regex per registered type. Types
// without a regex are omitted.
func (r *PageRegistry) PathRegexes() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regexes := make(map[string]string)
	for _, pageType := range r.order {
		if regex := r.entries[pageType].config.PathRegex; regex != "" {
			regexes[pageType] = regex
		}
	}
	return regexes
}

// URLPrefixes returns the distinct root-level URL prefixes in first-seen
// order, querying the content-root source once.
func (r *PageRegistry) URLPrefixes() ([]string, error) {
	configs, err := r.roots.RootConfigs()
	if err != nil {
		return nil, err
	}

	prefixes := make([]string, 0, len(configs))
	seen := make(map[string]bool, len(configs))
	for _, config := range configs {
		if !seen[config.URLPrefix] {
			seen[config.URLPrefix] = true
			prefixes = append(prefixes, config.URLPrefix)
		}
	}
	return prefixes, nil
}

// URLSuffixes returns the union of root-configured suffixes, every suffix
// reported by registered enhancers and every explicit config override,
// deduplicated in first-seen order. The empty suffix is a valid member.
func (r *PageRegistry) URLSuffixes() ([]string, error) {
	configs, err := r.roots.RootConfigs()
	if err != nil {
		return nil, err
	}

	var suffixes []string
	seen := make(map[string]bool)
	add := func(suffix string) {
		if !seen[suffix] {
			seen[suffix] = true
			suffixes = append(suffixes, suffix)
		}
	}

	for _, config := range configs {
		add(config.URLSuffix)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pageType := range r.order {
		if enhancer := r.entries[pageType].enhancer; enhancer != nil {
			for _, suffix := range enhancer.URLSuffixes() {
				add(suffix)
			}
		}
	}
	for _, pageType := range r.order {
		if override := r.entries[pageType].config.URLSuffix; override != nil {
			add(*override)
		}
	}

	return suffixes, nil
}

// SupportsContentComposition resolves the composition checker registered for
// the page's type. Unknown types and registrations without a checker permit
// composition.
func (r *PageRegistry) SupportsContentComposition(page Page) bool {
	r.mu.RLock()
	reg, exists := r.entries[page.Type]
	r.mu.RUnlock()

	if !exists || reg.composition == nil {
		return true
	}
	return reg.composition.SupportsComposition(page)
}

// prefixed joins a URL prefix and an absolute remainder into a single path.
func prefixed(prefix, rest string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return rest
	}
	return "/" + trimmed + rest
}
