package service

import (
	"errors"
	"slices"
	"strings"

	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/locale"
	"github.com/pagecms/internal/routing"
	"gorm.io/gorm"
)

// ErrNoRouteFound is returned when no published page route matches a request.
var ErrNoRouteFound = errors.New("no route found")

// RouteResolver selects the best page route for a request path and language
// preference. It derives alias candidates from the path, builds one route
// per matching page through the registry and ranks the routes with the
// comparator.
type RouteResolver struct {
	pages    *PageService
	registry *routing.PageRegistry
}

// NewRouteResolver returns a resolver over the given registry.
func NewRouteResolver(gdb *gorm.DB, registry *routing.PageRegistry) *RouteResolver {
	return &RouteResolver{
		pages:    NewPageService(gdb),
		registry: registry,
	}
}

// Resolve returns the best matching route for the request path, or
// ErrNoRouteFound. acceptLanguage is the raw Accept-Language header; an
// empty value makes fallback roots win ties.
func (r *RouteResolver) Resolve(requestPath, acceptLanguage string) (*routing.Route, error) {
	prefixes, err := r.registry.URLPrefixes()
	if err != nil {
		return nil, err
	}
	suffixes, err := r.registry.URLSuffixes()
	if err != nil {
		return nil, err
	}

	aliases := routing.AliasCandidates(requestPath, prefixes, suffixes)
	pages, err := r.pages.FindCandidates(aliases)
	if err != nil {
		return nil, err
	}

	var matches []*routing.Route
	for _, page := range pages {
		view, err := r.pages.RouteView(page)
		if err != nil {
			return nil, err
		}
		route := r.registry.RouteForPage(view)
		if route.MatchPath(requestPath) || isSiteRootRequest(requestPath, view) {
			matches = append(matches, route)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoRouteFound
	}

	ranks := locale.LanguageRanks(locale.ParseAcceptLanguage(acceptLanguage))
	slices.SortStableFunc(matches, func(a, b *routing.Route) int {
		return routing.CompareRoutes(a, b, ranks)
	})

	return matches[0], nil
}

// isSiteRootRequest reports whether the request targets a site root served
// by an index page, with or without the language prefix.
func isSiteRootRequest(requestPath string, page routing.Page) bool {
	if page.Alias != routing.IndexAlias {
		return false
	}
	trimmed := strings.Trim(requestPath, "/")
	return trimmed == "" || trimmed == page.URLPrefix
}

// ResolvePage is a convenience wrapper returning the page bound to the best
// route.
func (r *RouteResolver) ResolvePage(requestPath, acceptLanguage string) (*db.Page, *routing.Route, error) {
	route, err := r.Resolve(requestPath, acceptLanguage)
	if err != nil {
		return nil, nil, err
	}

	page, err := r.pages.GetByID(route.Page.ID)
	if err != nil {
		return nil, nil, err
	}
	return page, route, nil
}
