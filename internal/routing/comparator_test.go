package routing

import (
	"slices"
	"testing"

	"github.com/pagecms/internal/locale"
)

func regularPage(language string, fallback bool) *Page {
	return &Page{Type: "regular", RootLanguage: language, RootIsFallback: fallback}
}

func pageRoute(path string, page *Page) *Route {
	route := &Route{Path: path, Page: page}
	if page != nil {
		route.Host = page.Domain
	}
	return route
}

func TestCompareRoutesHostBeatsHostless(t *testing.T) {
	bound := &Route{Path: "/de/page", Host: "example.com", Page: regularPage("de", false)}
	hostless := &Route{Path: "/de/page", Page: regularPage("de", false)}

	if got := CompareRoutes(bound, hostless, nil); got != -1 {
		t.Fatalf("expected host-bound route to win, got %d", got)
	}
	if got := CompareRoutes(hostless, bound, nil); got != 1 {
		t.Fatalf("expected hostless route to lose, got %d", got)
	}
}

func TestCompareRoutesWithoutPagesIsUndecided(t *testing.T) {
	a := &Route{Path: "/foo"}
	b := &Route{Path: "/bar"}

	if got := CompareRoutes(a, b, nil); got != 0 {
		t.Fatalf("expected 0 for routes without pages, got %d", got)
	}
}

func TestCompareRoutesFallbackWinsWithoutLanguages(t *testing.T) {
	fallback := pageRoute("/de/page", regularPage("de", true))
	regular := pageRoute("/en/page", regularPage("en", false))

	if got := CompareRoutes(fallback, regular, nil); got != -1 {
		t.Fatalf("expected fallback page to win, got %d", got)
	}
	if got := CompareRoutes(regular, fallback, nil); got != 1 {
		t.Fatalf("expected non-fallback page to lose, got %d", got)
	}
}

func TestCompareRoutesPreferredLanguageWins(t *testing.T) {
	ranks := locale.LanguageRanks([]string{"en", "de"})

	english := pageRoute("/en/page", regularPage("en", false))
	german := pageRoute("/de/page", regularPage("de", true))

	if got := CompareRoutes(english, german, ranks); got != -1 {
		t.Fatalf("expected en page to beat de page, got %d", got)
	}
	if got := CompareRoutes(german, english, ranks); got != 1 {
		t.Fatalf("expected de page to lose against en page, got %d", got)
	}
}

func TestCompareRoutesPrimarySubtagLookup(t *testing.T) {
	ranks := locale.LanguageRanks([]string{"de", "fr"})

	swiss := pageRoute("/page", regularPage("de-CH", false))
	french := pageRoute("/page", regularPage("fr", false))

	// de-CH resolves through its primary subtag "de" at rank 0.
	if got := CompareRoutes(swiss, french, ranks); got != -1 {
		t.Fatalf("expected de-CH page to win via primary subtag, got %d", got)
	}
}

func TestCompareRoutesUnrankedLosesAgainstRanked(t *testing.T) {
	ranks := locale.LanguageRanks([]string{"en"})

	english := pageRoute("/page", regularPage("en", false))
	italian := pageRoute("/page", regularPage("it", true))

	if got := CompareRoutes(italian, english, ranks); got != 1 {
		t.Fatalf("expected unranked page to lose, got %d", got)
	}
}

func TestCompareRoutesBothUnrankedUseFallback(t *testing.T) {
	ranks := locale.LanguageRanks([]string{"en"})

	fallback := pageRoute("/page", regularPage("it", true))
	regular := pageRoute("/page", regularPage("fr", false))

	if got := CompareRoutes(fallback, regular, ranks); got != -1 {
		t.Fatalf("expected fallback to break the unranked tie, got %d", got)
	}
}

func TestCompareRoutesRootPageLoses(t *testing.T) {
	root := pageRoute("/de", &Page{Type: RootType, RootLanguage: "de"})
	regular := pageRoute("/de/page", regularPage("de", false))

	if got := CompareRoutes(root, regular, nil); got != 1 {
		t.Fatalf("expected root page to lose, got %d", got)
	}
	if got := CompareRoutes(regular, root, nil); got != -1 {
		t.Fatalf("expected regular page to win, got %d", got)
	}
}

func TestCompareRoutesRootSorting(t *testing.T) {
	first := pageRoute("/page", &Page{Type: "regular", RootLanguage: "de", RootSorting: 16})
	second := pageRoute("/page", &Page{Type: "regular", RootLanguage: "de", RootSorting: 128})

	if got := CompareRoutes(first, second, nil); got != -1 {
		t.Fatalf("expected lower root sorting to win, got %d", got)
	}
}

func TestCompareRoutesDeeperPathWins(t *testing.T) {
	deep := pageRoute("/foo/bar/baz", regularPage("de", false))
	shallow := pageRoute("/foo/bar", regularPage("de", false))

	if got := CompareRoutes(deep, shallow, nil); got != -1 {
		t.Fatalf("expected deeper path to win, got %d", got)
	}
}

func TestCompareRoutesLexicalTieBreak(t *testing.T) {
	foo := pageRoute("/foo/bar/baz", regularPage("de", false))
	bar := pageRoute("/bar/foo/baz", regularPage("de", false))

	// The lexically greater path sorts first.
	if got := CompareRoutes(foo, bar, nil); got != -1 {
		t.Fatalf("expected /foo/bar/baz before /bar/foo/baz, got %d", got)
	}
	if got := CompareRoutes(bar, foo, nil); got != 1 {
		t.Fatalf("expected /bar/foo/baz after /foo/bar/baz, got %d", got)
	}
}

func TestCompareRoutesFullTie(t *testing.T) {
	a := pageRoute("/foo/bar", regularPage("de", false))
	b := pageRoute("/foo/bar", regularPage("de", false))

	if got := CompareRoutes(a, b, nil); got != 0 {
		t.Fatalf("expected identical routes to tie, got %d", got)
	}
}

func comparatorFixtures() []*Route {
	return []*Route{
		{Path: "/de/page", Host: "example.com", Page: &Page{Type: "regular", RootLanguage: "de", Domain: "example.com"}},
		pageRoute("/de/page", regularPage("de", true)),
		pageRoute("/de-ch/page", regularPage("de-CH", false)),
		pageRoute("/en/page", regularPage("en", false)),
		pageRoute("/en/page/deep", regularPage("en-US", false)),
		pageRoute("/fr", &Page{Type: RootType, RootLanguage: "fr"}),
		pageRoute("/foo/bar/baz", regularPage("it", false)),
		pageRoute("/bar/foo/baz", regularPage("it", false)),
		{Path: "/plain"},
		pageRoute("/page", &Page{Type: "regular", RootLanguage: "de", RootSorting: 64}),
	}
}

func TestCompareRoutesAntisymmetry(t *testing.T) {
	rankSets := []map[string]int{
		nil,
		locale.LanguageRanks([]string{"en", "de"}),
		locale.LanguageRanks([]string{"de_CH", "fr"}),
	}
	fixtures := comparatorFixtures()

	for _, ranks := range rankSets {
		for _, a := range fixtures {
			for _, b := range fixtures {
				ab := CompareRoutes(a, b, ranks)
				ba := CompareRoutes(b, a, ranks)
				if ab != -ba {
					t.Fatalf("antisymmetry violated for %q vs %q: %d vs %d", a.Path, b.Path, ab, ba)
				}
			}
		}
	}
}

func TestCompareRoutesTransitivity(t *testing.T) {
	rankSets := []map[string]int{
		nil,
		locale.LanguageRanks([]string{"en", "de"}),
		locale.LanguageRanks([]string{"de-DE", "de_CH", "en", "en_US", "fr_FR"}),
	}
	fixtures := comparatorFixtures()

	for _, ranks := range rankSets {
		for _, a := range fixtures {
			for _, b := range fixtures {
				for _, c := range fixtures {
					if CompareRoutes(a, b, ranks) < 0 && CompareRoutes(b, c, ranks) < 0 {
						if CompareRoutes(a, c, ranks) >= 0 {
							t.Fatalf("transitivity violated: %q < %q < %q", a.Path, c.Path, b.Path)
						}
					}
				}
			}
		}
	}
}

func TestCompareRoutesSortsStable(t *testing.T) {
	ranks := locale.LanguageRanks([]string{"en", "de"})
	routes := comparatorFixtures()

	sorted := slices.Clone(routes)
	slices.SortStableFunc(sorted, func(a, b *Route) int {
		return CompareRoutes(a, b, ranks)
	})

	if sorted[0].Host != "example.com" {
		t.Fatalf("expected the host-bound route first, got %q", sorted[0].Path)
	}
}
