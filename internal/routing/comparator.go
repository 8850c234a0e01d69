package routing

import (
	"cmp"
	"strings"

	"github.com/pagecms/internal/locale"
)

// CompareRoutes ranks two candidate routes for a request: -1 means a matches
// better than b, 1 the opposite, 0 that the order is undecided.
//
// languageRanks is a preference table as built by locale.LanguageRanks; nil
// or empty means the request carries no language preference, in which case
// fallback roots win.
//
// The criteria form a cascade; each step only applies when every previous
// step tied:
//
//  1. a route bound to a host beats a hostless route
//  2. language preference, falling back to the root fallback flag when
//     neither side is ranked
//  3. regular pages beat root pages
//  4. lower root sorting wins
//  5. deeper paths win
//  6. the lexically greater path (case-folded) wins
func CompareRoutes(a, b *Route, languageRanks map[string]int) int {
	if a.Host != "" && b.Host == "" {
		return -1
	}
	if a.Host == "" && b.Host != "" {
		return 1
	}

	// Sorting unknown without page metadata.
	if a.Page == nil && b.Page == nil {
		return 0
	}

	if a.Page != nil && b.Page != nil {
		if c := compareLanguage(*a.Page, *b.Page, languageRanks); c != 0 {
			return c
		}
		if c := compareRootType(*a.Page, *b.Page); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Page.RootSorting, b.Page.RootSorting); c != 0 {
			return c
		}
	}

	if c := cmp.Compare(segmentCount(b.Path), segmentCount(a.Path)); c != 0 {
		return c
	}

	// Deliberately reversed: the lexically greater path sorts first.
	return strings.Compare(strings.ToLower(b.Path), strings.ToLower(a.Path))
}

// compareLanguage resolves each side's preference rank (exact root language,
// then its primary subtag). A ranked side beats an unranked one; two ranked
// sides compare by rank. When neither side is ranked, or no preference table
// was supplied, the fallback root wins.
func compareLanguage(a, b Page, ranks map[string]int) int {
	rankA, okA := languageRank(ranks, a.RootLanguage)
	rankB, okB := languageRank(ranks, b.RootLanguage)

	if !okA && !okB {
		if a.RootIsFallback && !b.RootIsFallback {
			return -1
		}
		if b.RootIsFallback && !a.RootIsFallback {
			return 1
		}
		return 0
	}
	if !okA {
		return 1
	}
	if !okB {
		return -1
	}
	return cmp.Compare(rankA, rankB)
}

// compareRootType demotes root pages below regular pages.
func compareRootType(a, b Page) int {
	if !a.IsRootType() && b.IsRootType() {
		return -1
	}
	if a.IsRootType() && !b.IsRootType() {
		return 1
	}
	return 0
}

// languageRank looks up a root language in the preference table, trying the
// exact tag first and the primary subtag second. Tags without a separator
// are matched exactly only.
func languageRank(ranks map[string]int, language string) (int, bool) {
	if len(ranks) == 0 {
		return 0, false
	}

	tag := locale.NormalizeTag(language)
	if rank, ok := ranks[tag]; ok {
		return rank, true
	}
	if primary := locale.PrimarySubtag(tag); primary != "" {
		if rank, ok := ranks[primary]; ok {
			return rank, true
		}
	}
	return 0, false
}

// segmentCount counts the non-empty slash-delimited segments of a path; the
// leading slash alone does not open a segment.
func segmentCount(path string) int {
	count := 0
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			count++
		}
	}
	return count
}
