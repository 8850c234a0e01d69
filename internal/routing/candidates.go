package routing

import "strings"

// IndexAlias is the alias looked up when a request targets a site root.
const IndexAlias = "index"

// AliasCandidates derives the page aliases that could serve a request path.
// Known root URL prefixes and suffixes are stripped off, then trailing
// segments are cut away one by one because item parameters may follow the
// alias. Candidates are returned deduplicated in first-seen order; an empty
// request resolves to the index alias.
func AliasCandidates(requestPath string, prefixes, suffixes []string) []string {
	path := strings.Trim(requestPath, "/")

	variants := []string{path}

	for _, prefix := range prefixes {
		trimmed := strings.Trim(prefix, "/")
		if trimmed == "" {
			continue
		}
		if path == trimmed {
			variants = append(variants, "")
		} else if strings.HasPrefix(path, trimmed+"/") {
			variants = append(variants, path[len(trimmed)+1:])
		}
	}

	withSuffixes := variants
	for _, variant := range variants {
		for _, suffix := range suffixes {
			if suffix == "" {
				continue
			}
			if strings.HasSuffix(variant, suffix) {
				withSuffixes = append(withSuffixes, variant[:len(variant)-len(suffix)])
			}
		}
	}

	var candidates []string
	seen := make(map[string]bool)
	add := func(alias string) {
		if alias == "" {
			alias = IndexAlias
		}
		if !seen[alias] {
			seen[alias] = true
			candidates = append(candidates, alias)
		}
	}

	for _, variant := range withSuffixes {
		add(variant)
		for {
			slash := strings.LastIndexByte(variant, '/')
			if slash < 0 {
				break
			}
			variant = variant[:slash]
			add(variant)
		}
	}

	return candidates
}
