package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when a request carries no usable language hint.
const DefaultLanguage = "en"

// NormalizeTag canonicalizes a language tag: trims whitespace and replaces
// underscore region separators with hyphens ("de_CH" -> "de-CH").
func NormalizeTag(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.ReplaceAll(trimmed, "_", "-")
}

// PrimarySubtag returns the language portion before the region separator
// ("en-US" -> "en"). Tags without a separator, or with a leading separator,
// are treated as opaque and return an empty string.
func PrimarySubtag(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return ""
}

// LanguageRanks converts a preference-ordered list of language tags into a
// rank lookup table (lower rank = higher preference). Tags are processed left
// to right and the first insertion of a key always keeps its rank. After a
// region-qualified tag is inserted, its primary subtag is inserted right
// behind it unless an entry for the primary subtag already exists.
//
//	LanguageRanks([]string{"de_DE", "de_CH", "en"})
//	// de-DE:0 de:1 de-CH:2 en:3
func LanguageRanks(preferred []string) map[string]int {
	ranks := make(map[string]int, len(preferred)*2)

	insert := func(tag string) {
		if _, exists := ranks[tag]; !exists {
			ranks[tag] = len(ranks)
		}
	}

	for _, raw := range preferred {
		tag := NormalizeTag(raw)
		if tag == "" {
			continue
		}
		insert(tag)
		if primary := PrimarySubtag(tag); primary != "" {
			insert(primary)
		}
	}

	return ranks
}

type weightedTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage extracts the language tags of an Accept-Language header
// ordered by descending quality. Entries without a q parameter default to
// quality 1.0; malformed q values are ignored. Sorting is stable, so equal
// qualities keep their header position.
func ParseAcceptLanguage(header string) []string {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return nil
	}

	var tags []weightedTag
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag := part
		quality := 1.0
		if semicolon := strings.IndexByte(part, ';'); semicolon >= 0 {
			tag = strings.TrimSpace(part[:semicolon])
			for _, param := range strings.Split(part[semicolon+1:], ";") {
				param = strings.TrimSpace(param)
				if !strings.HasPrefix(param, "q=") {
					continue
				}
				if q, err := strconv.ParseFloat(param[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}
		if tag == "" || tag == "*" {
			continue
		}
		tags = append(tags, weightedTag{tag: tag, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	ordered := make([]string, 0, len(tags))
	for _, entry := range tags {
		ordered = append(ordered, entry.tag)
	}
	return ordered
}
