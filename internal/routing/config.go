package routing

// RouteConfig is the immutable route template registered for a page type.
// It is constructed once at registration time and never mutated.
type RouteConfig struct {
	// Path overrides the default alias-based path. An empty path builds
	// "urlPrefix/alias{!parameters}urlSuffix". A path starting with "/" is
	// used as-is (still prefixed by the page's URL prefix); any other
	// value is appended after the alias.
	Path string

	// PathRegex is an optional pattern the registry exposes for matching
	// request paths against this type. Empty means none.
	PathRegex string

	// URLSuffix overrides the page's own URL suffix when non-nil. The
	// empty string is a valid override that removes the suffix.
	URLSuffix *string
}

// Suffix returns a suffix override for RouteConfig literals.
func Suffix(s string) *string {
	return &s
}
