package routing

import (
	"regexp"
	"strings"
	"sync"
)

// ParametersKey is the placeholder appended to default alias paths so item
// parameters can trail the page alias.
const ParametersKey = "parameters"

// Route is a concrete route built for a single page: a path pattern plus the
// defaults and requirements that describe how a request maps to the page.
type Route struct {
	Path         string
	Host         string
	Page         *Page
	Defaults     map[string]string
	Requirements map[string]string
}

var placeholderPattern = regexp.MustCompile(`\{!?[a-zA-Z_][a-zA-Z0-9_]*\}`)

var (
	matcherMu    sync.Mutex
	matcherCache = map[string]*regexp.Regexp{}
)

// MatchPath reports whether requestPath satisfies the route's path pattern.
// Placeholder tokens are substituted by their requirement pattern, or [^/]+
// when no requirement is registered. Patterns that fail to compile never
// match.
func (r *Route) MatchPath(requestPath string) bool {
	pattern := r.compilePattern()

	matcherMu.Lock()
	matcher, ok := matcherCache[pattern]
	matcherMu.Unlock()

	if !ok {
		var err error
		matcher, err = regexp.Compile(pattern)
		if err != nil {
			return false
		}
		matcherMu.Lock()
		matcherCache[pattern] = matcher
		matcherMu.Unlock()
	}

	return matcher.MatchString(requestPath)
}

// compilePattern turns the route path into an anchored regexp source,
// quoting literal segments and inlining placeholder requirements.
func (r *Route) compilePattern() string {
	var b strings.Builder
	b.WriteString("^")

	rest := r.Path
	for {
		loc := placeholderPattern.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(regexp.QuoteMeta(rest))
			break
		}
		b.WriteString(regexp.QuoteMeta(rest[:loc[0]]))

		name := strings.TrimPrefix(strings.Trim(rest[loc[0]:loc[1]], "{}"), "!")
		requirement := "[^/]+"
		if r.Requirements != nil {
			if req, ok := r.Requirements[name]; ok {
				requirement = req
			}
		}
		b.WriteString("(?:" + requirement + ")")

		rest = rest[loc[1]:]
	}

	b.WriteString("$")
	return b.String()
}
