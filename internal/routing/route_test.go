package routing

import "testing"

func TestMatchPathOptionalParameters(t *testing.T) {
	route := &Route{
		Path:         "/foo/bar{!parameters}.baz",
		Requirements: map[string]string{"parameters": "(/.+?)?"},
	}

	cases := []struct {
		path string
		want bool
	}{
		{path: "/foo/bar.baz", want: true},
		{path: "/foo/bar/2024/05.baz", want: true},
		{path: "/foo/other.baz", want: false},
		{path: "/foo/bar.html", want: false},
	}

	for _, tc := range cases {
		if got := route.MatchPath(tc.path); got != tc.want {
			t.Fatalf("MatchPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestMatchPathRequiredParameters(t *testing.T) {
	route := &Route{
		Path:         "/foo/bar{!parameters}.baz",
		Requirements: map[string]string{"parameters": "/.+"},
	}

	if route.MatchPath("/foo/bar.baz") {
		t.Fatal("expected a missing item parameter to be rejected")
	}
	if !route.MatchPath("/foo/bar/item.baz") {
		t.Fatal("expected the item parameter to match")
	}
}

func TestMatchPathDefaultRequirement(t *testing.T) {
	route := &Route{Path: "/en/news/{alias}.html"}

	if !route.MatchPath("/en/news/hello.html") {
		t.Fatal("expected single-segment placeholder to match")
	}
	if route.MatchPath("/en/news/a/b.html") {
		t.Fatal("expected multi-segment value to be rejected")
	}
}

func TestMatchPathInvalidRequirementNeverMatches(t *testing.T) {
	route := &Route{
		Path:         "/x{!parameters}",
		Requirements: map[string]string{"parameters": "("},
	}

	if route.MatchPath("/x") {
		t.Fatal("expected invalid requirement pattern to never match")
	}
}
