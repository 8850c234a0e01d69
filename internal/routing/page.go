package routing

// RootType is the page type marking the root of a site or language subtree.
const RootType = "root"

// Page is a read-only view of the content-page attributes the routing core
// needs. Handlers and services copy persistence models into this struct so
// route building and ranking never touch a live database record.
type Page struct {
	ID    uint
	Type  string
	Alias string

	// Domain binds the page's routes to a host. Inherited from the root
	// page; empty means any host.
	Domain string

	// URLPrefix and URLSuffix are inherited from the root page of the
	// subtree the page belongs to.
	URLPrefix string
	URLSuffix string

	// RequireItem marks pages that must be requested with an item
	// parameter appended to the alias.
	RequireItem bool

	// RootLanguage, RootIsFallback and RootSorting describe the root page
	// governing this subtree and drive language-based route ranking.
	RootLanguage   string
	RootIsFallback bool
	RootSorting    int
}

// IsRootType reports whether the page itself is a site root.
func (p Page) IsRootType() bool {
	return p.Type == RootType
}

// RootConfig is one root page's URL configuration as reported by the
// content-root source.
type RootConfig struct {
	URLPrefix string
	URLSuffix string
}

// RootConfigSource supplies the URL configuration of all root pages. The
// registry issues exactly one query per prefix or suffix aggregation call.
type RootConfigSource interface {
	RootConfigs() ([]RootConfig, error)
}
