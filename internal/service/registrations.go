package service

import (
	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/routing"
)

// RegisterCoreTypes installs the built-in page type registrations. Redirect
// and forward pages never carry composed content; feed pages get their own
// enhancer.
func RegisterCoreTypes(registry *routing.PageRegistry) {
	registry.Add(db.PageTypeRoot, routing.RouteConfig{}, nil, routing.StaticComposition(false))
	registry.Add("redirect", routing.RouteConfig{}, nil, routing.StaticComposition(false))
	registry.Add("forward", routing.RouteConfig{}, nil, routing.StaticComposition(false))
	registry.Add("feed", routing.RouteConfig{}, FeedEnhancer{}, routing.StaticComposition(false))
}
