package handler

import (
	"github.com/pagecms/internal/routing"
	"github.com/pagecms/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	pages    *service.PageService
	registry *routing.PageRegistry
	resolver *service.RouteResolver
}

// NewAPI constructs a handler set with a configured page registry.
func NewAPI(gdb *gorm.DB) *API {
	registry := routing.NewPageRegistry(service.NewRootConfigStore(gdb))
	service.RegisterCoreTypes(registry)

	return &API{
		db:       gdb,
		pages:    service.NewPageService(gdb),
		registry: registry,
		resolver: service.NewRouteResolver(gdb, registry),
	}
}

// Registry exposes the page registry for additional type registrations.
func (a *API) Registry() *routing.PageRegistry {
	return a.registry
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
