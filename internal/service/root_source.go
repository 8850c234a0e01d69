package service

import (
	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/routing"
	"gorm.io/gorm"
)

// RootConfigStore answers the registry's content-root queries from the page
// table. It implements routing.RootConfigSource with a single SELECT per
// call and caches nothing.
type RootConfigStore struct {
	db *gorm.DB
}

// NewRootConfigStore returns a store reading root page URL configuration.
func NewRootConfigStore(gdb *gorm.DB) *RootConfigStore {
	return &RootConfigStore{db: gdb}
}

// RootConfigs returns the URL prefix and suffix of every published root page
// ordered by sorting.
func (s *RootConfigStore) RootConfigs() ([]routing.RootConfig, error) {
	var rows []struct {
		URLPrefix string
		URLSuffix string
	}

	err := s.db.Model(&db.Page{}).
		Where("type = ? AND published = ?", db.PageTypeRoot, true).
		Order("sorting").
		Select("url_prefix", "url_suffix").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	configs := make([]routing.RootConfig, 0, len(rows))
	for _, row := range rows {
		configs = append(configs, routing.RootConfig{
			URLPrefix: row.URLPrefix,
			URLSuffix: row.URLSuffix,
		})
	}
	return configs, nil
}
