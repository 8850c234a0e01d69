package db

import "gorm.io/gorm"

// PageTypeRoot marks the root page of a site or language subtree. Root pages
// carry the URL prefix/suffix, domain and language metadata inherited by
// every page below them.
const PageTypeRoot = "root"

// PageTypeRegular is the default type for content pages.
const PageTypeRegular = "regular"

// Page is a node of the hierarchical page tree.
type Page struct {
	gorm.Model
	ParentID uint `gorm:"index"`

	// RootID points at the root page governing this subtree. Root pages
	// reference themselves after creation.
	RootID uint `gorm:"index"`

	Type      string `gorm:"default:regular;index"`
	Title     string
	Alias     string `gorm:"index;not null"`
	Content   string `gorm:"type:text"`
	Published bool   `gorm:"default:false;index"`

	// RequireItem forces an item parameter after the alias.
	RequireItem bool

	// Root page settings; empty on regular pages.
	Domain     string
	URLPrefix  string `gorm:"column:url_prefix"`
	URLSuffix  string `gorm:"column:url_suffix"`
	Language   string
	IsFallback bool
	Sorting    int `gorm:"default:0"`
}
