package service

import (
	"errors"
	"strings"

	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/routing"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrPageAliasMissing = errors.New("page alias is required")
	ErrRootNotFound     = errors.New("root page not found")
)

// PageService provides access to the hierarchical page tree.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// GetByID fetches a single page.
func (s *PageService) GetByID(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// List returns all pages ordered by root sorting and alias.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("sorting, alias").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// PageInput carries the writable attributes of a page.
type PageInput struct {
	ParentID    uint
	Type        string
	Title       string
	Alias       string
	Content     string
	Published   bool
	RequireItem bool
	Domain      string
	URLPrefix   string
	URLSuffix   string
	Language    string
	IsFallback  bool
	Sorting     int
}

// Create stores a new page. Root pages reference themselves as their root;
// other pages inherit the root of their parent.
func (s *PageService) Create(input PageInput) (*db.Page, error) {
	alias := strings.Trim(strings.TrimSpace(input.Alias), "/")
	if alias == "" {
		return nil, ErrPageAliasMissing
	}

	pageType := strings.TrimSpace(input.Type)
	if pageType == "" {
		pageType = db.PageTypeRegular
	}

	page := db.Page{
		ParentID:    input.ParentID,
		Type:        pageType,
		Title:       strings.TrimSpace(input.Title),
		Alias:       alias,
		Content:     input.Content,
		Published:   input.Published,
		RequireItem: input.RequireItem,
		Domain:      strings.TrimSpace(input.Domain),
		URLPrefix:   strings.Trim(strings.TrimSpace(input.URLPrefix), "/"),
		URLSuffix:   strings.TrimSpace(input.URLSuffix),
		Language:    strings.TrimSpace(input.Language),
		IsFallback:  input.IsFallback,
		Sorting:     input.Sorting,
	}

	if pageType != db.PageTypeRoot && input.ParentID != 0 {
		var parent db.Page
		if err := s.db.First(&parent, input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRootNotFound
			}
			return nil, err
		}
		if parent.Type == db.PageTypeRoot {
			page.RootID = parent.ID
		} else {
			page.RootID = parent.RootID
		}
	}

	if err := s.db.Create(&page).Error; err != nil {
		return nil, err
	}

	if page.Type == db.PageTypeRoot && page.RootID != page.ID {
		page.RootID = page.ID
		if err := s.db.Model(&db.Page{}).Where("id = ?", page.ID).Update("root_id", page.ID).Error; err != nil {
			return nil, err
		}
	}

	return &page, nil
}

// Update rewrites the writable attributes of an existing page.
func (s *PageService) Update(id uint, input PageInput) (*db.Page, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	alias := strings.Trim(strings.TrimSpace(input.Alias), "/")
	if alias == "" {
		return nil, ErrPageAliasMissing
	}

	page.Title = strings.TrimSpace(input.Title)
	page.Alias = alias
	page.Content = input.Content
	page.Published = input.Published
	page.RequireItem = input.RequireItem
	page.Domain = strings.TrimSpace(input.Domain)
	page.URLPrefix = strings.Trim(strings.TrimSpace(input.URLPrefix), "/")
	page.URLSuffix = strings.TrimSpace(input.URLSuffix)
	page.Language = strings.TrimSpace(input.Language)
	page.IsFallback = input.IsFallback
	page.Sorting = input.Sorting
	if pageType := strings.TrimSpace(input.Type); pageType != "" {
		page.Type = pageType
	}

	if err := s.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page from the tree.
func (s *PageService) Delete(id uint) error {
	result := s.db.Delete(&db.Page{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return nil
}

// FindCandidates returns the published pages whose alias is one of the given
// candidates, root pages included.
func (s *PageService) FindCandidates(aliases []string) ([]db.Page, error) {
	if len(aliases) == 0 {
		return nil, nil
	}

	var pages []db.Page
	if err := s.db.Where("alias IN ? AND published = ?", aliases, true).Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// RouteView composes the read-only routing view of a page, resolving the
// root metadata the routing core ranks by.
func (s *PageService) RouteView(page db.Page) (routing.Page, error) {
	view := routing.Page{
		ID:          page.ID,
		Type:        page.Type,
		Alias:       page.Alias,
		RequireItem: page.RequireItem,
	}

	root := page
	if page.Type != db.PageTypeRoot && page.RootID != 0 {
		var parent db.Page
		if err := s.db.First(&parent, page.RootID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return routing.Page{}, err
			}
		} else {
			root = parent
		}
	}

	view.Domain = root.Domain
	view.URLPrefix = root.URLPrefix
	view.URLSuffix = root.URLSuffix
	view.RootLanguage = root.Language
	view.RootIsFallback = root.IsFallback
	view.RootSorting = root.Sorting

	return view, nil
}
