package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/service"
)

type pagePayload struct {
	ParentID    uint   `json:"parentId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Alias       string `json:"alias"`
	Content     string `json:"content"`
	Published   bool   `json:"published"`
	RequireItem bool   `json:"requireItem"`
	Domain      string `json:"domain"`
	URLPrefix   string `json:"urlPrefix"`
	URLSuffix   string `json:"urlSuffix"`
	Language    string `json:"language"`
	IsFallback  bool   `json:"isFallback"`
	Sorting     int    `json:"sorting"`
}

func (p pagePayload) input() service.PageInput {
	return service.PageInput{
		ParentID:    p.ParentID,
		Type:        p.Type,
		Title:       p.Title,
		Alias:       p.Alias,
		Content:     p.Content,
		Published:   p.Published,
		RequireItem: p.RequireItem,
		Domain:      p.Domain,
		URLPrefix:   p.URLPrefix,
		URLSuffix:   p.URLSuffix,
		Language:    p.Language,
		IsFallback:  p.IsFallback,
		Sorting:     p.Sorting,
	}
}

func pageResponse(page *db.Page) gin.H {
	return gin.H{
		"id":          page.ID,
		"parentId":    page.ParentID,
		"rootId":      page.RootID,
		"type":        page.Type,
		"title":       page.Title,
		"alias":       page.Alias,
		"published":   page.Published,
		"requireItem": page.RequireItem,
		"domain":      page.Domain,
		"urlPrefix":   page.URLPrefix,
		"urlSuffix":   page.URLSuffix,
		"language":    page.Language,
		"isFallback":  page.IsFallback,
		"sorting":     page.Sorting,
	}
}

// ListPages returns the full page tree for the admin UI.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load pages")
		return
	}

	out := make([]gin.H, 0, len(pages))
	for i := range pages {
		out = append(out, pageResponse(&pages[i]))
	}
	c.JSON(http.StatusOK, gin.H{"pages": out})
}

// GetPage returns a single page including its content.
func (a *API) GetPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := a.pages.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load page")
		return
	}

	body := pageResponse(page)
	body["content"] = page.Content
	c.JSON(http.StatusOK, gin.H{"page": body})
}

// CreatePage stores a new page in the tree.
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	page, err := a.pages.Create(payload.input())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageAliasMissing):
			respondError(c, http.StatusBadRequest, "page alias is required")
		case errors.Is(err, service.ErrRootNotFound):
			respondError(c, http.StatusBadRequest, "parent page does not exist")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create page")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": pageResponse(page)})
}

// UpdatePage rewrites the attributes of an existing page.
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	page, err := a.pages.Update(id, payload.input())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			respondError(c, http.StatusNotFound, "page not found")
		case errors.Is(err, service.ErrPageAliasMissing):
			respondError(c, http.StatusBadRequest, "page alias is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update page")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": pageResponse(page)})
}

// DeletePage removes a page from the tree.
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.pages.Delete(id); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "page deleted"})
}

// RoutingInfo exposes the registry state for diagnostics.
func (a *API) RoutingInfo(c *gin.Context) {
	prefixes, err := a.registry.URLPrefixes()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load url prefixes")
		return
	}
	suffixes, err := a.registry.URLSuffixes()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load url suffixes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pageTypes":   a.registry.Keys(),
		"pathRegexes": a.registry.PathRegexes(),
		"urlPrefixes": prefixes,
		"urlSuffixes": suffixes,
	})
}
