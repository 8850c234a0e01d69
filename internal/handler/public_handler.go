package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pagecms/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts stored page content to sanitized HTML.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// ResolveContent serves any public request by resolving the path against the
// published page tree and returning the rendered page.
func (a *API) ResolveContent(c *gin.Context) {
	page, route, err := a.resolver.ResolvePage(c.Request.URL.Path, c.GetHeader("Accept-Language"))
	if err != nil {
		if errors.Is(err, service.ErrNoRouteFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to resolve page")
		return
	}

	rendered, err := renderMarkdown(page.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to render page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page": gin.H{
			"id":        page.ID,
			"type":      page.Type,
			"title":     page.Title,
			"alias":     page.Alias,
			"language":  route.Page.RootLanguage,
			"content":   rendered,
			"published": page.Published,
		},
		"route": gin.H{
			"path":         route.Path,
			"host":         route.Host,
			"defaults":     route.Defaults,
			"requirements": route.Requirements,
		},
		"supportsComposition": a.registry.SupportsContentComposition(*route.Page),
	})
}

// Ping is a trivial health endpoint.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
