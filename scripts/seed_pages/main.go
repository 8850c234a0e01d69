package main

import (
	"fmt"
	"log"

	"github.com/pagecms/internal/config"
	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/service"
)

// Seeds a small bilingual site: a fallback German tree and an English tree,
// each with an index page and a handful of content pages.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	var count int64
	db.DB.Model(&db.Page{}).Count(&count)
	if count > 0 {
		fmt.Println("pages already exist, nothing to do")
		return
	}

	svc := service.NewPageService(db.DB)

	roots := []service.PageInput{
		{
			Type: db.PageTypeRoot, Title: "Deutschland", Alias: "germany",
			Published: true, URLPrefix: "de", URLSuffix: ".html",
			Language: "de", IsFallback: true, Sorting: 1,
		},
		{
			Type: db.PageTypeRoot, Title: "England", Alias: "england",
			Published: true, URLPrefix: "en", URLSuffix: ".html",
			Language: "en", Sorting: 2,
		},
	}

	children := map[string][]service.PageInput{
		"germany": {
			{Title: "Startseite", Alias: "index", Content: "# Willkommen\n\nDies ist die Startseite.", Published: true},
			{Title: "Blog", Alias: "blog", Content: "# Blog\n\nNeuigkeiten und Artikel.", Published: true},
			{Title: "Termine", Alias: "termine", Content: "# Termine", Published: true, RequireItem: true},
		},
		"england": {
			{Title: "Home", Alias: "index", Content: "# Welcome\n\nThis is the home page.", Published: true},
			{Title: "Blog", Alias: "blog", Content: "# Blog\n\nNews and articles.", Published: true},
			{Title: "Events", Alias: "events", Content: "# Events", Published: true, RequireItem: true},
		},
	}

	for _, input := range roots {
		root, err := svc.Create(input)
		if err != nil {
			log.Fatalf("failed to create root %s: %v", input.Alias, err)
		}
		for _, child := range children[input.Alias] {
			child.ParentID = root.ID
			if _, err := svc.Create(child); err != nil {
				log.Fatalf("failed to create page %s: %v", child.Alias, err)
			}
		}
	}

	fmt.Println("seeded a bilingual demo site")
	fmt.Println("trees: /de (fallback) and /en, suffix .html")
}
