package entity

import (
	"regexp"
	"strings"
)

// Category is a catalog grouping. The tree is exactly two levels deep:
// a category may carry subcategories, a subcategory never does.
type Category struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Image         string     `json:"image,omitempty"`
	Featured      bool       `json:"featured"`
	ProductCount  int        `json:"productCount"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

// CategoryRef is the minimal category reference embedded in products.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// MatchesIDOrSlug reports whether the given route parameter identifies
// this category, either by numeric ID or by slug.
func (c *Category) MatchesIDOrSlug(idOrSlug string) bool {
	return c.Slug == idOrSlug || formatID(c.ID) == idOrSlug
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL slug from a display name: lowercase, punctuation
// stripped, whitespace/underscore runs collapsed to single hyphens, no
// leading or trailing hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	slug = slugTrim.ReplaceAllString(slug, "")

	return slug
}

// ValidSlug reports whether a slug contains only lowercase letters,
// digits and hyphens.
var ValidSlug = regexp.MustCompile(`^[a-z0-9-]+$`).MatchString
