package catalog

import (
	"fmt"
	"sort"
)

// Dimension identifies one of the three category axes used by the games:
// what you do with an item, what it looks or feels like, and what kind of
// thing it is.
type Dimension string

const (
	DimensionFunction Dimension = "function"
	DimensionFeature  Dimension = "feature"
	DimensionClass    Dimension = "class"
)

// Dimensions returns all valid dimensions in a fixed order.
func Dimensions() []Dimension {
	return []Dimension{DimensionFunction, DimensionFeature, DimensionClass}
}

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionFunction, DimensionFeature, DimensionClass:
		return true
	}
	return false
}

// Category is a named group of item keys within one dimension.
type Category struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Catalog is the read-only lookup of categories and items the samplers draw
// from. It is built once at startup and never mutated, so concurrent reads
// are safe without locking.
type Catalog struct {
	items      map[string]string // item key -> display name
	categories map[Dimension][]Category
	byKey      map[Dimension]map[string]Category
	memberSets map[Dimension]map[string]map[string]bool
}

// New builds a catalog from item display names and per-dimension category
// tables, validating the closed-world rules: known dimensions only,
// non-empty member sets, and every member present in the item table.
func New(items map[string]string, categories map[Dimension][]Category) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}

	c := &Catalog{
		items:      make(map[string]string, len(items)),
		categories: make(map[Dimension][]Category, len(categories)),
		byKey:      make(map[Dimension]map[string]Category, len(categories)),
		memberSets: make(map[Dimension]map[string]map[string]bool, len(categories)),
	}

	for key, name := range items {
		if key == "" || name == "" {
			return nil, fmt.Errorf("item %q has empty key or display name", key)
		}
		c.items[key] = name
	}

	for dim, cats := range categories {
		if !dim.Valid() {
			return nil, fmt.Errorf("unknown dimension %q", dim)
		}
		c.byKey[dim] = make(map[string]Category, len(cats))
		c.memberSets[dim] = make(map[string]map[string]bool, len(cats))

		for _, cat := range cats {
			if cat.Key == "" || cat.Name == "" {
				return nil, fmt.Errorf("dimension %s: category %q has empty key or name", dim, cat.Key)
			}
			if _, dup := c.byKey[dim][cat.Key]; dup {
				return nil, fmt.Errorf("dimension %s: duplicate category %q", dim, cat.Key)
			}
			if len(cat.Members) == 0 {
				return nil, fmt.Errorf("dimension %s: category %q has no members", dim, cat.Key)
			}

			members := make(map[string]bool, len(cat.Members))
			for _, itemKey := range cat.Members {
				if _, known := c.items[itemKey]; !known {
					return nil, fmt.Errorf("dimension %s: category %q references unknown item %q", dim, cat.Key, itemKey)
				}
				members[itemKey] = true
			}

			c.categories[dim] = append(c.categories[dim], cat)
			c.byKey[dim][cat.Key] = cat
			c.memberSets[dim][cat.Key] = members
		}
	}

	return c, nil
}

// ItemsFor returns a copy of the member item keys for a category. An
// unknown dimension or category key yields an empty slice, never an error:
// samplers treat a lookup miss as "skip this candidate".
func (c *Catalog) ItemsFor(dim Dimension, categoryKey string) []string {
	cat, ok := c.byKey[dim][categoryKey]
	if !ok {
		return nil
	}
	members := make([]string, len(cat.Members))
	copy(members, cat.Members)
	return members
}

// CategoryKeys returns the keys of every category in a dimension, in
// catalog order.
func (c *Catalog) CategoryKeys(dim Dimension) []string {
	cats := c.categories[dim]
	keys := make([]string, len(cats))
	for i, cat := range cats {
		keys[i] = cat.Key
	}
	return keys
}

// CategoryName returns the display name of a category.
func (c *Catalog) CategoryName(dim Dimension, categoryKey string) (string, bool) {
	cat, ok := c.byKey[dim][categoryKey]
	if !ok {
		return "", false
	}
	return cat.Name, true
}

// Contains reports whether an item belongs to a category. This is the
// membership test behind the sampler's non-overlap guarantee.
func (c *Catalog) Contains(dim Dimension, categoryKey, itemKey string) bool {
	return c.memberSets[dim][categoryKey][itemKey]
}

// CategoriesContaining returns the keys of every category within one
// dimension that includes the item.
func (c *Catalog) CategoriesContaining(dim Dimension, itemKey string) []string {
	var keys []string
	for _, cat := range c.categories[dim] {
		if c.memberSets[dim][cat.Key][itemKey] {
			keys = append(keys, cat.Key)
		}
	}
	return keys
}

// DisplayName returns the display name for an item key.
func (c *Catalog) DisplayName(itemKey string) (string, bool) {
	name, ok := c.items[itemKey]
	return name, ok
}

// AllItemKeys returns every item key across all dimensions, deduplicated
// and sorted. The asset loader uses this to prefetch one image per key.
func (c *Catalog) AllItemKeys() []string {
	keys := make([]string, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
