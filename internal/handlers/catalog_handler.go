package handlers

import (
	"net/http"

	"brightplay/internal/catalog"
)

// CatalogHandler exposes the item catalog for asset prefetching
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type catalogItem struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Items lists every item key with its display name so the client can load
// art and audio before a game starts.
func (h *CatalogHandler) Items(w http.ResponseWriter, r *http.Request) {
	keys := h.catalog.AllItemKeys()

	items := make([]catalogItem, 0, len(keys))
	for _, key := range keys {
		name, _ := h.catalog.DisplayName(key)
		items = append(items, catalogItem{Key: key, Name: name})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
