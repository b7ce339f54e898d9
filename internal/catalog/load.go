package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// catalogFile is the on-disk JSON shape for a custom catalog.
type catalogFile struct {
	Items      map[string]string        `json:"items"`
	Categories map[Dimension][]Category `json:"categories"`
}

// LoadFile reads and validates a catalog from a JSON file. Deployments use
// this to swap in their own item and category tables without a rebuild.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	c, err := New(file.Items, file.Categories)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return c, nil
}
