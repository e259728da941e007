package export

import (
	"github.com/flarebyte/coursegraph/internal/catalog"
)

// document mirrors the loader's top-level {"classes": [...]} shape.
type document struct {
	Classes []catalog.Record `json:"classes" yaml:"classes"`
}

// CatalogJSON serializes c in the course list grammar, ordered by catalog
// key, so the output loads back into an equal catalog.
func CatalogJSON(c *catalog.Catalog, pretty bool) ([]byte, error) {
	sorted := c.Sorted()
	doc := document{Classes: make([]catalog.Record, 0, len(sorted))}
	for _, r := range sorted {
		doc.Classes = append(doc.Classes, *r)
	}
	return EncodeJSON(doc, pretty)
}
