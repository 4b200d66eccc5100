// server/internal/compliance/index.go
package compliance

// Record is the slice of a fleet document the index cares about. Handlers
// map their stored documents into Records; documents written before
// categories were stored get theirs derived from the doc_type label.
type Record struct {
	RelatedType RelatedType
	RelatedID   string
	Category    Category
}

// NewRecord builds a Record, falling back to CategoryFromLabel when the
// stored category is empty.
func NewRecord(relatedType RelatedType, relatedID, category, docType string) Record {
	cat := Category(category)
	if cat == "" {
		cat = CategoryFromLabel(docType)
	}
	return Record{RelatedType: relatedType, RelatedID: relatedID, Category: cat}
}

type ownerKey struct {
	relatedType RelatedType
	relatedID   string
}

// Index answers "does a document of category C exist for this entity" over
// a batch of document records fetched once per list screen. Only existence
// matters, not count or recency.
type Index struct {
	categories map[ownerKey]map[Category]struct{}
}

// NewIndex builds an index from a snapshot of document records.
func NewIndex(records []Record) *Index {
	idx := &Index{categories: make(map[ownerKey]map[Category]struct{})}
	for _, r := range records {
		key := ownerKey{relatedType: r.RelatedType, relatedID: r.RelatedID}
		cats, ok := idx.categories[key]
		if !ok {
			cats = make(map[Category]struct{})
			idx.categories[key] = cats
		}
		cats[r.Category] = struct{}{}
	}
	return idx
}

// Has reports whether the entity has at least one document of the category.
func (idx *Index) Has(relatedType RelatedType, relatedID string, category Category) bool {
	cats, ok := idx.categories[ownerKey{relatedType: relatedType, relatedID: relatedID}]
	if !ok {
		return false
	}
	_, ok = cats[category]
	return ok
}
