// Package storage defines the document-store contract the rest of the
// application persists through. A Collection supports exactly four
// operations; any backing engine that can satisfy them will do.
package storage

import "context"

// Doc is a raw stored document.
type Doc = map[string]any

// Collection is a named bag of documents.
//
// FindOne returns (nil, nil) when no document matches the filter.
// UpdateOne applies set as a partial overwrite of the matched document's
// top-level fields, leaving unnamed fields untouched.
type Collection interface {
	Find(ctx context.Context, filter Doc) ([]Doc, error)
	FindOne(ctx context.Context, filter Doc) (Doc, error)
	InsertOne(ctx context.Context, doc Doc) error
	UpdateOne(ctx context.Context, filter Doc, set Doc) error
}
