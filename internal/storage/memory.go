package storage

import (
	"context"
	"sync"
)

// MemoryCollection keeps documents in process memory. It exists for tests,
// which should not need a running database.
type MemoryCollection struct {
	mu   sync.Mutex
	docs []Doc
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

func (c *MemoryCollection) Find(ctx context.Context, filter Doc) ([]Doc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Doc
	for _, d := range c.docs {
		if matches(d, filter) {
			out = append(out, clone(d))
		}
	}
	return out, nil
}

func (c *MemoryCollection) FindOne(ctx context.Context, filter Doc) (Doc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		if matches(d, filter) {
			return clone(d), nil
		}
	}
	return nil, nil
}

func (c *MemoryCollection) InsertOne(ctx context.Context, doc Doc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.docs = append(c.docs, clone(doc))
	return nil
}

func (c *MemoryCollection) UpdateOne(ctx context.Context, filter Doc, set Doc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, d := range c.docs {
		if matches(d, filter) {
			for k, v := range set {
				d[k] = v
			}
			return nil
		}
	}
	return nil
}

func matches(doc, filter Doc) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func clone(d Doc) Doc {
	out := make(Doc, len(d))
	for k, v := range d {
		if vs, ok := v.([]any); ok {
			cp := make([]any, len(vs))
			copy(cp, vs)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}
