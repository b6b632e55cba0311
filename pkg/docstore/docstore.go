package docstore

import (
	"context"
)

// Filter is a structural predicate over document fields. Values are either
// scalars (equality match) or one of the operator wrappers below. Filters
// never carry raw query language, so the store stays swappable.
type Filter map[string]any

// In matches documents whose field equals any of the given values.
type In []string

// Gte matches documents whose string field is >= the given value.
// Timestamps are stored as RFC3339 strings, so >= is a plain byte compare.
type Gte string

// FindOptions controls ordering and pagination for FindMany.
type FindOptions struct {
	SortField string
	SortDesc  bool
	Skip      int
	Limit     int
}

// Pipeline describes a group-and-count aggregation over one collection.
// When DateBucket is set, the group key is the first 10 bytes of the field
// value (the date component of an ISO-8601 timestamp). DropEmptyKeys
// excludes documents where the grouped field is missing or empty.
type Pipeline struct {
	Match           Filter
	GroupBy         string
	DateBucket      bool
	DropEmptyKeys   bool
	SortByCountDesc bool // otherwise sorted by key ascending
	Limit           int
}

// GroupRow is one output row of an aggregation.
type GroupRow struct {
	Key   string
	Count int64
}

// Store is a narrow capability interface over a document collection.
// FindOne returns (nil, nil) when no document matches. Write operations on
// "not found" return a zero affected count rather than an error; callers
// translate that into a not-found failure at the domain boundary.
type Store interface {
	Insert(ctx context.Context, collection string, doc map[string]any) error
	FindOne(ctx context.Context, collection string, filter Filter) (map[string]any, error)
	FindMany(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]map[string]any, error)
	UpdateOne(ctx context.Context, collection string, filter Filter, patch map[string]any) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	Distinct(ctx context.Context, collection string, field string) ([]string, error)
	Aggregate(ctx context.Context, collection string, pipe Pipeline) ([]GroupRow, error)
}
