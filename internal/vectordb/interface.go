package vectordb

import (
	"context"
	"errors"

	"github.com/AlexPavAi/dog-finder/internal/filter"
)

// ErrBackend wraps any failure reported by the underlying vector database.
// The transport layer maps it to a server error; no automatic retry is
// performed.
var ErrBackend = errors.New("vectordb: backend failure")

// Service is the capability contract for a vector database. Implementations
// are long-lived, created once at startup, and safe for concurrent use.
type Service interface {
	// Query runs a similarity search in a collection. Either embedding or
	// textQuery may be nil/empty (a nil embedding with a text query is a
	// keyword search; both set is a backend-specific hybrid). The filter may
	// be nil, meaning match everything. Results come back in backend ranking
	// order, restricted to the requested properties.
	Query(ctx context.Context, q QueryRequest) ([]Record, error)

	// Update patches the payload of the documents belonging to a dog,
	// identified by the dogId payload field.
	Update(ctx context.Context, collection string, dogID int64, fields map[string]any) error

	// BatchInsert upserts documents in batches.
	BatchInsert(ctx context.Context, collection string, docs []Document) error

	// EnsureSchema creates the collection described by the schema if it does
	// not exist. Safe to call repeatedly.
	EnsureSchema(ctx context.Context, schema Schema) error

	// GetSchema reports the live collection metadata.
	GetSchema(ctx context.Context, collection string) (*CollectionInfo, error)

	// Wipe drops every document in the collection and recreates it from the
	// schema. The result envelope reports success or the backend message.
	Wipe(ctx context.Context, schema Schema) WipeResult
}

// QueryRequest carries the parameters of one similarity search.
type QueryRequest struct {
	Collection string
	Embedding  []float32
	TextQuery  string
	Limit      int
	Offset     *int
	Filter     *filter.Filter
	Properties []string
}
