// Package vectordb defines the database-agnostic contract for vector
// similarity search with structured filtering.
//
// # Overview
//
// The [Service] interface is the only surface the application layer sees.
// Adapters (currently Qdrant, see internal/qdrant) implement it against their
// native client, converting the filter expression tree from internal/filter
// into the backend's condition format.
//
//	┌──────────────────────────────────────────────┐
//	│            application / search              │
//	│     (depends on vectordb.Service only)       │
//	└──────────────────────┬───────────────────────┘
//	                       ▼
//	┌──────────────────────────────────────────────┐
//	│               vectordb.Service               │
//	└──────────────────────┬───────────────────────┘
//	                       ▼
//	            ┌──────────────────┐
//	            │  qdrant.Adapter  │
//	            └──────────────────┘
//
// Ranking authority belongs entirely to the backend: Query returns records in
// the order the database ranked them, and callers must not re-sort.
package vectordb
