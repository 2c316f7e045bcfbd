// Package qdrant implements vectordb.Service on top of the official Qdrant
// Go client.
//
// The adapter keeps the application layer free of Qdrant SDK types: the
// filter expression tree from internal/filter is converted recursively into
// Qdrant conditions (And -> must, Or -> should, nested trees via
// condition-wrapped filters), and search responses come back as plain
// vectordb.Record values.
//
// Construction performs an immediate health check so a misconfigured
// endpoint fails at startup rather than on the first query. The client is a
// process-wide singleton wired through the Fx module.
package qdrant
