// Package search orchestrates the dog similarity queries: image
// normalization, embedding, filter construction, and the vector store call.
// Results are returned exactly as ranked by the backend.
package search

import (
	"context"
	"time"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/embedding"
	"github.com/AlexPavAi/dog-finder/internal/filter"
	"github.com/AlexPavAi/dog-finder/internal/imaging"
	"github.com/AlexPavAi/dog-finder/internal/logger"
	"github.com/AlexPavAi/dog-finder/internal/metrics"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

const (
	maxImageWidth  = 1024
	maxImageHeight = 1024

	// unverifiedListLimit bounds the moderation queue listing.
	unverifiedListLimit = 10000
)

// Service runs similarity searches against the dog collection. All
// collaborators are process-wide handles; per-request state lives on the
// stack, so a single Service is safe for concurrent use.
type Service struct {
	vdb      vectordb.Service
	embedder embedding.Provider
	m        *metrics.Metrics
	log      *logger.Logger
}

// NewService wires the search orchestrator.
func NewService(vdb vectordb.Service, embedder embedding.Provider, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{vdb: vdb, embedder: embedder, m: m, log: log}
}

// SearchInFoundDogs searches the found-dog reports for a lost dog's photo.
// The request is normalized to type=found and isVerified=true before the
// shared path runs.
func (s *Service) SearchInFoundDogs(ctx context.Context, req *Request) ([]vectordb.Record, error) {
	found := dogstore.DogTypeFound
	verified := true
	req.Type = &found
	req.IsVerified = &verified
	return s.search(ctx, "search_in_found_dogs", req)
}

// SearchInLostDogs searches the lost-dog reports for a found dog's photo.
func (s *Service) SearchInLostDogs(ctx context.Context, req *Request) ([]vectordb.Record, error) {
	lost := dogstore.DogTypeLost
	verified := true
	req.Type = &lost
	req.IsVerified = &verified
	return s.search(ctx, "search_in_lost_dogs", req)
}

// Search runs the request as-is, without type normalization.
func (s *Service) Search(ctx context.Context, req *Request) ([]vectordb.Record, error) {
	return s.search(ctx, "search", req)
}

// search is the shared pipeline: normalize the image, embed it, build the
// filter, query, and hand back the backend's ranking untouched. A request
// either fully succeeds or fully fails.
func (s *Service) search(ctx context.Context, endpoint string, req *Request) ([]vectordb.Record, error) {
	start := time.Now()

	b64, _, err := imaging.DecodeAndResizeBase64(req.Base64Image, maxImageWidth, maxImageHeight)
	if err != nil {
		s.m.ObserveSearch(endpoint, "error", time.Since(start))
		return nil, err
	}

	vec, err := s.embedder.EmbedImage(ctx, b64)
	if err != nil {
		s.m.ObserveSearch(endpoint, "error", time.Since(start))
		return nil, err
	}

	records, err := s.vdb.Query(ctx, vectordb.QueryRequest{
		Collection: dogstore.Collection,
		Embedding:  vec,
		Limit:      req.limit(),
		Filter:     buildFilter(req),
		Properties: req.properties(),
	})
	if err != nil {
		s.m.ObserveSearch(endpoint, "error", time.Since(start))
		return nil, err
	}

	s.m.ObserveSearch(endpoint, "ok", time.Since(start))
	s.log.Info("search completed", map[string]any{
		"endpoint": endpoint,
		"results":  len(records),
	})
	return records, nil
}

// GetUnverifiedDocuments lists the moderation queue: every document whose
// isVerified payload flag is still false. Filter-only query, no embedding.
func (s *Service) GetUnverifiedDocuments(ctx context.Context) ([]vectordb.Record, error) {
	f, err := filter.And(filter.BoolEqual(dogstore.FieldIsVerified, false))
	if err != nil {
		return nil, err
	}
	return s.vdb.Query(ctx, vectordb.QueryRequest{
		Collection: dogstore.Collection,
		Limit:      unverifiedListLimit,
		Filter:     f,
		Properties: dogstore.DefaultReturnProperties,
	})
}
