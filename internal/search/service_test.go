package search

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/imaging"
	"github.com/AlexPavAi/dog-finder/internal/logger"
	"github.com/AlexPavAi/dog-finder/internal/metrics"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

type stubVectorDB struct {
	lastQuery *vectordb.QueryRequest
	records   []vectordb.Record
	err       error
}

func (s *stubVectorDB) Query(ctx context.Context, q vectordb.QueryRequest) ([]vectordb.Record, error) {
	s.lastQuery = &q
	return s.records, s.err
}

func (s *stubVectorDB) Update(ctx context.Context, collection string, dogID int64, fields map[string]any) error {
	return nil
}

func (s *stubVectorDB) BatchInsert(ctx context.Context, collection string, docs []vectordb.Document) error {
	return nil
}

func (s *stubVectorDB) EnsureSchema(ctx context.Context, schema vectordb.Schema) error { return nil }

func (s *stubVectorDB) GetSchema(ctx context.Context, collection string) (*vectordb.CollectionInfo, error) {
	return nil, nil
}

func (s *stubVectorDB) Wipe(ctx context.Context, schema vectordb.Schema) vectordb.WipeResult {
	return vectordb.WipeResult{Success: true}
}

type stubEmbedder struct {
	vec []float32
	err error
}

func (s stubEmbedder) EmbedImage(ctx context.Context, imageBase64 string) ([]float32, error) {
	return s.vec, s.err
}

func (s stubEmbedder) Dimension() int { return len(s.vec) }

func newTestService(vdb *stubVectorDB, emb stubEmbedder) *Service {
	m := metrics.NewMetrics(metrics.Config{Address: ":0", ServiceName: "test"})
	return NewService(vdb, emb, m, logger.NewNop())
}

func queryImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 80, G: 80, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSearch_ReturnsBackendRankingUnchanged(t *testing.T) {
	records := []vectordb.Record{
		{ID: "c", Score: 0.9},
		{ID: "a", Score: 0.7},
		{ID: "b", Score: 0.5},
	}
	vdb := &stubVectorDB{records: records}
	svc := newTestService(vdb, stubEmbedder{vec: []float32{0.1, 0.2}})

	got, err := svc.Search(context.Background(), &Request{Base64Image: queryImage(t)})
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSearch_QueryDefaults(t *testing.T) {
	vdb := &stubVectorDB{}
	svc := newTestService(vdb, stubEmbedder{vec: []float32{0.3}})

	_, err := svc.Search(context.Background(), &Request{Base64Image: queryImage(t)})
	require.NoError(t, err)

	require.NotNil(t, vdb.lastQuery)
	assert.Equal(t, dogstore.Collection, vdb.lastQuery.Collection)
	assert.Equal(t, DefaultTop, vdb.lastQuery.Limit)
	assert.Nil(t, vdb.lastQuery.Offset)
	assert.Equal(t, []float32{0.3}, vdb.lastQuery.Embedding)
	assert.Equal(t, dogstore.DefaultReturnProperties, vdb.lastQuery.Properties)
}

func TestSearchInFoundDogs_NormalizesRequest(t *testing.T) {
	vdb := &stubVectorDB{}
	svc := newTestService(vdb, stubEmbedder{vec: []float32{0.3}})

	req := &Request{Base64Image: queryImage(t)}
	_, err := svc.SearchInFoundDogs(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, req.Type)
	assert.Equal(t, dogstore.DogTypeFound, *req.Type)
	require.NotNil(t, req.IsVerified)
	assert.True(t, *req.IsVerified)

	// The forced type shows up as the first filter predicate; forced
	// isVerified still contributes nothing.
	f := vdb.lastQuery.Filter
	require.NotNil(t, f)
	require.Len(t, f.Operands(), 2)
	assert.Equal(t, "found", f.Operands()[0].Predicate().Value)
}

func TestSearchInLostDogs_NormalizesRequest(t *testing.T) {
	vdb := &stubVectorDB{}
	svc := newTestService(vdb, stubEmbedder{vec: []float32{0.3}})

	req := &Request{Base64Image: queryImage(t)}
	_, err := svc.SearchInLostDogs(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "lost", vdb.lastQuery.Filter.Operands()[0].Predicate().Value)
}

func TestSearch_BadImage(t *testing.T) {
	vdb := &stubVectorDB{}
	svc := newTestService(vdb, stubEmbedder{vec: []float32{0.3}})

	_, err := svc.Search(context.Background(), &Request{Base64Image: "not an image"})
	assert.True(t, errors.Is(err, imaging.ErrDecode))
	assert.Nil(t, vdb.lastQuery, "backend must not be queried for an undecodable image")
}

func TestSearch_BackendErrorPropagates(t *testing.T) {
	vdb := &stubVectorDB{err: vectordb.ErrBackend}
	svc := newTestService(vdb, stubEmbedder{vec: []float32{0.3}})

	_, err := svc.Search(context.Background(), &Request{Base64Image: queryImage(t)})
	assert.True(t, errors.Is(err, vectordb.ErrBackend))
}

func TestGetUnverifiedDocuments(t *testing.T) {
	vdb := &stubVectorDB{records: []vectordb.Record{{ID: "x"}}}
	svc := newTestService(vdb, stubEmbedder{})

	got, err := svc.GetUnverifiedDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NotNil(t, vdb.lastQuery)
	assert.Empty(t, vdb.lastQuery.Embedding)
	assert.Equal(t, unverifiedListLimit, vdb.lastQuery.Limit)

	f := vdb.lastQuery.Filter
	require.NotNil(t, f)
	require.Len(t, f.Operands(), 1)
	p := f.Operands()[0].Predicate()
	assert.Equal(t, []string{dogstore.FieldIsVerified}, p.Path)
	assert.Equal(t, false, p.Value)
}
