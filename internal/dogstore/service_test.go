package dogstore

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

	"github.com/AlexPavAi/dog-finder/internal/imaging"
	"github.com/AlexPavAi/dog-finder/internal/logger"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

type fakeRepo struct {
	created    *Dog
	nextID     int64
	matched    map[int64]bool
	verified   map[int64]bool
	missingIDs map[int64]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, matched: map[int64]bool{}, verified: map[int64]bool{}, missingIDs: map[int64]bool{}}
}

func (f *fakeRepo) CreateDogWithImages(ctx context.Context, dog *Dog) error {
	dog.ID = f.nextID
	f.nextID++
	for i := range dog.Images {
		dog.Images[i].ID = f.nextID
		dog.Images[i].DogID = dog.ID
		f.nextID++
	}
	f.created = dog
	return nil
}

func (f *fakeRepo) GetDogWithImagesByID(ctx context.Context, dogID int64) (*Dog, error) {
	if f.created == nil || f.created.ID != dogID {
		return nil, ErrNotFound
	}
	return f.created, nil
}

func (f *fakeRepo) UpdateIsMatched(ctx context.Context, dogID int64, isMatched bool) error {
	if f.missingIDs[dogID] {
		return ErrNotFound
	}
	f.matched[dogID] = isMatched
	return nil
}

func (f *fakeRepo) UpdateIsVerified(ctx context.Context, dogID int64, isVerified bool) error {
	if f.missingIDs[dogID] {
		return ErrNotFound
	}
	f.verified[dogID] = isVerified
	return nil
}

type fakeVectorDB struct {
	inserted []vectordb.Document
	updates  []map[string]any
}

func (f *fakeVectorDB) Query(ctx context.Context, req vectordb.QueryRequest) ([]vectordb.Record, error) {
	return nil, nil
}

func (f *fakeVectorDB) Update(ctx context.Context, collection string, dogID int64, fields map[string]any) error {
	f.updates = append(f.updates, fields)
	return nil
}

func (f *fakeVectorDB) BatchInsert(ctx context.Context, collection string, docs []vectordb.Document) error {
	f.inserted = append(f.inserted, docs...)
	return nil
}

func (f *fakeVectorDB) EnsureSchema(ctx context.Context, schema vectordb.Schema) error { return nil }

func (f *fakeVectorDB) GetSchema(ctx context.Context, collection string) (*vectordb.CollectionInfo, error) {
	return nil, nil
}

func (f *fakeVectorDB) Wipe(ctx context.Context, schema vectordb.Schema) vectordb.WipeResult {
	return vectordb.WipeResult{Success: true}
}

type fakeEmbedder struct{}

func (fakeEmbedder) EmbedImage(ctx context.Context, imageBase64 string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func (fakeEmbedder) Dimension() int { return 2 }

type fakeArchive struct {
	keys []string
}

func (f *fakeArchive) Put(ctx context.Context, objectKey string, data []byte, contentType string) error {
	f.keys = append(f.keys, objectKey)
	return nil
}

func testImageBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAddDogWithImages(t *testing.T) {
	repo := newFakeRepo()
	vdb := &fakeVectorDB{}
	archive := &fakeArchive{}
	svc := newService(repo, vdb, fakeEmbedder{}, archive, nil, logger.NewNop())

	dog := &Dog{
		Type:       DogTypeFound,
		Breed:      "labrador",
		IsVerified: true, // must be reset, new entries start unverified
	}
	img := testImageBase64(t)

	got, err := svc.AddDogWithImages(context.Background(), dog, []string{img, img})
	require.NoError(t, err)

	assert.False(t, got.IsVerified)
	assert.False(t, got.IsMatched)
	require.Len(t, got.Images, 2)
	assert.Equal(t, imaging.ContentTypeJPEG, got.Images[0].ContentType)

	require.Len(t, vdb.inserted, 2)
	payload := vdb.inserted[0].Properties
	assert.Equal(t, "found", payload[FieldType])
	assert.Equal(t, "labrador", payload[FieldBreed])
	assert.Equal(t, false, payload[FieldIsMatched])
	assert.Equal(t, false, payload[FieldIsVerified])
	assert.Equal(t, got.ID, payload[FieldDogID])
	assert.NotEmpty(t, vdb.inserted[0].ID)
	assert.NotEqual(t, vdb.inserted[0].ID, vdb.inserted[1].ID)

	assert.Len(t, archive.keys, 2)
}

func TestAddDogWithImages_BadImage(t *testing.T) {
	repo := newFakeRepo()
	vdb := &fakeVectorDB{}
	svc := newService(repo, vdb, fakeEmbedder{}, nil, nil, logger.NewNop())

	_, err := svc.AddDogWithImages(context.Background(), &Dog{Type: DogTypeLost}, []string{"garbage"})
	assert.True(t, errors.Is(err, imaging.ErrDecode))
	assert.Nil(t, repo.created)
	assert.Empty(t, vdb.inserted)
}

func TestAddDogWithImages_NoImages(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeVectorDB{}, fakeEmbedder{}, nil, nil, logger.NewNop())

	_, err := svc.AddDogWithImages(context.Background(), &Dog{Type: DogTypeLost}, nil)
	assert.Error(t, err)
}

func TestUpdateIsMatched_MirrorsToVectorStore(t *testing.T) {
	repo := newFakeRepo()
	vdb := &fakeVectorDB{}
	svc := newService(repo, vdb, fakeEmbedder{}, nil, nil, logger.NewNop())

	require.NoError(t, svc.UpdateIsMatched(context.Background(), 7, true))

	assert.True(t, repo.matched[7])
	require.Len(t, vdb.updates, 1)
	assert.Equal(t, map[string]any{FieldIsMatched: true}, vdb.updates[0])
}

func TestUpdateIsMatched_MissingDog(t *testing.T) {
	repo := newFakeRepo()
	repo.missingIDs[9] = true
	vdb := &fakeVectorDB{}
	svc := newService(repo, vdb, fakeEmbedder{}, nil, nil, logger.NewNop())

	err := svc.UpdateIsMatched(context.Background(), 9, true)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Empty(t, vdb.updates, "vector store must not be touched when the row update fails")
}

func TestVerifyDog(t *testing.T) {
	repo := newFakeRepo()
	vdb := &fakeVectorDB{}
	svc := newService(repo, vdb, fakeEmbedder{}, nil, nil, logger.NewNop())

	require.NoError(t, svc.VerifyDog(context.Background(), 3))

	assert.True(t, repo.verified[3])
	require.Len(t, vdb.updates, 1)
	assert.Equal(t, map[string]any{FieldIsVerified: true}, vdb.updates[0])
}
