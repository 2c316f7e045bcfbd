package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

// dogIDField is the payload field used to address documents belonging to one
// dog; a dog can have several images and therefore several points.
const dogIDField = "dogId"

// Query performs a similarity search with the converted filter. Results are
// returned in Qdrant's ranking order with only the requested payload fields.
func (a *Adapter) Query(ctx context.Context, q vectordb.QueryRequest) ([]vectordb.Record, error) {
	if q.Collection == "" {
		return nil, fmt.Errorf("%w: collection name cannot be empty", vectordb.ErrBackend)
	}
	if len(q.Embedding) == 0 && q.TextQuery == "" && q.Filter == nil {
		return nil, fmt.Errorf("%w: an embedding, a text query, or a filter is required", vectordb.ErrBackend)
	}

	qf, err := convertFilter(q.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vectordb.ErrBackend, err)
	}

	limit := uint64(q.Limit)
	req := &qdrant.QueryPoints{
		CollectionName: q.Collection,
		Limit:          &limit,
		Filter:         qf,
	}
	if len(q.Embedding) > 0 {
		req.Query = qdrant.NewQuery(q.Embedding...)
	}
	if q.Offset != nil {
		offset := uint64(*q.Offset)
		req.Offset = &offset
	}
	if len(q.Properties) > 0 {
		req.WithPayload = qdrant.NewWithPayloadInclude(q.Properties...)
	} else {
		req.WithPayload = qdrant.NewWithPayload(true)
	}

	resp, err := a.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %v", vectordb.ErrBackend, err)
	}

	results, err := parseSearchResults(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vectordb.ErrBackend, err)
	}

	a.log.Debug("qdrant query completed", map[string]any{
		"collection": q.Collection,
		"results":    len(results),
	})
	return results, nil
}

// Update patches the payload of every point whose dogId field matches. Wait
// is set so the mutation is visible to the next query.
func (a *Adapter) Update(ctx context.Context, collection string, dogID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	wait := true
	req := &qdrant.SetPayloadPoints{
		CollectionName: collection,
		Payload:        qdrant.NewValueMap(fields),
		PointsSelector: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{qdrant.NewMatchInt(dogIDField, dogID)},
				},
			},
		},
		Wait: &wait,
	}

	if _, err := a.api.SetPayload(ctx, req); err != nil {
		return fmt.Errorf("%w: set payload failed: %v", vectordb.ErrBackend, err)
	}

	a.log.Info("qdrant payload updated", map[string]any{
		"collection": collection,
		"dogId":      dogID,
	})
	return nil
}

// BatchInsert upserts documents in chunks of defaultBatchSize to bound
// request sizes. Wait=true ensures persistence before returning.
func (a *Adapter) BatchInsert(ctx context.Context, collection string, docs []vectordb.Document) error {
	if len(docs) == 0 {
		return nil
	}

	for start := 0; start < len(docs); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(docs))
		if err := a.upsertBatch(ctx, collection, docs[start:end]); err != nil {
			return fmt.Errorf("%w: batch upsert failed at [%d:%d]: %v", vectordb.ErrBackend, start, end, err)
		}
		a.log.Debug("qdrant batch inserted", map[string]any{
			"collection": collection,
			"from":       start,
			"to":         end,
		})
	}
	return nil
}

func (a *Adapter) upsertBatch(ctx context.Context, collection string, batch []vectordb.Document) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, d := range batch {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(d.ID),
			Vectors: qdrant.NewVectors(d.Vector...),
			Payload: qdrant.NewValueMap(d.Properties),
		})
	}

	wait := true
	_, err := a.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         points,
		Wait:           &wait,
	})
	return err
}

// EnsureSchema creates the collection if missing and indexes the filterable
// payload fields. Safe to call at every startup.
func (a *Adapter) EnsureSchema(ctx context.Context, schema vectordb.Schema) error {
	collections, err := a.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to list collections: %v", vectordb.ErrBackend, err)
	}

	if !slices.Contains(collections, schema.Collection) {
		if err := a.createCollection(ctx, schema); err != nil {
			return err
		}
		a.log.Info("qdrant collection created", map[string]any{
			"collection": schema.Collection,
			"vectorSize": schema.VectorSize,
		})
	}

	return a.ensurePayloadIndexes(ctx, schema)
}

func (a *Adapter) createCollection(ctx context.Context, schema vectordb.Schema) error {
	req := &qdrant.CreateCollection{
		CollectionName: schema.Collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     schema.VectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}
	if err := a.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("%w: failed to create collection %q: %v", vectordb.ErrBackend, schema.Collection, err)
	}
	return nil
}

// ensurePayloadIndexes creates a payload index per filterable field.
// CreateFieldIndex is idempotent on the backend side.
func (a *Adapter) ensurePayloadIndexes(ctx context.Context, schema vectordb.Schema) error {
	for _, p := range schema.Properties {
		if !p.Filterable {
			continue
		}
		ft, ok := fieldIndexType(p.DataType)
		if !ok {
			continue
		}
		wait := true
		_, err := a.api.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: schema.Collection,
			FieldName:      p.Name,
			FieldType:      &ft,
			Wait:           &wait,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to index field %q: %v", vectordb.ErrBackend, p.Name, err)
		}
	}
	return nil
}

func fieldIndexType(dataType string) (qdrant.FieldType, bool) {
	switch dataType {
	case vectordb.DataTypeText:
		return qdrant.FieldType_FieldTypeKeyword, true
	case vectordb.DataTypeBoolean:
		return qdrant.FieldType_FieldTypeBool, true
	case vectordb.DataTypeNumber:
		return qdrant.FieldType_FieldTypeInteger, true
	case vectordb.DataTypeDate:
		return qdrant.FieldType_FieldTypeDatetime, true
	default:
		return 0, false
	}
}

// GetSchema reports live collection metadata, hiding the SDK's nested
// protobuf structure from the application layer.
func (a *Adapter) GetSchema(ctx context.Context, collection string) (*vectordb.CollectionInfo, error) {
	if collection == "" {
		return nil, fmt.Errorf("%w: collection name cannot be empty", vectordb.ErrBackend)
	}

	info, err := a.api.GetCollectionInfo(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get collection %q: %v", vectordb.ErrBackend, collection, err)
	}

	size, distance := extractVectorDetails(info)
	return &vectordb.CollectionInfo{
		Name:       collection,
		Status:     info.Status.String(),
		VectorSize: size,
		Distance:   distance,
		Points:     derefUint64(info.PointsCount),
	}, nil
}

// Wipe drops the collection and recreates it from the schema. The result is
// an envelope rather than an error because the caller surfaces the message
// verbatim.
func (a *Adapter) Wipe(ctx context.Context, schema vectordb.Schema) vectordb.WipeResult {
	if err := a.api.DeleteCollection(ctx, schema.Collection); err != nil {
		return vectordb.WipeResult{Success: false, Message: fmt.Sprintf("delete collection: %v", err)}
	}
	if err := a.EnsureSchema(ctx, schema); err != nil {
		return vectordb.WipeResult{Success: false, Message: fmt.Sprintf("recreate collection: %v", err)}
	}

	a.log.Info("qdrant collection wiped", map[string]any{"collection": schema.Collection})
	return vectordb.WipeResult{Success: true}
}
