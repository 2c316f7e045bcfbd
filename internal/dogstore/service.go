package dogstore

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/AlexPavAi/dog-finder/internal/embedding"
	"github.com/AlexPavAi/dog-finder/internal/imaging"
	"github.com/AlexPavAi/dog-finder/internal/logger"
	"github.com/AlexPavAi/dog-finder/internal/metrics"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

const (
	maxImageWidth  = 1024
	maxImageHeight = 1024
)

// repository is the relational access the service depends on.
type repository interface {
	CreateDogWithImages(ctx context.Context, dog *Dog) error
	GetDogWithImagesByID(ctx context.Context, dogID int64) (*Dog, error)
	UpdateIsMatched(ctx context.Context, dogID int64, isMatched bool) error
	UpdateIsVerified(ctx context.Context, dogID int64, isVerified bool) error
}

// PhotoArchiver stores the original uploaded photo bytes. Archiving is best
// effort; the add flow never fails on it.
type PhotoArchiver interface {
	Put(ctx context.Context, objectKey string, data []byte, contentType string) error
}

// Service coordinates the add/update flows across the relational store, the
// photo archive, the embedding provider, and the vector store.
type Service struct {
	repo     repository
	vdb      vectordb.Service
	embedder embedding.Provider
	archive  PhotoArchiver
	m        *metrics.Metrics
	log      *logger.Logger
}

// NewService wires the dog service.
func NewService(repo *Repository, vdb vectordb.Service, embedder embedding.Provider, archive PhotoArchiver, m *metrics.Metrics, log *logger.Logger) *Service {
	return newService(repo, vdb, embedder, archive, m, log)
}

func newService(repo repository, vdb vectordb.Service, embedder embedding.Provider, archive PhotoArchiver, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{repo: repo, vdb: vdb, embedder: embedder, archive: archive, m: m, log: log}
}

// AddDogWithImages normalizes the uploaded photos, persists the dog with its
// images, archives the originals, embeds each image, and batch-inserts the
// vector documents. New dogs always start unverified.
func (s *Service) AddDogWithImages(ctx context.Context, dog *Dog, rawImages []string) (*Dog, error) {
	if len(rawImages) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", imaging.ErrDecode)
	}

	dog.IsVerified = false
	dog.IsMatched = false

	dog.Images = make([]DogImage, 0, len(rawImages))
	for _, raw := range rawImages {
		b64, contentType, err := imaging.DecodeAndResizeBase64(raw, maxImageWidth, maxImageHeight)
		if err != nil {
			return nil, err
		}
		dog.Images = append(dog.Images, DogImage{Base64: b64, ContentType: contentType})
	}

	if err := s.repo.CreateDogWithImages(ctx, dog); err != nil {
		return nil, err
	}

	s.archiveOriginals(ctx, dog, rawImages)

	if err := s.indexDog(ctx, dog); err != nil {
		return nil, err
	}

	s.log.Info("added dog with images", map[string]any{
		"dogId":  dog.ID,
		"images": len(dog.Images),
		"type":   string(dog.Type),
	})
	return dog, nil
}

// GetDogWithImagesByID exposes the repository lookup.
func (s *Service) GetDogWithImagesByID(ctx context.Context, dogID int64) (*Dog, error) {
	return s.repo.GetDogWithImagesByID(ctx, dogID)
}

// UpdateIsMatched flips the matched flag relationally and mirrors it into the
// vector store payload so matched dogs drop out of search results.
func (s *Service) UpdateIsMatched(ctx context.Context, dogID int64, isMatched bool) error {
	if err := s.repo.UpdateIsMatched(ctx, dogID, isMatched); err != nil {
		return err
	}
	return s.vdb.Update(ctx, Collection, dogID, map[string]any{
		FieldIsMatched: isMatched,
	})
}

// VerifyDog marks the dog as moderation-approved in both stores.
func (s *Service) VerifyDog(ctx context.Context, dogID int64) error {
	if err := s.repo.UpdateIsVerified(ctx, dogID, true); err != nil {
		return err
	}
	return s.vdb.Update(ctx, Collection, dogID, map[string]any{
		FieldIsVerified: true,
	})
}

// archiveOriginals uploads the raw payloads keyed by dog and image ID.
// Failures are logged and swallowed.
func (s *Service) archiveOriginals(ctx context.Context, dog *Dog, rawImages []string) {
	if s.archive == nil {
		return
	}
	for i, raw := range rawImages {
		if i >= len(dog.Images) {
			break
		}
		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			data = []byte(raw)
		}
		key := fmt.Sprintf("dogs/%d/images/%d", dog.ID, dog.Images[i].ID)
		if err := s.archive.Put(ctx, key, data, "application/octet-stream"); err != nil {
			s.log.Warn("failed to archive original photo", map[string]any{
				"dogId": dog.ID,
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}

// indexDog embeds every image and batch-inserts one vector document per
// image into the dog collection.
func (s *Service) indexDog(ctx context.Context, dog *Dog) error {
	docs := make([]vectordb.Document, 0, len(dog.Images))
	for _, img := range dog.Images {
		vec, err := s.embedder.EmbedImage(ctx, img.Base64)
		if err != nil {
			return fmt.Errorf("dogstore: failed to embed image %d: %w", img.ID, err)
		}
		docs = append(docs, vectordb.Document{
			ID:         documentID(dog.ID, img.ID),
			Vector:     vec,
			Properties: vectorPayload(dog, img),
		})
	}
	if err := s.vdb.BatchInsert(ctx, Collection, docs); err != nil {
		return fmt.Errorf("dogstore: failed to index dog %d: %w", dog.ID, err)
	}
	if s.m != nil {
		s.m.AddIndexedImages(len(docs))
	}
	return nil
}

// documentID derives a stable UUID from the relational identifiers so
// re-indexing the same image overwrites its point.
func documentID(dogID, imageID int64) string {
	name := fmt.Sprintf("dog/%d/image/%d", dogID, imageID)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// vectorPayload flattens the dog attributes plus one image into the payload
// stored on the point.
func vectorPayload(dog *Dog, img DogImage) map[string]any {
	return map[string]any{
		FieldType:             string(dog.Type),
		FieldIsMatched:        dog.IsMatched,
		FieldIsVerified:       dog.IsVerified,
		FieldName:             dog.Name,
		FieldChipNumber:       dog.ChipNumber,
		FieldBreed:            dog.Breed,
		FieldColor:            dog.Color,
		FieldSize:             dog.Size,
		FieldSex:              string(dog.Sex),
		FieldLocation:         dog.Location,
		FieldExtraDetails:     dog.ExtraDetails,
		FieldContactName:      dog.ContactName,
		FieldContactPhone:     dog.ContactPhone,
		FieldContactEmail:     dog.ContactEmail,
		FieldContactAddress:   dog.ContactAddress,
		FieldDogID:            dog.ID,
		FieldDogImageID:       img.ID,
		FieldImageBase64:      img.Base64,
		FieldImageContentType: img.ContentType,
	}
}
