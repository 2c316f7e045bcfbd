// Package httpapi is the thin echo transport over the search and dog
// services. All response shaping goes through the envelope in response.go;
// handlers never branch on error details themselves.
package httpapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/logger"
	"github.com/AlexPavAi/dog-finder/internal/search"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

// Searcher is the slice of the search service the transport needs.
type Searcher interface {
	SearchInFoundDogs(ctx context.Context, req *search.Request) ([]vectordb.Record, error)
	SearchInLostDogs(ctx context.Context, req *search.Request) ([]vectordb.Record, error)
	GetUnverifiedDocuments(ctx context.Context) ([]vectordb.Record, error)
}

// DogService is the slice of the dog service the transport needs.
type DogService interface {
	AddDogWithImages(ctx context.Context, dog *dogstore.Dog, rawImages []string) (*dogstore.Dog, error)
	GetDogWithImagesByID(ctx context.Context, dogID int64) (*dogstore.Dog, error)
	UpdateIsMatched(ctx context.Context, dogID int64, isMatched bool) error
	VerifyDog(ctx context.Context, dogID int64) error
}

// Handler holds the collaborators behind the /dogfinder routes.
type Handler struct {
	searcher Searcher
	dogs     DogService
	vdb      vectordb.Service
	schema   vectordb.Schema
	log      *logger.Logger
}

// NewHandler wires the transport handler. The schema is used by get_schema
// and clean_all.
func NewHandler(searcher Searcher, dogs DogService, vdb vectordb.Service, schema vectordb.Schema, log *logger.Logger) *Handler {
	return &Handler{searcher: searcher, dogs: dogs, vdb: vdb, schema: schema, log: log}
}

// Register mounts every route under /dogfinder.
func (h *Handler) Register(e *echo.Echo) {
	g := e.Group("/dogfinder")
	g.POST("/search_in_found_dogs", h.searchInFoundDogs)
	g.POST("/search_in_lost_dogs", h.searchInLostDogs)
	g.GET("/get_unverified_documents", h.getUnverifiedDocuments)
	g.GET("/get_dog_by_id", h.getDogByID)
	g.GET("/get_dog_by_id_full_details", h.getDogByIDFullDetails)
	g.POST("/add_document", h.addDocument)
	g.POST("/verify_document", h.verifyDocument)
	g.POST("/doc_matched", h.docMatched)
	g.GET("/get_schema", h.getSchema)
	g.DELETE("/clean_all", h.cleanAll)
}

func (h *Handler) searchInFoundDogs(c echo.Context) error {
	return h.runSearch(c, h.searcher.SearchInFoundDogs)
}

func (h *Handler) searchInLostDogs(c echo.Context) error {
	return h.runSearch(c, h.searcher.SearchInLostDogs)
}

func (h *Handler) runSearch(c echo.Context, fn func(context.Context, *search.Request) ([]vectordb.Record, error)) error {
	var req search.Request
	if err := c.Bind(&req); err != nil {
		return h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}

	records, err := fn(c.Request().Context(), &req)
	if err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success(
		fmt.Sprintf("Queried %d results from the vectordb", len(records)),
		ResultSet{Total: len(records), Results: records},
	))
}

func (h *Handler) getUnverifiedDocuments(c echo.Context) error {
	records, err := h.searcher.GetUnverifiedDocuments(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success(
		fmt.Sprintf("Queried %d results from the vectordb", len(records)),
		ResultSet{Total: len(records), Results: records},
	))
}

func (h *Handler) getDogByID(c echo.Context) error {
	dogID, err := dogIDParam(c)
	if err != nil {
		return h.respondError(c, err)
	}
	dog, err := h.dogs.GetDogWithImagesByID(c.Request().Context(), dogID)
	if err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success("Queried dog from the database", map[string]any{
		"results": toDogView(dog),
	}))
}

func (h *Handler) getDogByIDFullDetails(c echo.Context) error {
	dogID, err := dogIDParam(c)
	if err != nil {
		return h.respondError(c, err)
	}
	dog, err := h.dogs.GetDogWithImagesByID(c.Request().Context(), dogID)
	if err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success("Queried dog from the database", map[string]any{
		"results": toDogFullDetailsView(dog),
	}))
}

func (h *Handler) addDocument(c echo.Context) error {
	var req DogAddRequest
	if err := c.Bind(&req); err != nil {
		return h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}

	dog, err := req.toDog()
	if err != nil {
		return h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}

	dog, err = h.dogs.AddDogWithImages(c.Request().Context(), dog, req.Base64Images)
	if err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success("Added documents to the vectordb", toDogView(dog)))
}

func (h *Handler) verifyDocument(c echo.Context) error {
	dogID, err := dogIDParam(c)
	if err != nil {
		return h.respondError(c, err)
	}
	if err := h.dogs.VerifyDog(c.Request().Context(), dogID); err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success("Verified document in the vectordb", nil))
}

func (h *Handler) docMatched(c echo.Context) error {
	var req DogMatchedRequest
	if err := c.Bind(&req); err != nil {
		return h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	if err := h.dogs.UpdateIsMatched(c.Request().Context(), req.DogID, true); err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success("Dog marked as matched", nil))
}

func (h *Handler) getSchema(c echo.Context) error {
	collection := c.QueryParam("class_name")
	if collection == "" {
		collection = h.schema.Collection
	}
	info, err := h.vdb.GetSchema(c.Request().Context(), collection)
	if err != nil {
		return h.respondError(c, err)
	}
	return respond(c, success("Queried schema from the vectordb", info))
}

func (h *Handler) cleanAll(c echo.Context) error {
	result := h.vdb.Wipe(c.Request().Context(), h.schema)
	if !result.Success {
		return respond(c, failure(fmt.Errorf("%w: %s", vectordb.ErrBackend, result.Message)))
	}
	return respond(c, success("All documents were deleted from the vectordb", nil))
}

func dogIDParam(c echo.Context) (int64, error) {
	raw := c.QueryParam("dogId")
	dogID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid dogId %q", errBadRequest, raw)
	}
	return dogID, nil
}

func (h *Handler) respondError(c echo.Context, err error) error {
	resp := failure(err)
	if resp.StatusCode >= 500 {
		h.log.Error("request failed", err, map[string]any{"path": c.Path()})
	} else {
		h.log.Warn("request rejected", map[string]any{"path": c.Path(), "error": err.Error()})
	}
	return respond(c, resp)
}

// respond writes the envelope; the HTTP status always mirrors the envelope's
// status_code field.
func respond(c echo.Context, resp APIResponse) error {
	return c.JSON(resp.StatusCode, resp)
}
