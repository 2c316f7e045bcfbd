package httpapi

import (
	"errors"
	"net/http"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/embedding"
	"github.com/AlexPavAi/dog-finder/internal/filter"
	"github.com/AlexPavAi/dog-finder/internal/imaging"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

// APIResponse is the uniform envelope every endpoint returns, success and
// failure alike.
type APIResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Meta       any    `json:"meta,omitempty"`
}

// ResultSet is the Data shape of list endpoints.
type ResultSet struct {
	Total   int `json:"total"`
	Results any `json:"results"`
}

// errBadRequest marks request decoding failures from the transport itself.
var errBadRequest = errors.New("httpapi: malformed request")

// mapError is the single place where typed core errors become HTTP statuses.
// Caller mistakes map to 4xx, infrastructure failures to 5xx; anything
// unrecognized is a 500.
func mapError(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, imaging.ErrDecode),
		errors.Is(err, filter.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, dogstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, embedding.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, vectordb.ErrBackend):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// failure renders an error through the envelope with an empty result set.
// The HTTP status is carried inside the envelope as well.
func failure(err error) APIResponse {
	status := mapError(err)
	return APIResponse{
		StatusCode: status,
		Message:    err.Error(),
		Data:       ResultSet{Total: 0, Results: []any{}},
	}
}

// success renders a 200 envelope.
func success(message string, data any) APIResponse {
	return APIResponse{
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	}
}
