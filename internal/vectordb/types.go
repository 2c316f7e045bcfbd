package vectordb

// Record is a single search result in backend ranking order.
type Record struct {
	// ID is the backend identifier of the matched document.
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine).
	Score float32 `json:"score"`

	// Properties holds the requested payload fields.
	Properties map[string]any `json:"properties"`
}

// Document is the input for inserting a vector with its payload.
type Document struct {
	ID         string         `json:"id"`
	Vector     []float32      `json:"vector"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Property describes one payload field of a collection schema.
type Property struct {
	Name        string `json:"name"`
	DataType    string `json:"dataType"`
	Description string `json:"description,omitempty"`

	// Filterable marks fields the backend should index for predicate
	// filtering.
	Filterable bool `json:"filterable,omitempty"`
}

// Schema describes a collection: its name, embedding dimension, and payload
// fields.
type Schema struct {
	Collection string     `json:"collection"`
	VectorSize uint64     `json:"vectorSize"`
	Properties []Property `json:"properties"`
}

// CollectionInfo is live metadata about a collection.
type CollectionInfo struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	VectorSize int    `json:"vectorSize"`
	Distance   string `json:"distance"`
	Points     uint64 `json:"points"`
}

// WipeResult reports the outcome of a Wipe call.
type WipeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Payload data types understood by adapters.
const (
	DataTypeText    = "text"
	DataTypeBoolean = "boolean"
	DataTypeNumber  = "number"
	DataTypeBlob    = "blob"
	DataTypeDate    = "date"
)
