package dogstore

import "github.com/AlexPavAi/dog-finder/internal/vectordb"

// Collection is the vector store collection holding one point per dog image.
const Collection = "dog"

// Payload field names shared between the indexer, the filter builder, and the
// search API. They match the JSON attribute names clients see.
const (
	FieldBreed            = "breed"
	FieldSize             = "size"
	FieldColor            = "color"
	FieldSex              = "sex"
	FieldExtraDetails     = "extraDetails"
	FieldLocation         = "location"
	FieldType             = "type"
	FieldImageBase64      = "imageBase64"
	FieldIsMatched        = "isMatched"
	FieldDogID            = "dogId"
	FieldDogImageID       = "dogImageId"
	FieldContactName      = "contactName"
	FieldContactPhone     = "contactPhone"
	FieldContactEmail     = "contactEmail"
	FieldContactAddress   = "contactAddress"
	FieldIsVerified       = "isVerified"
	FieldImageContentType = "imageContentType"
	FieldChipNumber       = "chipNumber"
	FieldName             = "name"
)

// DefaultReturnProperties is the payload subset returned by search when the
// caller does not ask for specific properties. Contact details are excluded;
// they are served from the relational store to authorized callers only.
var DefaultReturnProperties = []string{
	FieldType,
	FieldBreed,
	FieldSize,
	FieldColor,
	FieldSex,
	FieldName,
	FieldChipNumber,
	FieldLocation,
	FieldExtraDetails,
	FieldDogID,
	FieldDogImageID,
	FieldImageBase64,
	FieldImageContentType,
	FieldIsVerified,
}

// VectorSchema describes the dog collection for schema creation: one point
// per image, cosine similarity over the image embedding, payload indexes on
// every field the filter builder can touch.
func VectorSchema(vectorSize uint64) vectordb.Schema {
	return vectordb.Schema{
		Collection: Collection,
		VectorSize: vectorSize,
		Properties: []vectordb.Property{
			{Name: FieldBreed, DataType: vectordb.DataTypeText, Description: "Name of dog breed", Filterable: true},
			{Name: FieldSize, DataType: vectordb.DataTypeText, Description: "The dog's size", Filterable: true},
			{Name: FieldColor, DataType: vectordb.DataTypeText, Description: "The dog's color", Filterable: true},
			{Name: FieldSex, DataType: vectordb.DataTypeText, Description: "The dog's sex", Filterable: true},
			{Name: FieldExtraDetails, DataType: vectordb.DataTypeText, Description: "Free-text details identifying the dog"},
			{Name: FieldLocation, DataType: vectordb.DataTypeText, Description: "Where the dog was lost or found", Filterable: true},
			{Name: FieldType, DataType: vectordb.DataTypeText, Description: "found or lost", Filterable: true},
			{Name: FieldImageBase64, DataType: vectordb.DataTypeBlob, Description: "Normalized image in base64"},
			{Name: FieldIsMatched, DataType: vectordb.DataTypeBoolean, Description: "Was the dog reunited", Filterable: true},
			{Name: FieldDogID, DataType: vectordb.DataTypeNumber, Description: "Relational dog id", Filterable: true},
			{Name: FieldDogImageID, DataType: vectordb.DataTypeNumber, Description: "Relational dog image id", Filterable: true},
			{Name: FieldContactName, DataType: vectordb.DataTypeText, Description: "Contact name"},
			{Name: FieldContactPhone, DataType: vectordb.DataTypeText, Description: "Contact phone"},
			{Name: FieldContactEmail, DataType: vectordb.DataTypeText, Description: "Contact email"},
			{Name: FieldContactAddress, DataType: vectordb.DataTypeText, Description: "Contact address"},
			{Name: FieldIsVerified, DataType: vectordb.DataTypeBoolean, Description: "Moderation approved", Filterable: true},
			{Name: FieldImageContentType, DataType: vectordb.DataTypeText, Description: "Content type of the stored image"},
			{Name: FieldChipNumber, DataType: vectordb.DataTypeText, Description: "Chip number if known", Filterable: true},
			{Name: FieldName, DataType: vectordb.DataTypeText, Description: "Dog name if known", Filterable: true},
		},
	}
}
