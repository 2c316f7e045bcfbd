package search

import "github.com/AlexPavAi/dog-finder/internal/dogstore"

// DefaultTop is the result count used when the caller does not ask for one.
const DefaultTop = 10

// Request carries one similarity search. Optional attributes are pointers;
// nil means "do not filter on this attribute".
type Request struct {
	Type       *dogstore.DogType `json:"type,omitempty"`
	Breed      *string           `json:"breed,omitempty"`
	Sex        *dogstore.DogSex  `json:"sex,omitempty"`
	Size       *string           `json:"size,omitempty"`
	Color      *string           `json:"color,omitempty"`
	ChipNumber *string           `json:"chipNumber,omitempty"`
	Name       *string           `json:"name,omitempty"`
	Location   *string           `json:"location,omitempty"`

	// IsVerified is accepted for API compatibility but contributes no
	// predicate: unverified entries stay searchable until moderation
	// verifies them.
	IsVerified *bool `json:"isVerified,omitempty"`

	Base64Image      string   `json:"base64Image"`
	Top              int      `json:"top,omitempty"`
	ReturnProperties []string `json:"return_properties,omitempty"`
}

// limit resolves the effective result count.
func (r *Request) limit() int {
	if r.Top > 0 {
		return r.Top
	}
	return DefaultTop
}

// properties resolves the payload fields to return.
func (r *Request) properties() []string {
	if len(r.ReturnProperties) > 0 {
		return r.ReturnProperties
	}
	return dogstore.DefaultReturnProperties
}
