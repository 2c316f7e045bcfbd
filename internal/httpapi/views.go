package httpapi

import (
	"time"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
)

// DogAddRequest is the add_document payload. Empty optional strings mean
// "not provided".
type DogAddRequest struct {
	Type         dogstore.DogType `json:"type"`
	Base64Images []string         `json:"base64Images"`

	ContactName    string `json:"contactName,omitempty"`
	ContactPhone   string `json:"contactPhone,omitempty"`
	ContactEmail   string `json:"contactEmail,omitempty"`
	ContactAddress string `json:"contactAddress,omitempty"`

	Name         string `json:"name,omitempty"`
	Breed        string `json:"breed,omitempty"`
	Color        string `json:"color,omitempty"`
	Size         string `json:"size,omitempty"`
	Sex          string `json:"sex,omitempty"`
	ChipNumber   string `json:"chipNumber,omitempty"`
	Location     string `json:"location,omitempty"`
	ExtraDetails string `json:"extraDetails,omitempty"`

	DogFoundOn string `json:"dogFoundOn,omitempty"` // YYYY-MM-DD
}

// toDog maps the request onto the relational model.
func (r *DogAddRequest) toDog() (*dogstore.Dog, error) {
	dog := &dogstore.Dog{
		Type:           r.Type,
		ContactName:    r.ContactName,
		ContactPhone:   r.ContactPhone,
		ContactEmail:   r.ContactEmail,
		ContactAddress: r.ContactAddress,
		Name:           r.Name,
		Breed:          r.Breed,
		Color:          r.Color,
		Size:           r.Size,
		Sex:            dogstore.DogSex(r.Sex),
		ChipNumber:     r.ChipNumber,
		Location:       r.Location,
		ExtraDetails:   r.ExtraDetails,
	}
	if r.DogFoundOn != "" {
		d, err := time.Parse("2006-01-02", r.DogFoundOn)
		if err != nil {
			return nil, err
		}
		dog.DogFoundOn = &d
	}
	return dog, nil
}

// DogMatchedRequest is the doc_matched payload.
type DogMatchedRequest struct {
	DogID int64 `json:"dogId"`
}

// DogImageView is one stored image in a dog response.
type DogImageView struct {
	ID          int64  `json:"id"`
	Base64Image string `json:"base64Image"`
	ContentType string `json:"imageContentType"`
}

// DogView is the public dog record: attributes and images, no contact
// details.
type DogView struct {
	ID         int64            `json:"id"`
	Type       dogstore.DogType `json:"type"`
	IsMatched  bool             `json:"isMatched"`
	IsVerified bool             `json:"isVerified"`

	Name         string `json:"name,omitempty"`
	Breed        string `json:"breed,omitempty"`
	Color        string `json:"color,omitempty"`
	Size         string `json:"size,omitempty"`
	Sex          string `json:"sex,omitempty"`
	ChipNumber   string `json:"chipNumber,omitempty"`
	Location     string `json:"location,omitempty"`
	ExtraDetails string `json:"extraDetails,omitempty"`
	DogFoundOn   string `json:"dogFoundOn,omitempty"`

	Images []DogImageView `json:"images"`
}

// DogFullDetailsView adds the contact fields for authorized callers.
type DogFullDetailsView struct {
	DogView
	ContactName    string `json:"contactName,omitempty"`
	ContactPhone   string `json:"contactPhone,omitempty"`
	ContactEmail   string `json:"contactEmail,omitempty"`
	ContactAddress string `json:"contactAddress,omitempty"`
}

func toDogView(dog *dogstore.Dog) DogView {
	v := DogView{
		ID:           dog.ID,
		Type:         dog.Type,
		IsMatched:    dog.IsMatched,
		IsVerified:   dog.IsVerified,
		Name:         dog.Name,
		Breed:        dog.Breed,
		Color:        dog.Color,
		Size:         dog.Size,
		Sex:          string(dog.Sex),
		ChipNumber:   dog.ChipNumber,
		Location:     dog.Location,
		ExtraDetails: dog.ExtraDetails,
		Images:       make([]DogImageView, 0, len(dog.Images)),
	}
	if dog.DogFoundOn != nil {
		v.DogFoundOn = dog.DogFoundOn.Format("2006-01-02")
	}
	for _, img := range dog.Images {
		v.Images = append(v.Images, DogImageView{
			ID:          img.ID,
			Base64Image: img.Base64,
			ContentType: img.ContentType,
		})
	}
	return v
}

func toDogFullDetailsView(dog *dogstore.Dog) DogFullDetailsView {
	return DogFullDetailsView{
		DogView:        toDogView(dog),
		ContactName:    dog.ContactName,
		ContactPhone:   dog.ContactPhone,
		ContactEmail:   dog.ContactEmail,
		ContactAddress: dog.ContactAddress,
	}
}
