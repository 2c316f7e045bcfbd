package dogstore

import (
	"time"

	"gorm.io/gorm"
)

// DogType distinguishes reports about dogs that were found from reports
// about dogs that are lost.
type DogType string

const (
	DogTypeFound DogType = "found"
	DogTypeLost  DogType = "lost"
)

// DogSex is the reported sex of the dog.
type DogSex string

const (
	DogSexMale   DogSex = "male"
	DogSexFemale DogSex = "female"
)

// Dog is the relational record of a lost/found report. The searchable copy of
// these attributes lives in the vector store payload; this table is the
// source of truth for moderation and contact details.
type Dog struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Type       DogType `gorm:"size:16;not null;index" json:"type"`
	IsMatched  bool    `gorm:"not null;default:false" json:"isMatched"`
	IsVerified bool    `gorm:"not null;default:false" json:"isVerified"`

	ContactName    string `gorm:"size:256" json:"contactName,omitempty"`
	ContactPhone   string `gorm:"size:64" json:"contactPhone,omitempty"`
	ContactEmail   string `gorm:"size:256" json:"contactEmail,omitempty"`
	ContactAddress string `gorm:"size:512" json:"contactAddress,omitempty"`

	Name         string `gorm:"size:256" json:"name,omitempty"`
	Breed        string `gorm:"size:256" json:"breed,omitempty"`
	Color        string `gorm:"size:128" json:"color,omitempty"`
	Size         string `gorm:"size:64" json:"size,omitempty"`
	Sex          DogSex `gorm:"size:16" json:"sex,omitempty"`
	ChipNumber   string `gorm:"size:64;index" json:"chipNumber,omitempty"`
	Location     string `gorm:"size:512" json:"location,omitempty"`
	ExtraDetails string `gorm:"type:text" json:"extraDetails,omitempty"`

	DogFoundOn *time.Time `json:"dogFoundOn,omitempty"`

	Images []DogImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
}

// DogImage holds one normalized photo of a dog. Base64 holds the resized
// JPEG; the original upload is archived in the photo store under the image ID.
type DogImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"-"`

	DogID       int64  `gorm:"not null;index" json:"-"`
	Base64      string `gorm:"type:text;not null" json:"base64Image"`
	ContentType string `gorm:"size:64;not null" json:"imageContentType"`
}
