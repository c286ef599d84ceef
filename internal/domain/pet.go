package domain

import (
	"errors"
	"time"
)

// Common pet validation errors
var (
	ErrEmptyPetName   = errors.New("pet name cannot be empty")
	ErrInvalidSpecies = errors.New("invalid species")
	ErrInvalidGender  = errors.New("invalid gender")
	ErrInvalidSize    = errors.New("invalid size")
	ErrInvalidStatus  = errors.New("invalid adoption status")
	ErrNegativeAge    = errors.New("age cannot be negative")
)

// Species enumerates the kinds of adoptable animals.
type Species string

const (
	SpeciesPerro  Species = "Perro"
	SpeciesGato   Species = "Gato"
	SpeciesConejo Species = "Conejo"
	SpeciesOtro   Species = "Otro"
)

// Valid reports whether the species is part of the enum.
func (s Species) Valid() bool {
	switch s {
	case SpeciesPerro, SpeciesGato, SpeciesConejo, SpeciesOtro:
		return true
	}
	return false
}

// Gender enumerates pet genders.
type Gender string

const (
	GenderMacho       Gender = "Macho"
	GenderHembra      Gender = "Hembra"
	GenderDesconocido Gender = "Desconocido"
)

// Valid reports whether the gender is part of the enum.
func (g Gender) Valid() bool {
	switch g {
	case GenderMacho, GenderHembra, GenderDesconocido:
		return true
	}
	return false
}

// Size enumerates pet sizes.
type Size string

const (
	SizePequeno Size = "Pequeño"
	SizeMediano Size = "Mediano"
	SizeGrande  Size = "Grande"
)

// Valid reports whether the size is part of the enum.
func (s Size) Valid() bool {
	switch s {
	case SizePequeno, SizeMediano, SizeGrande:
		return true
	}
	return false
}

// PetStatus enumerates the adoption lifecycle of a pet.
// A pet moves to StatusAdoptado exclusively through the adoption workflow
// (or an administrative update) and then has exactly one Adoption record.
type PetStatus string

const (
	StatusDisponible PetStatus = "Disponible"
	StatusReservado  PetStatus = "Reservado"
	StatusAdoptado   PetStatus = "Adoptado"
)

// Valid reports whether the status is part of the enum.
func (s PetStatus) Valid() bool {
	switch s {
	case StatusDisponible, StatusReservado, StatusAdoptado:
		return true
	}
	return false
}

// Defaults applied when optional pet fields are missing on create.
const (
	DefaultBreed  = "Mestizo"
	DefaultGender = GenderDesconocido
	DefaultSize   = SizeMediano
	DefaultStatus = StatusDisponible
)

// Location is an optional free-form place record for a pet.
type Location struct {
	City  string `bson:"city,omitempty"  json:"city,omitempty"`
	State string `bson:"state,omitempty" json:"state,omitempty"`
}

// Pet represents an adoptable animal.
type Pet struct {
	ID          ID        `bson:"_id,omitempty"      json:"id"`
	Name        string    `bson:"name"               json:"name"`
	Species     Species   `bson:"species"            json:"species"`
	Breed       string    `bson:"breed"              json:"breed"`
	Age         int       `bson:"age"                json:"age"`
	Gender      Gender    `bson:"gender"             json:"gender"`
	Size        Size      `bson:"size"               json:"size"`
	Description string    `bson:"description"        json:"description"`
	Status      PetStatus `bson:"status"             json:"status"`
	Location    *Location `bson:"location,omitempty" json:"location,omitempty"`
	Images      []string  `bson:"images,omitempty"   json:"images,omitempty"`
	CreatedAt   time.Time `bson:"created_at"         json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"         json:"updated_at"`
}

// Validate checks that the Pet has valid data.
func (p *Pet) Validate() error {
	if p.Name == "" {
		return ErrEmptyPetName
	}
	if !p.Species.Valid() {
		return ErrInvalidSpecies
	}
	if p.Age < 0 {
		return ErrNegativeAge
	}
	if !p.Gender.Valid() {
		return ErrInvalidGender
	}
	if !p.Size.Valid() {
		return ErrInvalidSize
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Adoptable reports whether the pet can still be claimed by an adoption.
func (p *Pet) Adoptable() bool {
	return p.Status != StatusAdoptado
}
