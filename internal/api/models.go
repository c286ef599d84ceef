package api

import (
	"bytes"
	"strconv"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/service"
)

// Common request/response structures

// FlexInt is an int that also accepts a quoted JSON number, matching the
// coercion the create path applies to the age field.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserView is the public-safe projection of a user. No password field exists
// on this shape at all.
type UserView struct {
	ID        domain.ID   `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Pets      []domain.ID `json:"pets"`
}

// NewUserView builds the public projection from a domain user.
func NewUserView(user *domain.User) UserView {
	pets := user.Pets
	if pets == nil {
		pets = []domain.ID{}
	}
	return UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Pets:      pets,
	}
}

// RegisterResponse is the envelope for a successful registration.
type RegisterResponse struct {
	Status  string `json:"status"`
	Payload string `json:"payload"` // The new user's id
}

// LoginResponse is the envelope for a successful login.
type LoginResponse struct {
	Status string   `json:"status"`
	Token  string   `json:"token"`
	User   UserView `json:"user"`
}

// CurrentResponse is the envelope for the current-session endpoint.
type CurrentResponse struct {
	Status string   `json:"status"`
	Data   UserView `json:"data"`
}

// UserListResponse is the envelope for the user directory listing.
type UserListResponse struct {
	Status  string     `json:"status"`
	Payload []UserView `json:"payload"`
	Total   int        `json:"total"`
}

// UserResponse is the envelope for single-user reads.
type UserResponse struct {
	Status  string   `json:"status"`
	Payload UserView `json:"payload"`
}

// CreatePetRequest defines the payload for pet creation. Only name is
// mandatory; the service fills defaults for the rest.
type CreatePetRequest struct {
	Name        string           `json:"name"        validate:"required"`
	Species     domain.Species   `json:"species"     validate:"omitempty,oneof=Perro Gato Conejo Otro"`
	Breed       string           `json:"breed"`
	Age         FlexInt          `json:"age"         validate:"gte=0"`
	Gender      domain.Gender    `json:"gender"      validate:"omitempty,oneof=Macho Hembra Desconocido"`
	Size        domain.Size      `json:"size"        validate:"omitempty,oneof=Pequeño Mediano Grande"`
	Description string           `json:"description"`
	Status      domain.PetStatus `json:"status"      validate:"omitempty,oneof=Disponible Reservado Adoptado"`
	Location    *domain.Location `json:"location"`
	Images      []string         `json:"images"`
}

// UpdatePetRequest defines the payload for partial pet updates. Absent
// fields stay nil and leave the stored value unchanged; anything outside
// this allow-list never reaches the update document.
type UpdatePetRequest struct {
	Name        *string           `json:"name"`
	Species     *domain.Species   `json:"species"     validate:"omitempty,oneof=Perro Gato Conejo Otro"`
	Breed       *string           `json:"breed"`
	Age         *FlexInt          `json:"age"`
	Gender      *domain.Gender    `json:"gender"      validate:"omitempty,oneof=Macho Hembra Desconocido"`
	Size        *domain.Size      `json:"size"        validate:"omitempty,oneof=Pequeño Mediano Grande"`
	Description *string           `json:"description"`
	Status      *domain.PetStatus `json:"status"      validate:"omitempty,oneof=Disponible Reservado Adoptado"`
	Location    *domain.Location  `json:"location"`
	Images      []string          `json:"images"`
}

// PetListResponse is the envelope for pet listings.
type PetListResponse struct {
	Status  string       `json:"status"`
	Payload []domain.Pet `json:"payload"`
	Total   int          `json:"total"`
}

// PetResponse is the envelope for single-pet reads and writes.
type PetResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
	Payload domain.Pet `json:"payload"`
}

// AdoptionListResponse is the envelope for adoption listings.
type AdoptionListResponse struct {
	Status  string                      `json:"status"`
	Count   int                         `json:"count"`
	Payload []service.PopulatedAdoption `json:"payload"`
}

// AdoptionResponse is the envelope for single adoption reads and creation.
type AdoptionResponse struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message,omitempty"`
	Payload service.PopulatedAdoption `json:"payload"`
}

// MockDataResponse reports how many mock documents were inserted.
type MockDataResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
