package domain

import (
	"errors"
	"time"
)

// Common user validation errors
var (
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The upper bound is bcrypt's practical input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Role describes the access level of a user.
type Role string

// Supported roles. New users always start as RoleUser.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is part of the enum.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered user of the adoption platform.
// The password is stored only as an irreversible bcrypt hash; the
// plaintext never leaves the registration/login request path.
type User struct {
	ID             ID        `bson:"_id,omitempty" json:"id"`
	FirstName      string    `bson:"first_name"    json:"first_name"`
	LastName       string    `bson:"last_name"     json:"last_name"`
	Email          string    `bson:"email"         json:"email"`
	HashedPassword string    `bson:"password"      json:"-"` // Never expose the hash
	Role           Role      `bson:"role"          json:"role"`
	Pets           []ID      `bson:"pets"          json:"pets"`
	CreatedAt      time.Time `bson:"created_at"    json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"    json:"updated_at"`
}

// NewUser creates a new User with role "user" and an empty owned-pets list.
// The caller must supply an already-hashed password; hashing lives in the
// auth service so the domain never sees plaintext credentials.
// Returns an error if validation fails.
func NewUser(firstName, lastName, email, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           RoleUser,
		Pets:           []ID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User has valid data.
// Email format validation happens at the request boundary (validator tags);
// here we only enforce structural invariants.
func (u *User) Validate() error {
	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// FullName returns the display name used in populated adoption projections.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// OwnsPet reports whether the pet already appears in the user's owned-pets list.
func (u *User) OwnsPet(petID ID) bool {
	for _, id := range u.Pets {
		if id == petID {
			return true
		}
	}
	return false
}

// ValidatePassword checks a plaintext password against the length policy.
// Used before hashing at registration time.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
