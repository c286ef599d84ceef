package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the identifier type shared by all stored entities. Identifiers are
// generated by the store (MongoDB ObjectIDs) and travel over the wire as
// 24-character hex strings.
type ID = primitive.ObjectID

// NilID is the zero identifier.
var NilID = primitive.NilObjectID

// NewID generates a fresh identifier.
func NewID() ID {
	return primitive.NewObjectID()
}

// ParseID parses a hex string into an ID.
// Returns ErrInvalidID when the string is not a valid 24-character hex ObjectID,
// so callers can map it to a 400 rather than a 404.
func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return NilID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return oid, nil
}
