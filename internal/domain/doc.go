// Package domain defines the core business entities of the adoption
// platform (users, pets, adoptions) and their validation rules.
package domain
