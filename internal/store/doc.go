// Package store defines the persistence interfaces and error taxonomy used
// by the service layer. Implementations live under internal/platform; the
// store is the single source of truth, and callers re-read rather than cache.
package store
