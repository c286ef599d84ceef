package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function.
// Intended for tests that need deterministic issue and expiry times.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
