// Package session derives the per-user storage key for attendance data
// from the current sign-in state.
package session

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

const (
	keyPrefix = "@attendance_records_"

	// LegacyStorageKey is the unscoped key older app versions wrote all
	// attendance data under, before records were split per user.
	LegacyStorageKey = "@attendance_records"
)

// ErrNoUser is returned when neither a token nor an email is available.
// Callers must not read or write attendance data in that state.
var ErrNoUser = errors.New("session: no authenticated user")

// Accessor provides read-only access to the current sign-in state. It is
// injected so the cache has no hidden dependency on global auth state.
type Accessor interface {
	AccessToken() (string, bool)
	Email() (string, bool)
}

// KeyProvider maps the current user to a stable storage key.
type KeyProvider struct {
	accessor Accessor
}

func NewKeyProvider(accessor Accessor) *KeyProvider {
	return &KeyProvider{accessor: accessor}
}

// StorageKey returns the key all of the current user's records live
// under. The user_id claim from the access token wins over the stored
// email so the key survives an email change; the same user always maps
// to the same key.
func (p *KeyProvider) StorageKey() (string, error) {
	if token, ok := p.accessor.AccessToken(); ok && token != "" {
		if id, ok := userIDClaim(token); ok {
			return keyPrefix + id, nil
		}
	}
	if email, ok := p.accessor.Email(); ok && email != "" {
		return keyPrefix + email, nil
	}
	return "", ErrNoUser
}

// userIDClaim decodes the token payload without verifying the signature.
// The claim only scopes local storage, so verification buys nothing here,
// and a decode failure must not block punch recording.
func userIDClaim(token string) (string, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Printf("session: token decode failed, falling back to email: %v", err)
		return "", false
	}

	switch id := claims["user_id"].(type) {
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case string:
		if id != "" {
			return id, true
		}
	case nil:
	default:
		return fmt.Sprintf("%v", id), true
	}
	return "", false
}
