// Package session persists the authenticated user's bearer token and email
// between CLI invocations, and derives login state from the token's expiry.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys, matching the wire-level session contract.
const (
	tokenKey = "auth_token"
	emailKey = "email"
)

// Store is a file-backed key-value store holding the current session.
// The file lives in the config directory and survives between runs; it is
// only removed by Logout. An expired token stays stored until overwritten
// or logged out - only IsLoggedIn treats it as invalid.
type Store struct {
	path string
}

// NewStore creates a session store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// SaveToken writes the token unconditionally. The email is written only
// when non-empty; a previously stored email is preserved when omitted.
func (s *Store) SaveToken(token, email string) error {
	values := s.read()
	values[tokenKey] = token
	if email != "" {
		values[emailKey] = email
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" if none is stored.
// No validation is performed.
func (s *Store) Token() string {
	return s.read()[tokenKey]
}

// Email returns the stored user email, or "" if none is stored.
func (s *Store) Email() string {
	return s.read()[emailKey]
}

// IsLoggedIn reports whether a token is stored and its exp claim is still
// in the future. The signature is not verified; a token that cannot be
// parsed, or that carries no exp claim, counts as logged out. Never errors.
func (s *Store) IsLoggedIn() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now())
}

// Logout removes both the token and the email.
func (s *Store) Logout() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// read loads the session file. A missing or unreadable file yields an
// empty map, so raw reads never fail.
func (s *Store) read() map[string]string {
	values := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return values
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return make(map[string]string)
	}
	return values
}
