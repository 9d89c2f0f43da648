// Package session holds the bearer credential and admin flag in durable
// storage. Absence of the token means anonymous.
package session

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kovawear/kova/internal/storage"
)

// KV is the slice of the durable store the session needs.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store owns the session credentials for this process.
type Store struct {
	mu      sync.Mutex
	kv      KV
	token   string
	isAdmin bool
	email   string
}

// New builds a store rehydrated from durable storage.
func New(kv KV) *Store {
	s := &Store{kv: kv}
	s.token, _ = kv.Get(storage.KeyToken)
	admin, _ := kv.Get(storage.KeyIsAdmin)
	s.isAdmin = admin == "true"
	s.email, _ = kv.Get(storage.KeyEmail)
	return s
}

// Token returns the bearer credential, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAdmin reports whether the authenticated user holds the admin flag.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin
}

// Email returns the display email captured at login.
func (s *Store) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Authenticated reports whether a credential is present.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// SetCredentials records a successful login.
func (s *Store) SetCredentials(token string, isAdmin bool, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.isAdmin = isAdmin
	s.email = email

	if err := s.kv.Set(storage.KeyToken, token); err != nil {
		log.Warn().Err(err).Msg("session: write token")
	}
	admin := "false"
	if isAdmin {
		admin = "true"
	}
	if err := s.kv.Set(storage.KeyIsAdmin, admin); err != nil {
		log.Warn().Err(err).Msg("session: write admin flag")
	}
	if err := s.kv.Set(storage.KeyEmail, email); err != nil {
		log.Warn().Err(err).Msg("session: write email")
	}
}

// Clear invalidates the session, deleting all credential keys. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.isAdmin = false
	s.email = ""

	for _, key := range []string{storage.KeyToken, storage.KeyIsAdmin, storage.KeyEmail} {
		if err := s.kv.Delete(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("session: delete key")
		}
	}
}
