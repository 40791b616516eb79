package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/wordcapture/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidAPIKey = errors.New("invalid api key")
	ErrMalformedKey  = errors.New("api key entry must be name:bcrypt-hash")
)

// Client identifies the holder of a verified API key
type Client struct {
	Name string
}

// APIKey is a named bcrypt hash of a key accepted by the server
type APIKey struct {
	Name string
	Hash string
}

// ParseAPIKey parses a "name:hash" config entry
func ParseAPIKey(entry string) (APIKey, error) {
	name, hash, ok := strings.Cut(entry, ":")
	if !ok || name == "" || hash == "" {
		return APIKey{}, ErrMalformedKey
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return APIKey{}, fmt.Errorf("%w: %s", ErrMalformedKey, name)
	}
	return APIKey{Name: name, Hash: hash}, nil
}

// HashKey returns the bcrypt hash to configure for a new key
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Config holds configuration for the auth service
type Config struct {
	Keys []APIKey
	// CacheTTL is how long a verified key skips bcrypt comparison
	CacheTTL time.Duration
}

// DefaultConfig returns default auth configuration, with auth disabled
func DefaultConfig() Config {
	return Config{
		CacheTTL: 5 * time.Minute,
	}
}

type cachedKey struct {
	client    Client
	expiresAt time.Time
}

// Service verifies API keys
type Service struct {
	keys  []APIKey
	ttl   time.Duration
	clock clock.Clock

	mu       sync.RWMutex
	verified map[uint64]cachedKey
}

// New creates a new AuthService
func New(clock clock.Clock, cfg Config) *Service {
	return &Service{
		keys:     cfg.Keys,
		ttl:      cfg.CacheTTL,
		clock:    clock,
		verified: make(map[uint64]cachedKey),
	}
}

// Enabled reports whether any keys are configured. Without keys every
// request is allowed.
func (s *Service) Enabled() bool {
	return len(s.keys) > 0
}

// ValidateKey checks a presented key against the configured hashes
func (s *Service) ValidateKey(key string) (*Client, error) {
	if key == "" {
		return nil, ErrInvalidAPIKey
	}

	digest := xxhash.Sum64String(key)
	now := s.clock.Now()

	s.mu.RLock()
	cached, ok := s.verified[digest]
	s.mu.RUnlock()
	if ok && now.Before(cached.expiresAt) {
		client := cached.client
		return &client, nil
	}

	for _, k := range s.keys {
		if bcrypt.CompareHashAndPassword([]byte(k.Hash), []byte(key)) == nil {
			client := Client{Name: k.Name}
			if s.ttl > 0 {
				s.mu.Lock()
				s.verified[digest] = cachedKey{client: client, expiresAt: now.Add(s.ttl)}
				s.mu.Unlock()
			}
			return &client, nil
		}
	}
	return nil, ErrInvalidAPIKey
}

// CleanExpired removes expired cache entries (call periodically)
func (s *Service) CleanExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for digest, cached := range s.verified {
		if !now.Before(cached.expiresAt) {
			delete(s.verified, digest)
		}
	}
}
