package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/wordcapture/internal/dependencies/mocks"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	hash    string
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupSuite() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.hash = string(hash)
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	cfg := DefaultConfig()
	cfg.Keys = []APIKey{{Name: "ci", Hash: s.hash}}
	s.service = New(s.clock, cfg)
}

func (s *ServiceSuite) TestDisabledWithoutKeys() {
	s.False(New(s.clock, DefaultConfig()).Enabled())
	s.True(s.service.Enabled())
}

func (s *ServiceSuite) TestValidateKeySucceeds() {
	client, err := s.service.ValidateKey("secret-key")
	s.Require().NoError(err)
	s.Equal("ci", client.Name)
}

func (s *ServiceSuite) TestValidateKeyRejectsWrongKey() {
	_, err := s.service.ValidateKey("other-key")
	s.ErrorIs(err, ErrInvalidAPIKey)

	_, err = s.service.ValidateKey("")
	s.ErrorIs(err, ErrInvalidAPIKey)
}

func (s *ServiceSuite) TestVerifiedKeyIsCached() {
	_, err := s.service.ValidateKey("secret-key")
	s.Require().NoError(err)

	// dropping the configured keys leaves only the cache
	s.service.keys = nil
	client, err := s.service.ValidateKey("secret-key")
	s.Require().NoError(err)
	s.Equal("ci", client.Name)

	s.clock.Advance(DefaultConfig().CacheTTL)
	_, err = s.service.ValidateKey("secret-key")
	s.ErrorIs(err, ErrInvalidAPIKey)
}

func (s *ServiceSuite) TestCleanExpired() {
	_, err := s.service.ValidateKey("secret-key")
	s.Require().NoError(err)
	s.Len(s.service.verified, 1)

	s.clock.Advance(time.Hour)
	s.service.CleanExpired()
	s.Empty(s.service.verified)
}

func (s *ServiceSuite) TestParseAPIKey() {
	key, err := ParseAPIKey("ci:" + s.hash)
	s.Require().NoError(err)
	s.Equal("ci", key.Name)
	s.Equal(s.hash, key.Hash)

	_, err = ParseAPIKey("no-separator")
	s.ErrorIs(err, ErrMalformedKey)

	_, err = ParseAPIKey("ci:not-a-hash")
	s.ErrorIs(err, ErrMalformedKey)
}

func (s *ServiceSuite) TestHashKeyRoundTrip() {
	hash, err := HashKey("fresh")
	s.Require().NoError(err)

	service := New(s.clock, Config{Keys: []APIKey{{Name: "new", Hash: hash}}})
	client, err := service.ValidateKey("fresh")
	s.Require().NoError(err)
	s.Equal("new", client.Name)
}
