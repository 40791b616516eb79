package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	memory *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.memory = New()
	s.Storage = s.memory
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestReturnedAnalysisIsACopy() {
	s.Require().NoError(s.memory.SaveAnalysis(s.Ctx, &model.Analysis{
		Key:         "k",
		Suggestions: []model.Suggestion{{Word: "ab"}},
	}))

	got, err := s.memory.GetAnalysis(s.Ctx, "k")
	s.Require().NoError(err)
	got.Suggestions[0].Word = "zz"

	again, err := s.memory.GetAnalysis(s.Ctx, "k")
	s.Require().NoError(err)
	s.Equal("ab", again.Suggestions[0].Word)
}
