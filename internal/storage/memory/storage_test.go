package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foundry/internal/storage"
	"github.com/mcoot/foundry/internal/testutil"
)

func TestStorageContract(t *testing.T) {
	suite.Run(t, &testutil.StorageContractSuite{
		NewStorage: func(t *testing.T) storage.Storage {
			return New()
		},
	})
}

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetReturnsCopy() {
	s.Require().NoError(s.storage.Set(s.ctx, "k", []byte("abc")))

	got, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	got[0] = 'z'

	again, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("abc", string(again))
}

func (s *StorageSuite) TestSetCopiesInput() {
	value := []byte("abc")
	s.Require().NoError(s.storage.Set(s.ctx, "k", value))
	value[0] = 'z'

	got, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("abc", string(got))
}

func (s *StorageSuite) TestKeys() {
	s.Equal(0, s.storage.Keys())
	s.Require().NoError(s.storage.Set(s.ctx, "a", []byte("1")))
	s.Require().NoError(s.storage.Set(s.ctx, "b", []byte("2")))
	s.Equal(2, s.storage.Keys())
	s.Require().NoError(s.storage.Delete(s.ctx, "a"))
	s.Equal(1, s.storage.Keys())
}
