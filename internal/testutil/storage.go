package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/storage"
)

// StorageContractSuite checks the behaviour every storage backend must share.
// Backends run it with their own constructor.
type StorageContractSuite struct {
	suite.Suite

	NewStorage func(t *testing.T) storage.Storage

	storage storage.Storage
	ctx     context.Context
}

func (s *StorageContractSuite) SetupTest() {
	s.storage = s.NewStorage(s.T())
	s.ctx = context.Background()
}

func (s *StorageContractSuite) TestGetMissingKey() {
	_, err := s.storage.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageContractSuite) TestSetAndGet() {
	s.Require().NoError(s.storage.Set(s.ctx, "foundry_items", []byte(`[{"id":"1"}]`)))

	got, err := s.storage.Get(s.ctx, "foundry_items")
	s.Require().NoError(err)
	s.JSONEq(`[{"id":"1"}]`, string(got))
}

func (s *StorageContractSuite) TestSetOverwrites() {
	s.Require().NoError(s.storage.Set(s.ctx, "k", []byte("first")))
	s.Require().NoError(s.storage.Set(s.ctx, "k", []byte("second")))

	got, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("second", string(got))
}

func (s *StorageContractSuite) TestDelete() {
	s.Require().NoError(s.storage.Set(s.ctx, "k", []byte("v")))
	s.Require().NoError(s.storage.Delete(s.ctx, "k"))

	_, err := s.storage.Get(s.ctx, "k")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageContractSuite) TestDeleteMissingKey() {
	s.NoError(s.storage.Delete(s.ctx, "missing"))
}

func (s *StorageContractSuite) TestUnicodeValue() {
	value := []byte(`{"name":"Зелье здоровья","icon":"🧪"}`)
	s.Require().NoError(s.storage.Set(s.ctx, "k", value))

	got, err := s.storage.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal(value, got)
}

func (s *StorageContractSuite) TestKeysAreIndependent() {
	s.Require().NoError(s.storage.Set(s.ctx, "a", []byte("1")))
	s.Require().NoError(s.storage.Set(s.ctx, "b", []byte("2")))
	s.Require().NoError(s.storage.Delete(s.ctx, "a"))

	got, err := s.storage.Get(s.ctx, "b")
	s.Require().NoError(err)
	s.Equal("2", string(got))
}

func (s *StorageContractSuite) TestConcurrentWrites() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%5)
			_ = s.storage.Set(s.ctx, key, []byte(fmt.Sprintf("%d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, err := s.storage.Get(s.ctx, fmt.Sprintf("key-%d", i))
		s.NoError(err)
	}
}
