package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foundry/internal/dependencies/mocks"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
	"github.com/mcoot/foundry/internal/storage/memory"
	"github.com/mcoot/foundry/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	repo    *repository.Repository
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.repo = repository.New(s.storage)
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()
	s.service = s.newService()
}

func (s *ServiceSuite) newService() *Service {
	svc := New(s.repo, s.random, testutil.NopLogger())
	s.Require().NoError(svc.Load(s.ctx))
	return svc
}

// Load tests

func (s *ServiceSuite) TestLoadSeedsDefaultUsers() {
	users := s.service.Users()
	s.Require().Len(users, 3)
	s.Equal("admin", users[0].Username)
	s.Equal(model.RoleAdmin, users[0].Role)
	s.Equal("player1", users[1].Username)
	s.Equal("player2", users[2].Username)

	var saved []model.User
	found, err := s.repo.Load(s.ctx, repository.Users, &saved)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(users, saved)
}

func (s *ServiceSuite) TestLoadKeepsSavedUsers() {
	s.Require().NoError(s.repo.Save(s.ctx, repository.Users, []model.User{
		{ID: "9", Username: "solo", Password: "pass", Role: model.RolePlayer},
	}))

	svc := s.newService()
	s.Require().Len(svc.Users(), 1)
	s.Equal("solo", svc.Users()[0].Username)
}

func (s *ServiceSuite) TestLoadRestoresSession() {
	ok, err := s.service.Login(s.ctx, "player1", "foundry")
	s.Require().NoError(err)
	s.Require().True(ok)

	svc := s.newService()
	user, ok := svc.CurrentUser()
	s.True(ok)
	s.Equal("player1", user.Username)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	ok, err := s.service.Login(s.ctx, "admin", "1111")
	s.Require().NoError(err)
	s.True(ok)

	user, ok := s.service.CurrentUser()
	s.Require().True(ok)
	s.Equal(model.SessionUser{ID: "1", Username: "admin", Role: model.RoleAdmin}, user)
	s.True(s.service.IsAuthenticated())

	var saved model.SessionUser
	found, err := s.repo.Load(s.ctx, repository.CurrentUser, &saved)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(user, saved)
}

func (s *ServiceSuite) TestLoginSessionHasNoPassword() {
	_, err := s.service.Login(s.ctx, "admin", "1111")
	s.Require().NoError(err)

	raw, err := s.storage.Get(s.ctx, "foundry_user")
	s.Require().NoError(err)
	s.NotContains(string(raw), "1111")
	s.NotContains(string(raw), "password")
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	ok, err := s.service.Login(s.ctx, "admin", "2222")
	s.Require().NoError(err)
	s.False(ok)
	s.False(s.service.IsAuthenticated())
}

func (s *ServiceSuite) TestLoginIsCaseSensitive() {
	ok, err := s.service.Login(s.ctx, "Admin", "1111")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestLoginUnknownUser() {
	ok, err := s.service.Login(s.ctx, "nobody", "1111")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestFailedLoginKeepsExistingSession() {
	_, _ = s.service.Login(s.ctx, "player1", "foundry")
	ok, _ := s.service.Login(s.ctx, "player2", "wrong")
	s.False(ok)

	user, ok := s.service.CurrentUser()
	s.True(ok)
	s.Equal("player1", user.Username)
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	s.random.QueueID("new-user")

	user, err := s.service.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Equal(model.User{ID: "new-user", Username: "alice", Password: "secret", Role: model.RolePlayer}, user)
	s.Len(s.service.Users(), 4)

	var saved []model.User
	_, err = s.repo.Load(s.ctx, repository.Users, &saved)
	s.Require().NoError(err)
	s.Len(saved, 4)
}

func (s *ServiceSuite) TestRegisterDoesNotLogIn() {
	_, err := s.service.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.False(s.service.IsAuthenticated())

	ok, err := s.service.Login(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestRegisterUsernameTakenIgnoresCase() {
	_, err := s.service.Register(s.ctx, "ADMIN", "whatever")
	s.ErrorIs(err, model.ErrUsernameTaken)
	s.Len(s.service.Users(), 3)
}

func (s *ServiceSuite) TestRegisterUsernameTooShort() {
	_, err := s.service.Register(s.ctx, "ab", "secret")
	s.ErrorIs(err, model.ErrUsernameTooShort)
}

func (s *ServiceSuite) TestRegisterPasswordTooShort() {
	_, err := s.service.Register(s.ctx, "alice", "abc")
	s.ErrorIs(err, model.ErrPasswordTooShort)
}

func (s *ServiceSuite) TestRegisterChecksTakenBeforeLength() {
	_, err := s.service.Register(s.ctx, "player1", "x")
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *ServiceSuite) TestRegisterChecksUsernameBeforePassword() {
	_, err := s.service.Register(s.ctx, "ab", "x")
	s.ErrorIs(err, model.ErrUsernameTooShort)
}

func (s *ServiceSuite) TestRegisterCountsRunes() {
	_, err := s.service.Register(s.ctx, "Иван", "пароль")
	s.NoError(err)

	_, err = s.service.Register(s.ctx, "Юя", "пароль")
	s.ErrorIs(err, model.ErrUsernameTooShort)
}

func (s *ServiceSuite) TestRegisterDistinctIDs() {
	a, err := s.service.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	b, err := s.service.Register(s.ctx, "bob", "secret")
	s.Require().NoError(err)
	s.NotEqual(a.ID, b.ID)
}

// Logout tests

func (s *ServiceSuite) TestLogout() {
	_, _ = s.service.Login(s.ctx, "admin", "1111")

	s.Require().NoError(s.service.Logout(s.ctx))
	s.False(s.service.IsAuthenticated())

	_, err := s.storage.Get(s.ctx, "foundry_user")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *ServiceSuite) TestLogoutIsIdempotent() {
	s.NoError(s.service.Logout(s.ctx))
	s.NoError(s.service.Logout(s.ctx))
	s.False(s.service.IsAuthenticated())
}

func (s *ServiceSuite) TestUsersReturnsCopy() {
	users := s.service.Users()
	users[0].Username = "changed"
	s.Equal("admin", s.service.Users()[0].Username)
}
