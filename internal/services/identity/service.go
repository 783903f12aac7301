package identity

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mcoot/foundry/internal/dependencies/random"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

const (
	minUsernameLength = 3
	minPasswordLength = 4
)

// DefaultUsers are seeded when no user list has been saved yet
func DefaultUsers() []model.User {
	return []model.User{
		{ID: "1", Username: "admin", Password: "1111", Role: model.RoleAdmin},
		{ID: "2", Username: "player1", Password: "foundry", Role: model.RolePlayer},
		{ID: "3", Username: "player2", Password: "foundry", Role: model.RolePlayer},
	}
}

// Service owns the user list and the single current session
type Service struct {
	repo   *repository.Repository
	random random.Random
	logger *slog.Logger

	mu      sync.Mutex
	users   []model.User
	current *model.SessionUser
}

// New creates an identity service. Call Load before use.
func New(repo *repository.Repository, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		random: random,
		logger: logger.With(slog.String("component", "identity-service")),
	}
}

// Load reads the user list and session from storage, seeding the default
// users when none have been saved.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []model.User
	found, err := s.repo.Load(ctx, repository.Users, &users)
	if err != nil {
		return err
	}
	if !found {
		users = DefaultUsers()
		if err := s.repo.Save(ctx, repository.Users, users); err != nil {
			return err
		}
		s.logger.Info("seeded default users", slog.Int("count", len(users)))
	}
	s.users = users

	var current model.SessionUser
	found, err = s.repo.Load(ctx, repository.CurrentUser, &current)
	if err != nil {
		return err
	}
	s.current = nil
	if found {
		s.current = &current
	}
	return nil
}

// Login signs in when username and password both match exactly
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username != username || u.Password != password {
			continue
		}
		session := u.Session()
		if err := s.repo.Save(ctx, repository.CurrentUser, session); err != nil {
			return false, err
		}
		s.current = &session
		s.logger.Info("user logged in", slog.String("user_id", u.ID), slog.String("username", u.Username))
		return true, nil
	}

	s.logger.Debug("login rejected", slog.String("username", username))
	return false, nil
}

// Register creates a player account. It does not sign the new user in.
func (s *Service) Register(ctx context.Context, username, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return model.User{}, model.ErrUsernameTaken
		}
	}
	if utf8.RuneCountInString(username) < minUsernameLength {
		return model.User{}, model.ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return model.User{}, model.ErrPasswordTooShort
	}

	user := model.User{
		ID:       s.random.ID(),
		Username: username,
		Password: password,
		Role:     model.RolePlayer,
	}

	users := append(append([]model.User(nil), s.users...), user)
	if err := s.repo.Save(ctx, repository.Users, users); err != nil {
		return model.User{}, err
	}
	s.users = users

	s.logger.Info("user registered", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// Logout clears the current session. Logging out while anonymous is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, repository.CurrentUser); err != nil {
		return err
	}
	if s.current != nil {
		s.logger.Info("user logged out", slog.String("user_id", s.current.ID))
	}
	s.current = nil
	return nil
}

// CurrentUser returns the signed-in user, if any
func (s *Service) CurrentUser() (model.SessionUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.SessionUser{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether a user is signed in
func (s *Service) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Users returns a copy of all registered users
func (s *Service) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}
