package memory

import (
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
)

func (s *Store) CreateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernames[user.Username]; ok {
		return repository.ErrDuplicate
	}
	if _, ok := s.emails[user.Email]; ok {
		return repository.ErrDuplicate
	}
	if err := assignID(&s.userSeq, &user.ID, s.users.has); err != nil {
		return err
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	s.users.insert(cloneUser(*user))
	s.usernames[user.Username] = user.ID
	s.emails[user.Email] = user.ID
	return nil
}

func (s *Store) FindUserByID(id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userByID(id)
}

func (s *Store) FindUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.userByID(id)
}

func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.userByID(id)
}

// userByID expects s.mu to be held.
func (s *Store) userByID(id uint) (*model.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneUser(*u)
	return &out, nil
}
