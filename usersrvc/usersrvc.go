package usersrvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// UserSrvc holds every registered user and the active session user. All
// state is in memory and lost on process restart. One logical writer (the
// active UI session) is assumed; the mutex only keeps concurrent readers
// consistent.
type UserSrvc struct {
	mu     sync.RWMutex
	users  []storedUser // insertion order
	active *User        // copy of the session user; nil when logged out
	rng    *rand.Rand
}

func NewUserSrvc() *UserSrvc {
	return &UserSrvc{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// ActiveUser returns the session user or an explicit not-logged-in error.
func (s *UserSrvc) ActiveUser(ctx context.Context) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil, ErrNotLoggedIn()
	}
	cp := *s.active
	return &cp, nil
}

func (s *UserSrvc) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].UUID == id {
			cp := s.users[i].User
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound()
}

func (s *UserSrvc) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]User, len(s.users))
	for i := range s.users {
		res[i] = s.users[i].User
	}
	return res, nil
}

// Logout clears the active session user.
func (s *UserSrvc) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// newPublicID generates the role-prefixed public-facing id: a 5-digit
// suffix for students (S#####), 4 digits for lecturers (L####). Retries
// until the id is unused; caller holds the write lock.
func (s *UserSrvc) newPublicID(role Role) string {
	for {
		var id string
		if role == RoleStudent {
			id = fmt.Sprintf("S%d", 10000+s.rng.Intn(90000))
		} else {
			id = fmt.Sprintf("L%d", 1000+s.rng.Intn(9000))
		}
		taken := false
		for i := range s.users {
			if s.users[i].PublicID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
