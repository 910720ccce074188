package repository

import (
	"context"

	"github.com/Domenick1991/bookingapi/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int, error)
}

type MemUserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &MemUserRepository{store: store}
}

// Create assigns the next user ID and appends the user.
func (r *MemUserRepository) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lastUserID++
	user.ID = r.store.lastUserID
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *MemUserRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.users), nil
}

var _ UserRepository = (*MemUserRepository)(nil)
