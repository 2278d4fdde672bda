package memory

import (
	"context"
	"strings"

	"github.com/SoYuDev/petalth-crm/internal/domain/users"
)

type UsersRepo struct {
	s *Store
}

func NewUsersRepo(s *Store) *UsersRepo {
	return &UsersRepo{s: s}
}

// CreateWithOwner es atómico por construcción: todo ocurre bajo un lock.
func (r *UsersRepo) CreateWithOwner(ctx context.Context, u users.User, o users.Owner) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.s.usersByEmail[email]; exists {
		return users.User{}, users.ErrEmailTaken
	}

	u.ID = r.s.nextID()
	o.ID = u.ID

	r.s.users[u.ID] = u
	r.s.usersByEmail[email] = u.ID
	r.s.owners[o.ID] = o
	return u, nil
}

// CreateWithVeterinarian registra una cuenta de veterinario. No hay endpoint
// público para esto: lo usan el seed de demo y los tests.
func (r *UsersRepo) CreateWithVeterinarian(ctx context.Context, u users.User, v users.Veterinarian) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.s.usersByEmail[email]; exists {
		return users.User{}, users.ErrEmailTaken
	}

	u.ID = r.s.nextID()
	v.ID = u.ID

	r.s.users[u.ID] = u
	r.s.usersByEmail[email] = u.ID
	r.s.vets[v.ID] = v
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.s.users[id], nil
}

func (r *UsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.usersByEmail[strings.ToLower(email)]
	return ok, nil
}

func (r *UsersRepo) GetOwner(ctx context.Context, id int64) (users.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return users.Owner{}, users.ErrNotFound
	}
	return o, nil
}
