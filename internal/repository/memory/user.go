package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type userRepo struct {
	st *state
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, existing := range r.st.users {
		if existing.Email == u.Email {
			return domain.Validationf("email %s is already in use", u.Email)
		}
	}
	r.st.nextUserID++
	u.ID = r.st.nextUserID
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u, ok := r.st.users[id]
	if !ok {
		return nil, domain.NotFoundf("user with id=%d not found", id)
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	users := make([]domain.User, 0, len(r.st.users))
	for _, u := range r.st.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, u *domain.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.users[u.ID]; !ok {
		return domain.NotFoundf("user with id=%d not found", u.ID)
	}
	for id, existing := range r.st.users {
		if id != u.ID && existing.Email == u.Email {
			return domain.Validationf("email %s is already in use", u.Email)
		}
	}
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id int32) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.users, id)
	return nil
}
