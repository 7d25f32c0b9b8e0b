package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type itemRepo struct {
	st *state
}

func (r *itemRepo) Create(ctx context.Context, it *domain.Item) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.nextItemID++
	it.ID = r.st.nextItemID
	r.st.items[it.ID] = *it
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok {
		return nil, domain.NotFoundf("item with id=%d not found", id)
	}
	return &it, nil
}

func (r *itemRepo) Update(ctx context.Context, it *domain.Item) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.items[it.ID]; !ok {
		return domain.NotFoundf("item with id=%d not found", it.ID)
	}
	r.st.items[it.ID] = *it
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id int32) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.items, id)
	return nil
}

func (r *itemRepo) where(match func(domain.Item) bool) []domain.Item {
	var items []domain.Item
	for _, it := range r.st.items {
		if match(it) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *itemRepo) ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Item, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	items := r.where(func(it domain.Item) bool { return it.OwnerID == ownerID })
	return pageSlice(items, from, size), nil
}

func (r *itemRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Item, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return r.where(func(it domain.Item) bool {
		return it.RequestID != nil && *it.RequestID == requestID
	}), nil
}

func (r *itemRepo) Search(ctx context.Context, text string, from, size int32) ([]domain.Item, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	items := r.where(func(it domain.Item) bool {
		return it.Available && (containsFold(it.Name, text) || containsFold(it.Description, text))
	})
	return pageSlice(items, from, size), nil
}
