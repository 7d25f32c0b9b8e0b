package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type requestRepo struct {
	st *state
}

func (r *requestRepo) Create(ctx context.Context, req *domain.ItemRequest) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.nextRequestID++
	req.ID = r.st.nextRequestID
	r.st.requests[req.ID] = *req
	return nil
}

func (r *requestRepo) GetByID(ctx context.Context, id int32) (*domain.ItemRequest, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	req, ok := r.st.requests[id]
	if !ok {
		return nil, domain.NotFoundf("request with id=%d not found", id)
	}
	return &req, nil
}

func (r *requestRepo) where(match func(domain.ItemRequest) bool) []domain.ItemRequest {
	var requests []domain.ItemRequest
	for _, req := range r.st.requests {
		if match(req) {
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests
}

func (r *requestRepo) ListByRequester(ctx context.Context, requesterID int32) ([]domain.ItemRequest, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return r.where(func(req domain.ItemRequest) bool { return req.RequesterID == requesterID }), nil
}

func (r *requestRepo) ListOthers(ctx context.Context, userID int32, from, size int32) ([]domain.ItemRequest, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	requests := r.where(func(req domain.ItemRequest) bool { return req.RequesterID != userID })
	return pageSlice(requests, from, size), nil
}

type commentRepo struct {
	st *state
}

func (r *commentRepo) Create(ctx context.Context, c *domain.Comment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.nextCommentID++
	c.ID = r.st.nextCommentID
	r.st.comments[c.ID] = *c
	return nil
}

func (r *commentRepo) ListByItem(ctx context.Context, itemID int32) ([]domain.Comment, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var comments []domain.Comment
	for _, c := range r.st.comments {
		if c.ItemID == itemID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}
