package postgres

import (
	"context"
	"database/sql"
	"errors"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewItemRequestRepository(db *sql.DB) repository.ItemRequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, requester_id, description, created`

func (r *requestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO item_requests (requester_id, description, created)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.RequesterID, req.Description, req.Created).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{}
	query := `SELECT ` + requestColumns + ` FROM item_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.RequesterID, &req.Description, &req.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("request with id=%d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID int32) ([]domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM item_requests WHERE requester_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *requestRepository) ListOthers(ctx context.Context, userID int32, from, size int32) ([]domain.ItemRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM item_requests WHERE requester_id <> $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows *sql.Rows) ([]domain.ItemRequest, error) {
	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.Description, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
