package postgres

import (
	"context"
	"database/sql"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (item_id, author_id, author_name, text, created)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.ItemID, c.AuthorID, c.AuthorName, c.Text, c.Created).Scan(&c.ID)
}

func (r *commentRepository) ListByItem(ctx context.Context, itemID int32) ([]domain.Comment, error) {
	query := `SELECT id, item_id, author_id, author_name, text, created FROM comments WHERE item_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
