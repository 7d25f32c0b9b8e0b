package postgres

import (
	"context"
	"database/sql"
	"errors"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, item_id, booker_id, owner_id, start_at, end_at, status`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, owner_id, start_at, end_at, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.ItemID, b.BookerID, b.OwnerID, b.Start, b.End, b.Status).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.ItemID, &b.BookerID, &b.OwnerID, &b.Start, &b.End, &b.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("booking with id=%d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus is a single conditional UPDATE, so the read-then-write of a
// decision is atomic per booking id: of two concurrent transitions from the
// same source status exactly one matches a row.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status=$1 WHERE id=$2 AND status=$3`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int32, from, size int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booker_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, bookerID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int32, from, size int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByItem(ctx context.Context, itemID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE item_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.OwnerID, &b.Start, &b.End, &b.Status); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
