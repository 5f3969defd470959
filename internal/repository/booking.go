package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, room_id, created_at, updated_at
			  FROM bookings
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) FindByRoom(ctx context.Context, roomID int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, room_id, created_at, updated_at
			  FROM bookings
			  WHERE room_id = $1
			  ORDER BY id
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room booking: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) CountForRoom(ctx context.Context, roomID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return count, nil
}

// CreateWithinCapacity inserts a booking only if the room still has a free
// spot. The room row is locked for the duration of the transaction, so the
// count and the insert form one serializable unit per room.
func (r *BookingRepository) CreateWithinCapacity(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacity, err := lockRoomCapacity(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}

	// Проверяем наличие мест
	var occupied int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, roomID).Scan(&occupied); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	if occupied >= capacity {
		return nil, domain.ErrRoomFull
	}

	// Создаем бронь
	query := `INSERT INTO bookings (user_id, room_id, created_at, updated_at)
			  VALUES ($1, $2, now(), now())
			  RETURNING id, user_id, room_id, created_at, updated_at`

	var b domain.Booking
	err = tx.QueryRowContext(ctx, query, userID, roomID).
		Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &b, nil
}

// ReassignWithinCapacity moves an existing booking to another room under the
// same per-room arbitration as CreateWithinCapacity. The booking id is
// preserved; only room_id changes.
func (r *BookingRepository) ReassignWithinCapacity(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacity, err := lockRoomCapacity(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}

	// Собственная бронь не считается занятым местом
	var occupied int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND id <> $2`
	if err = tx.QueryRowContext(ctx, countQuery, roomID, bookingID).Scan(&occupied); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	if occupied >= capacity {
		return nil, domain.ErrRoomFullOnChange
	}

	query := `UPDATE bookings
			  SET room_id = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING id, user_id, room_id, created_at, updated_at`

	var b domain.Booking
	err = tx.QueryRowContext(ctx, query, bookingID, roomID).
		Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &b, nil
}

func lockRoomCapacity(ctx context.Context, tx *sql.Tx, roomID int64) (int, error) {
	query := `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`

	var capacity int
	if err := tx.QueryRowContext(ctx, query, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrRoomNotFound
		}
		return 0, fmt.Errorf("lock room: %w", err)
	}

	return capacity, nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}
