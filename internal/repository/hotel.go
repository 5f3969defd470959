package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type HotelRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelRepo(db *dbpg.DB) *HotelRepository {
	return &HotelRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	query := `SELECT id, name, image, created_at, updated_at
			  FROM hotels
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var res []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err = rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

func (r *HotelRepository) GetRooms(ctx context.Context, hotelID int64) (*domain.HotelRooms, error) {
	query := `SELECT id, name, image, created_at, updated_at
			  FROM hotels
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	var hr domain.HotelRooms
	if err = row.Scan(&hr.Hotel.ID, &hr.Hotel.Name, &hr.Hotel.Image, &hr.Hotel.CreatedAt, &hr.Hotel.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	roomsQuery := `SELECT id, name, capacity, hotel_id, created_at, updated_at
				   FROM rooms
				   WHERE hotel_id = $1
				   ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, roomsQuery, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		hr.Rooms = append(hr.Rooms, room)
	}

	return &hr, rows.Err()
}

func (r *HotelRepository) FindRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `SELECT id, name, capacity, hotel_id, created_at, updated_at
			  FROM rooms
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}
