package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, car_id, user_id, pickup_date, return_date, pickup_location, return_location, assumed_price, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (car_id, user_id, pickup_date, return_date, pickup_location, return_location, assumed_price, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.CarID, rt.UserID, rt.PickupDate, rt.ReturnDate, rt.PickupLocation, rt.ReturnLocation, rt.AssumedPrice, time.Now(), time.Now()).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CarID, &rt.UserID, &rt.PickupDate, &rt.ReturnDate, &rt.PickupLocation, &rt.ReturnLocation, &rt.AssumedPrice, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET pickup_date=$1, return_date=$2, pickup_location=$3, return_location=$4, assumed_price=$5, updated_on=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, rt.PickupDate, rt.ReturnDate, rt.PickupLocation, rt.ReturnLocation, rt.AssumedPrice, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_on DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1 ORDER BY created_on DESC`
	return r.queryRentals(ctx, query, userID)
}

func (r *rentalRepository) ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_id = $1 ORDER BY created_on DESC`
	return r.queryRentals(ctx, query, carID)
}

func (r *rentalRepository) CountByCar(ctx context.Context, carID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE car_id = $1`, carID).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountByUser(ctx context.Context, userID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *rentalRepository) DeleteByCar(ctx context.Context, carID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE car_id = $1`, carID)
	return err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.UserID, &rt.PickupDate, &rt.ReturnDate, &rt.PickupLocation, &rt.ReturnLocation, &rt.AssumedPrice, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
