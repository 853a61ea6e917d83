package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, name, model, tel, price_per_day, demand_factor, picture, rating, tier, last_updated, created_on`

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	if c.DemandFactor == 0 {
		c.DemandFactor = 1.0
	}
	if c.Tier == "" {
		c.Tier = domain.CarTierBronze
	}
	query := `INSERT INTO cars (name, model, tel, price_per_day, demand_factor, picture, rating, tier, last_updated, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Model, c.Tel, c.PricePerDay, c.DemandFactor, c.Picture, c.Rating, c.Tier, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Model, &c.Tel, &c.PricePerDay, &c.DemandFactor, &c.Picture, &c.Rating, &c.Tier, &c.LastUpdated, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET name=$1, model=$2, tel=$3, price_per_day=$4, demand_factor=$5, picture=$6, rating=$7, tier=$8, last_updated=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Model, c.Tel, c.PricePerDay, c.DemandFactor, c.Picture, c.Rating, c.Tier, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Model, &c.Tel, &c.PricePerDay, &c.DemandFactor, &c.Picture, &c.Rating, &c.Tier, &c.LastUpdated, &c.CreatedOn); err != nil {
			return nil, 0, err
		}
		cars = append(cars, c)
	}
	return cars, count, rows.Err()
}
