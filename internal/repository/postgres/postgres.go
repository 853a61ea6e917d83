package postgres

import (
	"database/sql"

	"car-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CarRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		UserRepository:   NewUserRepository(db),
		CarRepository:    NewCarRepository(db),
		RentalRepository: NewRentalRepository(db),
	}
}
