package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes. Route shapes mirror the public API:
// cars are public reads with admin-only writes, rentals require a principal.
func NewRouter(
	auth *AuthMiddleware,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	carHandler *CarHandler,
	rentalHandler *RentalHandler,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", auth.Protect(authHandler.Me)).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users/update", auth.Protect(userHandler.UpdateProfile)).Methods(http.MethodPut)

	// Cars
	api.HandleFunc("/cars", carHandler.ListCars).Methods(http.MethodGet)
	api.HandleFunc("/cars", auth.RequireAdmin(carHandler.CreateCar)).Methods(http.MethodPost)
	api.HandleFunc("/cars/{id}", carHandler.GetCar).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", auth.RequireAdmin(carHandler.UpdateCar)).Methods(http.MethodPut)
	api.HandleFunc("/cars/{id}", auth.RequireAdmin(carHandler.DeleteCar)).Methods(http.MethodDelete)

	// Rentals
	api.HandleFunc("/rentals", auth.Protect(rentalHandler.ListRentals)).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", auth.Protect(rentalHandler.GetRental)).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/rentals", auth.Protect(rentalHandler.CreateRental)).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", auth.Protect(rentalHandler.UpdateRental)).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}", auth.Protect(rentalHandler.DeleteRental)).Methods(http.MethodDelete)

	return r
}
