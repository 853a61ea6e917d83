package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentalRequest struct {
	PickupDate     string `json:"pickup_date"`
	ReturnDate     string `json:"return_date"`
	PickupLocation string `json:"pickup_location"`
	ReturnLocation string `json:"return_location"`
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())

	// Admins may narrow the listing to a single car.
	var carID int32
	if raw := r.URL.Query().Get("car_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, fmt.Errorf("%w: invalid car_id %q", domain.ErrValidation, raw))
			return
		}
		carID = int32(v)
	}

	rentals, err := h.rentalSvc.ListRentals(r.Context(), principal, carID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeList(w, http.StatusOK, len(rentals), int32(len(rentals)), rentals)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())

	carID, err := pathID(r, "carId")
	if err != nil {
		writeError(w, err)
		return
	}

	in, err := decodeRentalInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), principal, carID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) UpdateRental(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	in, err := decodeRentalInput(r)
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.UpdateRental(r.Context(), principal, id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), principal, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func decodeRentalInput(r *http.Request) (service.RentalInput, error) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.RentalInput{}, fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}
	return service.RentalInput{
		PickupDate:     req.PickupDate,
		ReturnDate:     req.ReturnDate,
		PickupLocation: req.PickupLocation,
		ReturnLocation: req.ReturnLocation,
	}, nil
}
