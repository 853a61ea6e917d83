package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

type carRequest struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Tel         string  `json:"tel"`
	PricePerDay float64 `json:"price_per_day"`
	Picture     string  `json:"picture"`
	Rating      float64 `json:"rating"`
	Tier        string  `json:"tier"`
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 25)

	cars, total, err := h.carSvc.ListCars(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeList(w, http.StatusOK, len(cars), total, cars)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	car, err := h.carSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	car := carFromRequest(req)
	if err := h.carSvc.CreateCar(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	car := carFromRequest(req)
	car.ID = id
	if err := h.carSvc.UpdateCar(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.carSvc.DeleteCar(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func carFromRequest(req carRequest) *domain.Car {
	return &domain.Car{
		Name:        req.Name,
		Model:       req.Model,
		Tel:         req.Tel,
		PricePerDay: req.PricePerDay,
		Picture:     req.Picture,
		Rating:      req.Rating,
		Tier:        domain.CarTier(req.Tier),
	}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return int32(id), nil
}

func queryInt(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
