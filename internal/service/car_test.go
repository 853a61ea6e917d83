package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"car-rental-backend/internal/domain"
)

func TestCarService_ListCars(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults applied to out-of-range paging", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("List", ctx, int32(1), int32(25)).Return([]domain.Car{}, int32(0), nil)
		svc := NewCarService(cars, new(MockRentalRepository))

		_, _, err := svc.ListCars(ctx, 0, 500)
		assert.NoError(t, err)
		cars.AssertExpectations(t)
	})

	t.Run("Valid paging passes through", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("List", ctx, int32(2), int32(10)).Return([]domain.Car{{ID: 11}}, int32(21), nil)
		svc := NewCarService(cars, new(MockRentalRepository))

		out, total, err := svc.ListCars(ctx, 2, 10)
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, int32(21), total)
	})
}

func TestCarService_CreateCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid car is created", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("Create", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)
		svc := NewCarService(cars, new(MockRentalRepository))

		err := svc.CreateCar(ctx, &domain.Car{Name: "Corolla", Model: "2023", PricePerDay: 45.99})
		assert.NoError(t, err)
	})

	t.Run("Missing name fails validation", func(t *testing.T) {
		cars := new(MockCarRepository)
		svc := NewCarService(cars, new(MockRentalRepository))

		err := svc.CreateCar(ctx, &domain.Car{Model: "2023"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		cars.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Negative price fails validation", func(t *testing.T) {
		svc := NewCarService(new(MockCarRepository), new(MockRentalRepository))
		err := svc.CreateCar(ctx, &domain.Car{Name: "Corolla", Model: "2023", PricePerDay: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Out-of-range rating fails validation", func(t *testing.T) {
		svc := NewCarService(new(MockCarRepository), new(MockRentalRepository))
		err := svc.CreateCar(ctx, &domain.Car{Name: "Corolla", Model: "2023", Rating: 6})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCarService_DeleteCar(t *testing.T) {
	ctx := context.Background()
	car := &domain.Car{ID: 4, Name: "Corolla", Model: "2023"}

	t.Run("Deletes rentals before the car", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("GetByID", ctx, int32(4)).Return(car, nil)
		rentals := new(MockRentalRepository)
		var order []string
		rentals.On("DeleteByCar", ctx, int32(4)).Run(func(mock.Arguments) {
			order = append(order, "rentals")
		}).Return(nil)
		cars.On("Delete", ctx, int32(4)).Run(func(mock.Arguments) {
			order = append(order, "car")
		}).Return(nil)
		svc := NewCarService(cars, rentals)

		assert.NoError(t, svc.DeleteCar(ctx, 4))
		assert.Equal(t, []string{"rentals", "car"}, order)
	})

	t.Run("Rental delete failure leaves the car in place", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("GetByID", ctx, int32(4)).Return(car, nil)
		rentals := new(MockRentalRepository)
		rentals.On("DeleteByCar", ctx, int32(4)).Return(errors.New("db down"))
		svc := NewCarService(cars, rentals)

		err := svc.DeleteCar(ctx, 4)
		assert.Error(t, err)
		cars.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown car propagates not found", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)
		rentals := new(MockRentalRepository)
		svc := NewCarService(cars, rentals)

		err := svc.DeleteCar(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		rentals.AssertNotCalled(t, "DeleteByCar", mock.Anything, mock.Anything)
	})
}
