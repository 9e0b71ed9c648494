package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vehiql/internal/domain/entity"
	apperrors "vehiql/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() []entity.Car {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prices := []float64{5000, 8000, 12000, 15000, 18000, 21000, 25000, 30000, 42000, 55000}
	makes := []string{"Toyota", "Honda", "Toyota", "Ford", "BMW", "Honda", "Ford", "BMW", "Audi", "Tesla"}
	bodyTypes := []string{"Sedan", "SUV", "Hatchback", "SUV", "Sedan", "Sedan", "Pickup", "SUV", "Sedan", "Sedan"}

	cars := make([]entity.Car, 0, 10)
	for i := 0; i < 10; i++ {
		cars = append(cars, entity.Car{
			ID:           fmt.Sprintf("car-%d", i+1),
			Make:         makes[i],
			Model:        fmt.Sprintf("Model %d", i+1),
			Year:         2018 + i%5,
			Price:        decimal.NewFromFloat(prices[i]),
			Mileage:      10000 * (i + 1),
			FuelType:     "Petrol",
			Transmission: "Automatic",
			BodyType:     bodyTypes[i],
			Description:  fmt.Sprintf("A well kept %s", bodyTypes[i]),
			Status:       entity.CarStatusAvailable,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:    base.Add(time.Duration(i) * time.Hour),
		})
	}
	return cars
}

func newCarUseCaseForTest(cars []entity.Car) (*CarUseCase, *fakeSavedCarRepo, *fakeBookingRepo, *fakeDealershipRepo) {
	savedRepo := newFakeSavedCarRepo()
	bookingRepo := &fakeBookingRepo{}
	dealershipRepo := &fakeDealershipRepo{}
	uc := NewCarUseCase(&fakeCarRepo{cars: cars}, newFakeUserRepo(), savedRepo, bookingRepo, dealershipRepo)
	return uc, savedRepo, bookingRepo, dealershipRepo
}

func TestSearchCarsRejectsInvalidInput(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	cases := []struct {
		name  string
		input SearchCarsInput
	}{
		{"zero page", SearchCarsInput{Page: 0, PageSize: 6}},
		{"zero page size", SearchCarsInput{Page: 1, PageSize: 0}},
		{"negative min price", SearchCarsInput{Page: 1, PageSize: 6, MinPrice: -1}},
		{"min above max", SearchCarsInput{Page: 1, PageSize: 6, MinPrice: 20000, MaxPrice: 10000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := uc.SearchCars(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
		})
	}
}

func TestSearchCarsPriceBandSortedAscending(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	items, total, pages, err := uc.SearchCars(context.Background(), SearchCarsInput{
		MinPrice: 10000,
		MaxPrice: 20000,
		SortBy:   "priceAsc",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	assert.Equal(t, 1, pages)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.GreaterOrEqual(t, item.Price, 10000.0)
		assert.LessOrEqual(t, item.Price, 20000.0)
		if i > 0 {
			assert.LessOrEqual(t, items[i-1].Price, item.Price)
		}
	}
}

func TestSearchCarsTotalsIndependentOfPage(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	items, total, pages, err := uc.SearchCars(context.Background(), SearchCarsInput{Page: 1, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, 3, pages)
	assert.Len(t, items, 4)

	// A page past the end is not an error; totals stay intact.
	items, total, pages, err = uc.SearchCars(context.Background(), SearchCarsInput{Page: pages + 1, PageSize: 4})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, 3, pages)
}

func TestSearchCarsExcludesNonAvailable(t *testing.T) {
	cars := fixtureCatalog()
	cars[0].Status = entity.CarStatusSold
	cars[1].Status = entity.CarStatusUnavailable
	uc, _, _, _ := newCarUseCaseForTest(cars)

	items, total, _, err := uc.SearchCars(context.Background(), SearchCarsInput{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	for _, item := range items {
		assert.Equal(t, string(entity.CarStatusAvailable), item.Status)
	}
}

func TestSearchCarsFreeTextIsCaseInsensitive(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	_, total, _, err := uc.SearchCars(context.Background(), SearchCarsInput{Search: "toyota", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Substring match reaches the description as well.
	_, total, _, err = uc.SearchCars(context.Background(), SearchCarsInput{Search: "well kept", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

func TestSearchCarsConjunctiveFacets(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	items, total, _, err := uc.SearchCars(context.Background(), SearchCarsInput{
		Make:     "Toyota",
		BodyType: "Sedan",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "car-1", items[0].ID)
}

func TestGetCarByIDNotFound(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	_, err := uc.GetCarByID(context.Background(), "missing", "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestGetCarByIDAnonymous(t *testing.T) {
	uc, _, _, dealershipRepo := newCarUseCaseForTest(fixtureCatalog())
	dealershipRepo.dealership = &entity.DealershipInfo{
		ID:   "dealer-1",
		Name: "Vehiql Motors",
		WorkingHours: []entity.WorkingHour{
			{DayOfWeek: entity.Sunday, OpenTime: "10:00", CloseTime: "16:00", IsOpen: false},
			{DayOfWeek: entity.Monday, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
		},
	}

	detail, err := uc.GetCarByID(context.Background(), "car-1", "")
	require.NoError(t, err)

	assert.False(t, detail.Wishlisted)
	assert.Nil(t, detail.TestDriveInfo.UserTestDrive)
	require.NotNil(t, detail.TestDriveInfo.Dealership)
	// Hours come back in display order, Monday first.
	require.Len(t, detail.TestDriveInfo.Dealership.WorkingHours, 2)
	assert.Equal(t, string(entity.Monday), detail.TestDriveInfo.Dealership.WorkingHours[0].DayOfWeek)
}

func TestGetCarByIDAggregatesRequesterState(t *testing.T) {
	uc, savedRepo, bookingRepo, _ := newCarUseCaseForTest(fixtureCatalog())

	// The requester's local user row is created lazily; its id is derived
	// from the external subject by the fake.
	savedRepo.rows[pairKey("user-ext-1", "car-2")] = entity.SavedCar{
		ID: "saved-1", UserID: "user-ext-1", CarID: "car-2",
	}

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo.bookings = []entity.TestDriveBooking{
		{ID: "b-1", UserID: "user-ext-1", CarID: "car-2", Status: entity.BookingStatusPending,
			BookingDate: created.AddDate(0, 0, 7), CreatedAt: created},
		{ID: "b-2", UserID: "user-ext-1", CarID: "car-2", Status: entity.BookingStatusCancelled,
			BookingDate: created.AddDate(0, 0, 10), CreatedAt: created.Add(time.Hour)},
		{ID: "b-other", UserID: "user-someone-else", CarID: "car-2", Status: entity.BookingStatusConfirmed,
			BookingDate: created.AddDate(0, 0, 3), CreatedAt: created.Add(2 * time.Hour)},
	}

	detail, err := uc.GetCarByID(context.Background(), "car-2", "ext-1")
	require.NoError(t, err)

	assert.True(t, detail.Wishlisted)
	// The newer CANCELLED row never wins, and another user's booking is
	// never surfaced.
	require.NotNil(t, detail.TestDriveInfo.UserTestDrive)
	assert.Equal(t, "b-1", detail.TestDriveInfo.UserTestDrive.ID)
	assert.Equal(t, string(entity.BookingStatusPending), detail.TestDriveInfo.UserTestDrive.Status)
}

func TestGetCarByIDWithoutDealership(t *testing.T) {
	uc, _, _, _ := newCarUseCaseForTest(fixtureCatalog())

	detail, err := uc.GetCarByID(context.Background(), "car-1", "")
	require.NoError(t, err)
	assert.Nil(t, detail.TestDriveInfo.Dealership)
}

func TestGetFeaturedCars(t *testing.T) {
	cars := fixtureCatalog()
	cars[3].Featured = true
	cars[7].Featured = true
	uc, _, _, _ := newCarUseCaseForTest(cars)

	featured, err := uc.GetFeaturedCars(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, featured, 2)
	for _, car := range featured {
		assert.True(t, car.Featured)
	}
}
