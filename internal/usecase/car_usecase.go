package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	"vehiql/pkg/errors"
	"vehiql/pkg/logger"
)

type CarUseCase struct {
	carRepo        repository.CarRepository
	userRepo       repository.UserRepository
	savedCarRepo   repository.SavedCarRepository
	bookingRepo    repository.BookingRepository
	dealershipRepo repository.DealershipRepository
}

func NewCarUseCase(
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	savedCarRepo repository.SavedCarRepository,
	bookingRepo repository.BookingRepository,
	dealershipRepo repository.DealershipRepository,
) *CarUseCase {
	return &CarUseCase{
		carRepo:        carRepo,
		userRepo:       userRepo,
		savedCarRepo:   savedCarRepo,
		bookingRepo:    bookingRepo,
		dealershipRepo: dealershipRepo,
	}
}

type SearchCarsInput struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	MinPrice     float64
	MaxPrice     float64
	SortBy       string
	Page         int
	PageSize     int
}

// CarResponse is the wire shape of a car. Price is a plain float derived
// from the fixed-point stored value; timestamps are RFC3339.
type CarResponse struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	Mileage      int      `json:"mileage"`
	Color        string   `json:"color"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	BodyType     string   `json:"body_type"`
	Seats        *int     `json:"seats,omitempty"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func toCarResponse(car *entity.Car) CarResponse {
	price, _ := car.Price.Float64()
	return CarResponse{
		ID:           car.ID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		Price:        price,
		Mileage:      car.Mileage,
		Color:        car.Color,
		FuelType:     car.FuelType,
		Transmission: car.Transmission,
		BodyType:     car.BodyType,
		Seats:        car.Seats,
		Description:  car.Description,
		Status:       string(car.Status),
		Featured:     car.Featured,
		Images:       car.Images,
		CreatedAt:    car.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    car.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// SearchCars returns one page of AVAILABLE cars matching every facet plus
// the filter-wide total and page count. A page past the end is not an
// error; it returns an empty item list with totals intact.
func (uc *CarUseCase) SearchCars(ctx context.Context, input SearchCarsInput) ([]CarResponse, int64, int, error) {
	if input.Page < 1 {
		return nil, 0, 0, errors.BadRequest("page must be at least 1", nil)
	}
	if input.PageSize < 1 {
		return nil, 0, 0, errors.BadRequest("page size must be at least 1", nil)
	}
	if input.MinPrice < 0 || input.MaxPrice < 0 {
		return nil, 0, 0, errors.BadRequest("prices must not be negative", nil)
	}
	if input.MaxPrice > 0 && input.MinPrice > input.MaxPrice {
		return nil, 0, 0, errors.BadRequest("min price must not exceed max price", nil)
	}

	filter := repository.CarFilter{
		Search:       input.Search,
		Make:         input.Make,
		BodyType:     input.BodyType,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		SortBy:       input.SortBy,
	}

	offset := (input.Page - 1) * input.PageSize
	cars, total, err := uc.carRepo.Search(ctx, filter, input.PageSize, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	pages := int(math.Ceil(float64(total) / float64(input.PageSize)))

	items := make([]CarResponse, 0, len(cars))
	for i := range cars {
		items = append(items, toCarResponse(&cars[i]))
	}

	return items, total, pages, nil
}

func (uc *CarUseCase) GetFeaturedCars(ctx context.Context, limit int) ([]CarResponse, error) {
	if limit < 1 {
		limit = 3
	}
	cars, err := uc.carRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]CarResponse, 0, len(cars))
	for i := range cars {
		items = append(items, toCarResponse(&cars[i]))
	}
	return items, nil
}

type SearchFacets struct {
	Makes     []string `json:"makes"`
	BodyTypes []string `json:"body_types"`
}

func (uc *CarUseCase) GetSearchFacets(ctx context.Context) (*SearchFacets, error) {
	makes, err := uc.carRepo.DistinctMakes(ctx)
	if err != nil {
		return nil, err
	}
	bodyTypes, err := uc.carRepo.DistinctBodyTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &SearchFacets{Makes: makes, BodyTypes: bodyTypes}, nil
}

type BookingSummary struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	BookingDate string `json:"booking_date"`
}

type WorkingHourResponse struct {
	DayOfWeek string `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsOpen    bool   `json:"is_open"`
}

type DealershipResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	WorkingHours []WorkingHourResponse `json:"working_hours"`
}

type TestDriveInfo struct {
	UserTestDrive *BookingSummary     `json:"user_test_drive"`
	Dealership    *DealershipResponse `json:"dealership"`
}

type CarDetailResponse struct {
	CarResponse
	Wishlisted    bool          `json:"wishlisted"`
	TestDriveInfo TestDriveInfo `json:"test_drive_info"`
}

// GetCarByID composes the car with the requester's wishlist state, their
// active booking and the dealership's availability. externalUserID may be
// empty for anonymous callers; they get wishlisted=false and no booking.
func (uc *CarUseCase) GetCarByID(ctx context.Context, carID, externalUserID string) (*CarDetailResponse, error) {
	car, err := uc.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	detail := &CarDetailResponse{CarResponse: toCarResponse(car)}

	if externalUserID != "" {
		user, err := uc.userRepo.GetOrCreateByExternalID(ctx, externalUserID)
		if err != nil {
			return nil, err
		}

		wishlisted, err := uc.savedCarRepo.Exists(ctx, user.ID, car.ID)
		if err != nil {
			return nil, err
		}
		detail.Wishlisted = wishlisted

		bookings, err := uc.bookingRepo.ListByUserAndCar(ctx, user.ID, car.ID)
		if err != nil {
			return nil, err
		}
		if active := latestActiveBooking(bookings); active != nil {
			detail.TestDriveInfo.UserTestDrive = &BookingSummary{
				ID:          active.ID,
				Status:      string(active.Status),
				BookingDate: active.BookingDate.UTC().Format(time.RFC3339),
			}
		}
	}

	dealership, err := uc.dealershipRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		logger.Warn("No dealership configured; car detail served without availability")
	} else {
		detail.TestDriveInfo.Dealership = toDealershipResponse(dealership)
	}

	return detail, nil
}

func toDealershipResponse(d *entity.DealershipInfo) *DealershipResponse {
	hours := make([]WorkingHourResponse, 0, len(d.WorkingHours))
	for _, h := range d.WorkingHours {
		hours = append(hours, WorkingHourResponse{
			DayOfWeek: string(h.DayOfWeek),
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsOpen:    h.IsOpen,
		})
	}
	// Deterministic display order, Monday first.
	sort.SliceStable(hours, func(i, j int) bool {
		return entity.DayOfWeek(hours[i].DayOfWeek).Ordinal() < entity.DayOfWeek(hours[j].DayOfWeek).Ordinal()
	})

	return &DealershipResponse{
		ID:           d.ID,
		Name:         d.Name,
		Address:      d.Address,
		Phone:        d.Phone,
		Email:        d.Email,
		WorkingHours: hours,
	}
}
