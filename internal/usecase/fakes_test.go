package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	apperrors "vehiql/pkg/errors"
)

type fakeCarRepo struct {
	cars []entity.Car
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	for i := range f.cars {
		if f.cars[i].ID == id {
			car := f.cars[i]
			return &car, nil
		}
	}
	return nil, apperrors.NotFound("Car", nil)
}

func matchesText(car *entity.Car, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(car.Make), needle) ||
		strings.Contains(strings.ToLower(car.Model), needle) ||
		strings.Contains(strings.ToLower(car.Description), needle)
}

func (f *fakeCarRepo) Search(ctx context.Context, filter repository.CarFilter, limit, offset int) ([]entity.Car, int64, error) {
	var matched []entity.Car
	for _, car := range f.cars {
		if car.Status != entity.CarStatusAvailable {
			continue
		}
		if filter.Search != "" && !matchesText(&car, filter.Search) {
			continue
		}
		if filter.Make != "" && car.Make != filter.Make {
			continue
		}
		if filter.BodyType != "" && car.BodyType != filter.BodyType {
			continue
		}
		if filter.FuelType != "" && car.FuelType != filter.FuelType {
			continue
		}
		if filter.Transmission != "" && car.Transmission != filter.Transmission {
			continue
		}
		price, _ := car.Price.Float64()
		if filter.MinPrice > 0 && price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && price > filter.MaxPrice {
			continue
		}
		matched = append(matched, car)
	}

	switch filter.SortBy {
	case "priceAsc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price.LessThan(matched[j].Price) })
	case "priceDesc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[j].Price.LessThan(matched[i].Price) })
	default:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeCarRepo) ListFeatured(ctx context.Context, limit int) ([]entity.Car, error) {
	var featured []entity.Car
	for _, car := range f.cars {
		if car.Featured && car.Status == entity.CarStatusAvailable {
			featured = append(featured, car)
		}
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (f *fakeCarRepo) DistinctMakes(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var makes []string
	for _, car := range f.cars {
		if car.Status == entity.CarStatusAvailable && !seen[car.Make] {
			seen[car.Make] = true
			makes = append(makes, car.Make)
		}
	}
	sort.Strings(makes)
	return makes, nil
}

func (f *fakeCarRepo) DistinctBodyTypes(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var bodyTypes []string
	for _, car := range f.cars {
		if car.Status == entity.CarStatusAvailable && !seen[car.BodyType] {
			seen[car.BodyType] = true
			bodyTypes = append(bodyTypes, car.BodyType)
		}
	}
	sort.Strings(bodyTypes)
	return bodyTypes, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetOrCreateByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	if user, ok := f.users[externalID]; ok {
		return user, nil
	}
	user := &entity.User{ID: "user-" + externalID, ExternalID: externalID}
	f.users[externalID] = user
	return user, nil
}

type fakeSavedCarRepo struct {
	rows             map[string]entity.SavedCar
	conflictOnCreate bool
}

func newFakeSavedCarRepo() *fakeSavedCarRepo {
	return &fakeSavedCarRepo{rows: make(map[string]entity.SavedCar)}
}

func pairKey(userID, carID string) string {
	return fmt.Sprintf("%s:%s", userID, carID)
}

func (f *fakeSavedCarRepo) Exists(ctx context.Context, userID, carID string) (bool, error) {
	_, ok := f.rows[pairKey(userID, carID)]
	return ok, nil
}

func (f *fakeSavedCarRepo) Create(ctx context.Context, saved *entity.SavedCar) error {
	key := pairKey(saved.UserID, saved.CarID)
	if f.conflictOnCreate {
		return apperrors.Conflict("Car already in wishlist")
	}
	if _, ok := f.rows[key]; ok {
		return apperrors.Conflict("Car already in wishlist")
	}
	f.rows[key] = *saved
	return nil
}

func (f *fakeSavedCarRepo) Delete(ctx context.Context, userID, carID string) (bool, error) {
	key := pairKey(userID, carID)
	if _, ok := f.rows[key]; !ok {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}

func (f *fakeSavedCarRepo) ListByUser(ctx context.Context, userID string) ([]entity.SavedCar, error) {
	var saved []entity.SavedCar
	for _, row := range f.rows {
		if row.UserID == userID {
			saved = append(saved, row)
		}
	}
	sort.SliceStable(saved, func(i, j int) bool { return saved[i].CreatedAt.After(saved[j].CreatedAt) })
	return saved, nil
}

type fakeBookingRepo struct {
	bookings []entity.TestDriveBooking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entity.TestDriveBooking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			booking := f.bookings[i]
			return &booking, nil
		}
	}
	return nil, apperrors.NotFound("Booking", nil)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.TestDriveBooking) error {
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return apperrors.NotFound("Booking", nil)
}

func (f *fakeBookingRepo) ListByUserAndCar(ctx context.Context, userID, carID string) ([]entity.TestDriveBooking, error) {
	var result []entity.TestDriveBooking
	for _, booking := range f.bookings {
		if booking.UserID == userID && booking.CarID == carID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]entity.TestDriveBooking, error) {
	var result []entity.TestDriveBooking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type fakeDealershipRepo struct {
	dealership *entity.DealershipInfo
}

func (f *fakeDealershipRepo) Get(ctx context.Context) (*entity.DealershipInfo, error) {
	if f.dealership == nil {
		return nil, apperrors.NotFound("Dealership", nil)
	}
	return f.dealership, nil
}

type stubVisionService struct {
	text string
	err  error
}

func (s *stubVisionService) GenerateFromImage(ctx context.Context, imageData []byte, mimeType string, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}
