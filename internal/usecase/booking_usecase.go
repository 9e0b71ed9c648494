package usecase

import (
	"context"
	"time"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	"vehiql/pkg/errors"
	"vehiql/pkg/logger"

	"github.com/google/uuid"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	userRepo    repository.UserRepository
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
	}
}

// latestActiveBooking picks the pair's single "active" booking from an
// arbitrary set of rows: statuses PENDING/CONFIRMED/COMPLETED only, latest
// createdAt wins, highest id breaks exact ties. Derived at read time; the
// store never holds an is-active flag.
func latestActiveBooking(bookings []entity.TestDriveBooking) *entity.TestDriveBooking {
	var active *entity.TestDriveBooking
	for i := range bookings {
		b := &bookings[i]
		if !b.Status.IsActive() {
			continue
		}
		if active == nil ||
			b.CreatedAt.After(active.CreatedAt) ||
			(b.CreatedAt.Equal(active.CreatedAt) && b.ID > active.ID) {
			active = b
		}
	}
	return active
}

// ActiveBooking resolves the requester's active booking for a car, or nil
// when every booking for the pair is CANCELLED or none exist.
func (u *BookingUseCase) ActiveBooking(ctx context.Context, userID, carID string) (*entity.TestDriveBooking, error) {
	bookings, err := u.bookingRepo.ListByUserAndCar(ctx, userID, carID)
	if err != nil {
		return nil, err
	}
	return latestActiveBooking(bookings), nil
}

type BookTestDriveInput struct {
	CarID       string `json:"car_id" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
}

type BookingResponse struct {
	ID          string       `json:"id"`
	CarID       string       `json:"car_id"`
	Car         *CarResponse `json:"car,omitempty"`
	BookingDate string       `json:"booking_date"`
	StartTime   string       `json:"start_time"`
	EndTime     string       `json:"end_time"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"created_at"`
}

func toBookingResponse(b *entity.TestDriveBooking, includeCar bool) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		CarID:       b.CarID,
		BookingDate: b.BookingDate.UTC().Format("2006-01-02"),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if includeCar && b.Car.ID != "" {
		car := toCarResponse(&b.Car)
		resp.Car = &car
	}
	return resp
}

// BookTestDrive creates a PENDING booking for an AVAILABLE car. A user who
// already holds an active booking for the car cannot book again.
func (u *BookingUseCase) BookTestDrive(ctx context.Context, externalUserID string, input BookTestDriveInput) (*BookingResponse, error) {
	if externalUserID == "" {
		return nil, errors.Unauthorized("Sign in to book a test drive", nil)
	}

	car, err := u.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car.Status != entity.CarStatusAvailable {
		return nil, errors.BadRequest("Car is not available for test drives", nil)
	}

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		return nil, errors.BadRequest("booking date must be YYYY-MM-DD", err)
	}

	user, err := u.userRepo.GetOrCreateByExternalID(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	existing, err := u.ActiveBooking(ctx, user.ID, car.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("You already have a booking for this car", nil)
	}

	booking := &entity.TestDriveBooking{
		ID:          uuid.NewString(),
		CarID:       car.ID,
		UserID:      user.ID,
		BookingDate: bookingDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      entity.BookingStatusPending,
	}
	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Booked test drive %s for car %s, user %s", booking.ID, car.ID, user.ID)
	resp := toBookingResponse(booking, false)
	return &resp, nil
}

// CancelBooking cancels one of the requester's own bookings. COMPLETED and
// already-CANCELLED bookings cannot be cancelled.
func (u *BookingUseCase) CancelBooking(ctx context.Context, externalUserID, bookingID string) error {
	if externalUserID == "" {
		return errors.Unauthorized("Sign in to cancel a booking", nil)
	}

	user, err := u.userRepo.GetOrCreateByExternalID(ctx, externalUserID)
	if err != nil {
		return err
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != user.ID {
		return errors.Forbidden("You can only cancel your own bookings", nil)
	}

	switch booking.Status {
	case entity.BookingStatusCancelled:
		return errors.BadRequest("Booking is already cancelled", nil)
	case entity.BookingStatusCompleted:
		return errors.BadRequest("Completed bookings cannot be cancelled", nil)
	}

	return u.bookingRepo.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled)
}

// GetUserBookings returns the requester's bookings, newest first.
func (u *BookingUseCase) GetUserBookings(ctx context.Context, externalUserID string) ([]BookingResponse, error) {
	if externalUserID == "" {
		return nil, errors.Unauthorized("Sign in to view bookings", nil)
	}

	user, err := u.userRepo.GetOrCreateByExternalID(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingResponse(&bookings[i], true))
	}
	return items, nil
}
