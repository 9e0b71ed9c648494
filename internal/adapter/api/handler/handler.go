package handler

import (
	"vehiql/internal/usecase"
)

var (
	carHandler         *CarHandler
	wishlistHandler    *WishlistHandler
	bookingHandler     *BookingHandler
	imageSearchHandler *ImageSearchHandler
)

func Setup(
	carUseCase *usecase.CarUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	bookingUseCase *usecase.BookingUseCase,
	imageSearchUseCase *usecase.ImageSearchUseCase,
) {
	carHandler = NewCarHandler(carUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	imageSearchHandler = NewImageSearchHandler(imageSearchUseCase)
}

func GetCarHandler() *CarHandler {
	return carHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetImageSearchHandler() *ImageSearchHandler {
	return imageSearchHandler
}
