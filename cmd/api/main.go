package main

import (
	"context"
	"log"
	"os"
	"time"

	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vehiql/internal/adapter/api"
	"vehiql/internal/adapter/api/handler"
	apimiddleware "vehiql/internal/adapter/api/middleware"
	"vehiql/internal/adapter/api/router"
	"vehiql/internal/adapter/repository"
	"vehiql/internal/domain/entity"
	"vehiql/internal/infrastructure/gemini"
	"vehiql/internal/infrastructure/identity"
	"vehiql/internal/infrastructure/ratelimit"
	"vehiql/internal/usecase"
	"vehiql/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	// TranslateError maps the driver's unique-violation onto
	// gorm.ErrDuplicatedKey, which the wishlist toggle relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.Car{},
		&entity.User{},
		&entity.SavedCar{},
		&entity.TestDriveBooking{},
		&entity.DealershipInfo{},
		&entity.WorkingHour{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	verifier, err := buildVerifier(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize identity verifier: %v", err)
	}

	if cfg.GeminiAPIKey == "" {
		log.Fatalf("GEMINI_API_KEY is required")
	}
	visionClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer visionClient.Close()

	carRepo := repository.NewGormCarRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	savedCarRepo := repository.NewGormSavedCarRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	dealershipRepo := repository.NewGormDealershipRepository(db)

	carUseCase := usecase.NewCarUseCase(carRepo, userRepo, savedCarRepo, bookingRepo, dealershipRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(savedCarRepo, carRepo, userRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, carRepo, userRepo)
	imageSearchUseCase := usecase.NewImageSearchUseCase(visionClient)

	handler.Setup(carUseCase, wishlistUseCase, bookingUseCase, imageSearchUseCase)

	imageSearchLimiter := ratelimit.NewLimiter(
		cfg.ImageSearchCapacity,
		cfg.ImageSearchRefillTokens,
		time.Duration(cfg.ImageSearchRefillSeconds)*time.Second,
	)
	imageSearchLimiter.StartEvictionLoop(30*time.Minute, time.Hour)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(verifier)

	router.Setup(e, authMiddleware, imageSearchLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

func buildVerifier(ctx context.Context, cfg *config.Config) (identity.Verifier, error) {
	if cfg.AuthMode != "firebase" {
		log.Printf("Using dev JWT identity verifier")
		return identity.NewDevJWTVerifier(cfg.JWTSecret), nil
	}

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, err
	}
	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("Using Firebase identity verifier for project %s", cfg.FirebaseProject)
	return identity.NewFirebaseVerifier(authClient), nil
}
