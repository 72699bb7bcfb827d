package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"rebuy/internal/adapter/api"
	"rebuy/internal/adapter/api/handler"
	apimiddleware "rebuy/internal/adapter/api/middleware"
	"rebuy/internal/adapter/api/router"
	"rebuy/internal/adapter/repository"
	"rebuy/internal/domain/service"
	"rebuy/internal/infrastructure/googleauth"
	"rebuy/internal/infrastructure/ratelimit"
	"rebuy/internal/infrastructure/storage"
	"rebuy/internal/infrastructure/token"
	"rebuy/internal/usecase"
	"rebuy/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	db := mongoClient.Database(cfg.MongoDatabase)

	userRepo := repository.NewMongoUserRepository(db)
	adminRepo := repository.NewMongoAdminRepository(db)
	stockRepo := repository.NewMongoStockRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	reorderRepo := repository.NewMongoReorderRepository(db)
	offerRepo := repository.NewMongoOfferRepository(db)
	feedbackRepo := repository.NewMongoFeedbackRepository(db)
	financeRepo := repository.NewMongoFinanceRepository(db)

	userTokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	adminTokens := token.NewManager(cfg.AdminJWTSecret, cfg.JWTExpiry)

	googleVerifier, err := googleauth.NewVerifier(cfg.GoogleClientID)
	if err != nil {
		log.Fatalf("Failed to initialize Google token verifier: %v", err)
	}
	defer googleVerifier.Close()

	uploads, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	paymentService := service.NewStripePaymentService(cfg.StripeSecret)
	pdfService := service.NewPDFService("ReBuy.lk")

	authUseCase := usecase.NewAuthUseCase(userRepo, userTokens, googleVerifier)
	userUseCase := usecase.NewUserUseCase(userRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, adminTokens)
	stockUseCase := usecase.NewStockUseCase(stockRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, stockRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, orderRepo, userRepo, cfg.DeliveryFee)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, stockRepo)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, orderUseCase, paymentService)
	reorderUseCase := usecase.NewReorderUseCase(reorderRepo)
	offerUseCase := usecase.NewOfferUseCase(offerRepo, stockRepo, userRepo, pdfService)
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackRepo, userRepo)
	financeUseCase := usecase.NewFinanceUseCase(financeRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, productRepo, orderRepo, stockRepo, offerRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		adminUseCase,
		stockUseCase,
		productUseCase,
		cartUseCase,
		checkoutUseCase,
		orderUseCase,
		paymentUseCase,
		reorderUseCase,
		offerUseCase,
		feedbackUseCase,
		financeUseCase,
		dashboardUseCase,
		uploads,
		mongoClient,
	)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("8M"))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(userTokens)
	adminMiddleware := apimiddleware.NewAdminMiddleware(adminTokens, adminRepo)

	limiter := ratelimit.NewRateLimiter()
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	limiter.StartCleanup(stopCleanup)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	e.Static("/uploads", uploads.BaseDir())

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
