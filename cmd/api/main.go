package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bostonsuites/internal/config"
	"bostonsuites/internal/database"
	"bostonsuites/internal/middleware"
	"bostonsuites/internal/modules/auth"
	"bostonsuites/internal/modules/booking"
	"bostonsuites/internal/modules/catalog"
	"bostonsuites/internal/modules/clients"
	"bostonsuites/internal/modules/stats"
	"bostonsuites/internal/notify"
	jwtsvc "bostonsuites/internal/pkg/jwt"
	"bostonsuites/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, roomTypeRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, clientRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	statsService := stats.NewService(bookingRepo, roomRepo)
	statsHandler := stats.NewHandler(statsService)

	clientsHandler := clients.NewHandler(clientRepo)
	notifyHandler := notify.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Boston Suites API is running"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		notifyHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			catalogHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			statsHandler.RegisterRoutes(protected)
			clientsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
