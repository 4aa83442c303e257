package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/jobs"
	"frontdesk/repository"
	"frontdesk/routes"
	"frontdesk/services"
	"frontdesk/services/logger"
	"frontdesk/services/notification"

	"github.com/redis/go-redis/v9"
)

const revenueCacheTTL = 10 * time.Minute

type stores struct {
	rooms    services.RoomStateRepository
	bookings services.BookingRepository
}

func openStores(cfg config.AppConfig, rdb *redis.Client, baseLogger *logger.DefaultLogger) (stores, error) {
	storeLogger := baseLogger.Named("store")

	switch cfg.StoreDriver {
	case config.StoreRedis:
		return stores{
			rooms:    repository.NewRedisRoomStateRepository(rdb, storeLogger),
			bookings: repository.NewRedisBookingRepository(rdb, storeLogger),
		}, nil
	case config.StorePostgres, config.StoreSQLite:
		db, err := config.ConnectDB(cfg)
		if err != nil {
			return stores{}, err
		}
		if err := repository.Migrate(db); err != nil {
			return stores{}, err
		}
		return stores{
			rooms:    repository.NewGormRoomStateRepository(db, storeLogger),
			bookings: repository.NewGormBookingRepository(db, storeLogger),
		}, nil
	default:
		rooms, err := repository.NewFileRoomStateRepository(cfg.StoreDir, storeLogger)
		if err != nil {
			return stores{}, err
		}
		bookings, err := repository.NewFileBookingRepository(cfg.StoreDir, storeLogger)
		if err != nil {
			return stores{}, err
		}
		return stores{rooms: rooms, bookings: bookings}, nil
	}
}

func main() {
	config.LoadEnv()
	cfg := config.Load()
	baseLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	router, m, c := config.InitApp(cfg)
	notifier := notification.NewMelodyService(m)

	var rdb *redis.Client
	var cache services.Cache
	if cfg.UsesRedis() {
		var err error
		rdb, err = config.ConnectRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		cache = services.NewRedisCache(rdb, revenueCacheTTL)
	}

	st, err := openStores(cfg, rdb, baseLogger)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	ctx := context.Background()
	pricing := services.NewPricingService(cfg.VatRate)

	rooms := services.NewRoomStateService(services.RoomStateServiceOptions{
		Repo:     st.rooms,
		Notifier: notifier,
		Logger:   baseLogger.Named("rooms"),
	})
	if err := rooms.Load(ctx); err != nil {
		log.Fatalf("Failed to load room board: %v", err)
	}

	bookings := services.NewBookingService(services.BookingServiceOptions{
		Repo:     st.bookings,
		Pricing:  pricing,
		Cache:    cache,
		Notifier: notifier,
		Logger:   baseLogger.Named("bookings"),
	})
	if err := bookings.Load(ctx); err != nil {
		log.Fatalf("Failed to load bookings: %v", err)
	}

	revenue := services.NewRevenueService(services.RevenueServiceOptions{
		Bookings: bookings,
		Pricing:  pricing,
		Cache:    cache,
		Logger:   baseLogger.Named("revenue"),
	})
	invoices := services.NewInvoiceService(services.InvoiceServiceOptions{
		Business: cfg.Business,
		Logger:   baseLogger.Named("invoice"),
	})

	rollover := jobs.NewDayRollover(notifier, baseLogger.Named("cron"), nil)
	if err := config.InitCronJobs(c, rollover, baseLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.Deps{
		Rooms:       rooms,
		Bookings:    bookings,
		Pricing:     pricing,
		Revenue:     revenue,
		Invoices:    invoices,
		Logger:      baseLogger.Named("http"),
		StaffSecret: cfg.StaffSecret,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("Server starting on port " + cfg.Port + "...")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	<-c.Stop().Done()
	m.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
