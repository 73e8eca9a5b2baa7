package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	checkAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_room"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_catalog"
	getDateBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_date_bookings"
	getRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_room"
	getTimetableHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_timetable"
	getUserBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_user_bookings"
	listRoomsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_rooms"
	overrideBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/override_booking"
	selectRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/select_room"
	selectSlotHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/select_slot"
	updateRoomHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/seed"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getTimetableUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_timetable"
	selectRoomUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/select_room"
	selectSlotUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/select_slot"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Строим каталог слотов и таблицу тарифов
	catalog, err := cfg.BuildCatalog()
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	policies := cfg.BuildPolicies()
	log.Info("Slot catalog built: %d slots (%s - %s)", len(catalog), cfg.Catalog.OpenTime, cfg.Catalog.CloseTime)

	// Инициализируем in-memory репозитории
	bookingRepository := bookingRepo.NewRepository()
	roomRepository := roomRepo.NewRepository()

	// Наполняем демо-данными (если включено)
	if cfg.Seed.Enabled {
		rooms, err := seed.Rooms(context.Background(), roomRepository)
		if err != nil {
			log.Fatal("Failed to seed rooms: %v", err)
		}
		if err := seed.Bookings(context.Background(), bookingRepository, rooms); err != nil {
			log.Fatal("Failed to seed bookings: %v", err)
		}
		log.Info("Demo data seeded: %d rooms", len(rooms))
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	selectSlotUseCase := selectSlotUC.NewUseCase(catalog, policies, log)
	selectRoomUseCase := selectRoomUC.NewUseCase(roomRepository, policies, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(catalog, roomRepository, bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(catalog, policies, bookingRepository, roomRepository, log)
	getTimetableUseCase := getTimetableUC.NewUseCase(catalog, roomRepository, bookingRepository, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getTimetable := getTimetableHandler.NewHandler(getTimetableUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalog, log)
	selectSlot := selectSlotHandler.NewHandler(selectSlotUseCase, log)
	selectRoom := selectRoomHandler.NewHandler(selectRoomUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	overrideBooking := overrideBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог комнат
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Доступность комнаты по слотам
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расписание на дату
	api.HandleFunc("/timetable", getTimetable.Handle).Methods(http.MethodGet)

	// Каталог временных слотов
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Кандидатский выбор ---
	protected.HandleFunc("/selection/slots", selectSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selection/rooms", selectRoom.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getDateBookings.Handle).Methods(http.MethodGet).Queries("date", "{date}")
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют тариф admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Управление каталогом комнат
	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// Административная отмена бронирования
	admin.HandleFunc("/bookings/{bookingId}", overrideBooking.Handle).Methods(http.MethodDelete)

	// CORS для браузерного фронтенда
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserID, middleware.HeaderUserTier},
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsWrapper.Handler(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
