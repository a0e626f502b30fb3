package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/allocator"
	"github.com/metinatakli/airline-reservation-system/internal/config"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/metinatakli/airline-reservation-system/internal/handler"
	appmiddleware "github.com/metinatakli/airline-reservation-system/internal/middleware"
	"github.com/metinatakli/airline-reservation-system/internal/repository"
	appvalidator "github.com/metinatakli/airline-reservation-system/internal/validator"
	"github.com/metinatakli/airline-reservation-system/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "airline-reservation-api"

var (
	version = vcs.Version()
)

// BookingService is the reservation allocator as seen by the HTTP layer.
type BookingService interface {
	AttemptBooking(ctx context.Context, req allocator.BookingRequest) (*domain.Reservation, error)
	Confirm(ctx context.Context, reservationID int) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID int) (*domain.Reservation, error)
	IssueTicket(ctx context.Context, reservationID int) (*domain.Ticket, error)
	CheckIn(ctx context.Context, ticketCode string) (*domain.Ticket, error)
}

type Repositories struct {
	Aircraft     domain.AircraftRepository
	Seats        domain.SeatRepository
	Flights      domain.FlightRepository
	Passengers   domain.PassengerRepository
	Reservations domain.ReservationRepository
	Tickets      domain.TicketRepository
	Booking      domain.BookingStore
}

func NewPostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Aircraft:     repository.NewPostgresAircraftRepository(db),
		Seats:        repository.NewPostgresSeatRepository(db),
		Flights:      repository.NewPostgresFlightRepository(db),
		Passengers:   repository.NewPostgresPassengerRepository(db),
		Reservations: repository.NewPostgresReservationRepository(db),
		Tickets:      repository.NewPostgresTicketRepository(db),
		Booking:      repository.NewPostgresBookingStore(db),
	}
}

func NewMemoryRepositories(store *repository.MemoryStore) Repositories {
	return Repositories{
		Aircraft:     repository.NewMemoryAircraftRepository(store),
		Seats:        repository.NewMemorySeatRepository(store),
		Flights:      repository.NewMemoryFlightRepository(store),
		Passengers:   repository.NewMemoryPassengerRepository(store),
		Reservations: repository.NewMemoryReservationRepository(store),
		Tickets:      repository.NewMemoryTicketRepository(store),
		Booking:      store,
	}
}

type Application struct {
	*handler.HealthcheckHandler

	config         config.Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager

	aircraftRepo    domain.AircraftRepository
	seatRepo        domain.SeatRepository
	flightRepo      domain.FlightRepository
	passengerRepo   domain.PassengerRepository
	reservationRepo domain.ReservationRepository
	ticketRepo      domain.TicketRepository

	booking BookingService
}

// NewApp wires the HTTP front door. db and redisClient may be nil: without a
// database the repositories decide where data lives, and without Redis booking
// requests are not deduplicated by idempotency key.
func NewApp(
	cfg config.Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	repos Repositories,
) *Application {

	checkers := make(map[string]handler.Checker)
	if db != nil {
		checkers["database"] = db
	}
	if redisClient != nil {
		checkers["redis"] = handler.CheckerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	return &Application{
		HealthcheckHandler: handler.NewHealthcheckHandler(cfg, checkers),
		config:             cfg,
		logger:             logger,
		db:                 db,
		redis:              redisClient,
		validator:          validator,
		sessionManager:     sessionManager,
		aircraftRepo:       repos.Aircraft,
		seatRepo:           repos.Seats,
		flightRepo:         repos.Flights,
		passengerRepo:      repos.Passengers,
		reservationRepo:    repos.Reservations,
		ticketRepo:         repos.Tickets,
		booking:            allocator.New(repos.Booking, domain.NewRandomCodeGenerator(), logger),
	}
}

func Run() error {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	var (
		db    *pgxpool.Pool
		repos Repositories
	)

	switch cfg.Store {
	case config.StorePostgres:
		if cfg.Migrate {
			err = repository.Migrate(cfg.DB.DSN, cfg.MigrationsPath)
			if err != nil {
				return err
			}

			logger.Info("database migrations applied", "source", cfg.MigrationsPath)
		}

		db, err = NewDatabasePool(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		repos = NewPostgresRepositories(db)
	default:
		logger.Warn("using in-memory store, data will not survive a restart")
		repos = NewMemoryRepositories(repository.NewMemoryStore())
	}

	var (
		redisClient    redis.UniversalClient
		sessionManager *scs.SessionManager
	)

	if cfg.Redis.URL != "" {
		client, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		redisClient = client
		sessionManager = NewSessionManager(client)
	} else {
		logger.Warn("redis URL not set, sessions are kept in memory and idempotency keys are ignored")
		sessionManager = newMemorySessionManager()
	}

	app := NewApp(cfg, logger, db, redisClient, appvalidator.NewValidator(), sessionManager, repos)

	return app.run()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := newMemorySessionManager()
	sessionManager.Store = goredisstore.New(client)

	return sessionManager
}

func newMemorySessionManager() *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = memstore.New()
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg config.Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "store", app.config.Store)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowedHandler)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(appmiddleware.RecoverPanic(app.logger))
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/openapi.yaml", app.GetOpenAPIDocument)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireAdmin},
		ErrorHandlerFunc: app.invalidParameterResponse,
	})
}

func (app *Application) GetOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(api.RawSpec())
}
