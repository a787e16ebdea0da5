package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	emailadapter "github.com/HansLagmay/realestate-coordination-service/internal/adapter/email"
	memoryadapter "github.com/HansLagmay/realestate-coordination-service/internal/adapter/memory"
	mongoadapter "github.com/HansLagmay/realestate-coordination-service/internal/adapter/mongo"
	natsadapter "github.com/HansLagmay/realestate-coordination-service/internal/adapter/nats"
	redisadapter "github.com/HansLagmay/realestate-coordination-service/internal/adapter/redis"
	s3adapter "github.com/HansLagmay/realestate-coordination-service/internal/adapter/s3"
	"github.com/HansLagmay/realestate-coordination-service/internal/app/config"
	"github.com/HansLagmay/realestate-coordination-service/internal/notify"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/service"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

// App wires the coordination store and its services for one process.
type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      *store.Store
	dispatcher *notify.Dispatcher

	Properties   service.PropertyService
	Users        service.UserService
	Inquiries    service.InquiryService
	Appointments service.AppointmentService
	Sales        service.SaleService
	Photos       service.PhotoService
	Auth         service.AuthService

	redisClient *redis.Client
	mongoClient *mongodriver.Client
	natsConn    *nats.Conn
	broker      notify.Broker
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, storage=%s, notifier=%s", cfg.Env, cfg.Storage.Driver, cfg.Notifier.Driver)

	a := &App{cfg: cfg, log: appLogger}

	backend, err := a.buildBackend(ctx)
	if err != nil {
		return nil, err
	}
	appLogger.Infof("Storage backend initialized (%s)", cfg.Storage.Driver)

	if err := a.buildBroker(); err != nil {
		return nil, err
	}
	appLogger.Infof("Change broker initialized (%s)", cfg.Notifier.Driver)

	a.store = store.New(backend,
		store.WithBroker(a.broker),
		store.WithLogger(appLogger),
		store.WithNamespace(cfg.Storage.Namespace),
	)

	dispatcher, err := notify.NewDispatcher(a.broker, cfg.Storage.Namespace, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize change dispatcher: %w", err)
	}
	a.dispatcher = dispatcher

	var mailer emailadapter.Sender
	if cfg.SMTP.Enabled {
		mailer, err = emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
		appLogger.Info("SMTP sender initialized")
	}

	var objects service.ObjectStorage
	if cfg.MinIO.Enabled {
		photoStorage, err := s3adapter.NewPhotoStorage(cfg.MinIO, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize photo object storage: %w", err)
		}
		objects = photoStorage
		appLogger.Info("Photo object storage initialized")
	}

	a.Properties = service.NewPropertyService(a.store, appLogger)
	a.Users = service.NewUserService(a.store, appLogger)
	a.Inquiries = service.NewInquiryService(a.store, mailer, appLogger)
	a.Appointments = service.NewAppointmentService(a.store, appLogger)
	a.Sales = service.NewSaleService(a.store, appLogger)
	a.Photos = service.NewPhotoService(a.store, objects, appLogger)
	a.Auth = service.NewAuthService(a.store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, appLogger)
	appLogger.Info("Services initialized")

	if cfg.SeedData {
		seeded, err := a.Users.SeedDefaults(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to seed default accounts: %w", err)
		}
		if seeded {
			appLogger.Info("Default accounts seeded")
		}
	}

	return a, nil
}

// Store exposes the record store for consumers embedding the App.
func (a *App) Store() *store.Store {
	return a.store
}

// OnChange registers a consumer for collection change events and returns a
// removal func.
func (a *App) OnChange(fn notify.Consumer) func() {
	return a.dispatcher.AddConsumer(fn)
}

// Run blocks until SIGINT/SIGTERM, then shuts everything down.
func (a *App) Run() {
	remove := a.OnChange(func(key string, value []byte) {
		a.log.Debugf("Collection changed: %s (%d bytes)", key, len(value))
	})
	defer remove()

	a.log.Info("Coordination service running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	received := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down...", received)

	a.Close()
}

func (a *App) Close() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.dispatcher.Close()
	if a.broker != nil {
		if err := a.broker.Close(); err != nil {
			a.log.Errorf("Error closing change broker: %v", err)
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		}
	}
	if a.natsConn != nil && !a.natsConn.IsClosed() {
		a.natsConn.Close()
	}

	a.log.Info("Coordination service shut down")
}

func (a *App) buildBackend(ctx context.Context) (storage.Backend, error) {
	switch a.cfg.Storage.Driver {
	case "memory", "":
		return memoryadapter.NewBackend(), nil
	case "redis":
		client, err := a.redis(ctx)
		if err != nil {
			return nil, err
		}
		return redisadapter.NewBackend(client), nil
	case "mongo":
		client, err := mongoadapter.NewClient(ctx, a.cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
		}
		a.mongoClient = client
		return mongoadapter.NewBackend(client, a.cfg.Mongo.Database), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) buildBroker() error {
	switch a.cfg.Notifier.Driver {
	case "memory", "":
		a.broker = memoryadapter.NewBus()
	case "redis":
		client, err := a.redis(context.Background())
		if err != nil {
			return err
		}
		a.broker = redisadapter.NewBroker(client, a.cfg.Notifier.Channel, a.log)
	case "nats":
		conn, err := natsadapter.NewConnection(a.cfg.NATS)
		if err != nil {
			return err
		}
		a.natsConn = conn
		broker, err := natsadapter.NewBroker(conn, a.cfg.Notifier.Channel, a.log)
		if err != nil {
			return err
		}
		a.broker = broker
	default:
		return fmt.Errorf("unknown notifier driver %q", a.cfg.Notifier.Driver)
	}
	return nil
}

func (a *App) redis(ctx context.Context) (*redis.Client, error) {
	if a.redisClient != nil {
		return a.redisClient, nil
	}
	client, err := redisadapter.NewClient(ctx, a.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	a.redisClient = client
	return client, nil
}
