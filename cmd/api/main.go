package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "cleaning_coop/docs"
	"cleaning_coop/internal/adapter/http/handlers"
	"cleaning_coop/internal/adapter/http/middleware"
	"cleaning_coop/internal/adapter/http/routes"
	"cleaning_coop/internal/adapter/persistence/repository"
	"cleaning_coop/internal/config"
	"cleaning_coop/internal/infrastructure/cache"
	"cleaning_coop/internal/infrastructure/database"
	"cleaning_coop/internal/infrastructure/events"
	"cleaning_coop/internal/infrastructure/messaging"
	"cleaning_coop/internal/infrastructure/pdf"
	"cleaning_coop/internal/usecase"
	"cleaning_coop/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cleaning Cooperative Service API
// @version         1.0
// @description     Service requests, company assignment and estimates for a cleaning cooperative, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := config.Load()
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		log.Fatalf("JWT_SECRET is required when AUTH_ENABLED is true")
	}

	ddb := database.ConnectDynamoDB(ctx, cfg.AWS)
	tables := repository.Tables{
		Requests:    cfg.AWS.RequestsTable,
		Assignments: cfg.AWS.AssignmentsTable,
		Companies:   cfg.AWS.CompaniesTable,
		Counters:    cfg.AWS.CountersTable,
	}
	requestRepo := repository.NewServiceRequestDynamoRepository(ddb, tables)
	assignmentRepo := repository.NewAssignmentDynamoRepository(ddb, tables)
	companyRepo := repository.NewCompanyDynamoRepository(ddb, tables)
	ids := repository.NewCounterDynamoRepository(ddb, tables)

	bus := events.NewEventBus()
	viewCache := newViewCache(ctx, cfg, bus)
	var publisher *messaging.RabbitPublisher
	if cfg.AMQP.URL != "" {
		p, err := messaging.NewRabbitPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			log.Printf("RabbitMQ publisher not configured: %v", err)
		} else {
			publisher = p
			bus.Subscribe("rabbitmq", publisher.Handle)
		}
	}
	log.Printf("Change events fan out to %d subscribers", bus.Len())

	var renderer interfaces.IEstimateRenderer
	if client, err := pdf.NewRendererClient(cfg.PDF.URL, cfg.PDF.Timeout); err != nil {
		log.Printf("PDF renderer not configured: %v", err)
	} else {
		renderer = client
	}

	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, ids, bus)
	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo, requestRepo, companyRepo, ids, bus)
	companyUseCase := usecase.NewCompanyUseCase(companyRepo, requestRepo, ids, bus)
	estimateUseCase := usecase.NewEstimateUseCase(requestRepo, renderer, bus)

	err := routes.Run(ctx, cfg.Port, routes.Dependencies{
		ServiceRequests: handlers.NewServiceRequestHandler(requestUseCase),
		Assignments:     handlers.NewAssignmentHandler(assignmentUseCase),
		Companies:       handlers.NewCompanyHandler(companyUseCase),
		Estimates:       handlers.NewEstimateHandler(estimateUseCase),
		Auth:            middleware.NewAuth(cfg.Auth.Secret, cfg.Auth.Enabled),
		Cache:           viewCache,
		CachePrefix:     cfg.Cache.Prefix,
		CacheTTL:        cfg.Cache.TTL,
	})
	if publisher != nil {
		if cerr := publisher.Close(); cerr != nil {
			log.Printf("RabbitMQ publisher close failed: %v", cerr)
		}
	}
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// newViewCache picks redis when reachable and falls back to an in-process
// store. The invalidator is subscribed to bus either way.
func newViewCache(ctx context.Context, cfg config.Config, bus *events.EventBus) cache.Store {
	if !cfg.Cache.Enabled {
		return nil
	}
	var store cache.Store
	if rdb := cache.NewRedisClient(ctx, cfg.Redis); rdb != nil {
		log.Printf("View cache backed by redis addr=%s", cfg.Redis.Addr)
		store = cache.NewRedisStore(rdb)
	} else {
		log.Printf("View cache running in-process")
		store = cache.NewMemoryStore()
	}
	bus.Subscribe("view-cache", cache.NewInvalidator(store, cfg.Cache.Prefix).Handle)
	return store
}
