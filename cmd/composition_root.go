package cmd

import (
	"context"
	"fmt"

	httpadapter "supportbot/internal/adapters/in/http"
	"supportbot/internal/adapters/in/http/openapi"
	"supportbot/internal/adapters/out/classifier"
	"supportbot/internal/adapters/out/postgres"
	"supportbot/internal/adapters/out/postgres/orderrepo"
	"supportbot/internal/core/application/usecases/commands"
	"supportbot/internal/core/application/usecases/queries"
	"supportbot/internal/core/ports"
	"supportbot/internal/jobs"
	"supportbot/internal/pkg/health"
	"supportbot/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	classifier *classifier.Client
	health     *health.Registry
	registry   *prometheus.Registry
	metrics    *metrics.ServerMetrics
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	timeout, err := config.ClassifierTimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("classifier timeout: %w", err)
	}
	classifierClient, err := classifier.New(config.ClassifierURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("classifier client: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		classifier: classifierClient,
		health:     health.NewRegistry(ports.DependencyOrderStore, ports.DependencyIntentClassifier),
		registry:   registry,
		metrics:    metrics.NewServerMetrics(registry),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateReplyToMessageQueryHandler() (queries.ReplyToMessageQueryHandler, error) {
	return queries.NewReplyToMessageQueryHandler(c.classifier, orderrepo.NewGormOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.uowFactory)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	timeout, err := c.config.ClassifierTimeoutDuration()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(jobs.ProbeSettings{
		Schedule: c.config.ProbeSchedule,
		Timeout:  timeout,
		Probes: map[string]jobs.Prober{
			ports.DependencyOrderStore:       postgres.NewDatabaseProbe(c.gormDB),
			ports.DependencyIntentClassifier: c.classifier,
		},
		Reporters: []jobs.Reporter{
			c.health,
			jobs.ReporterFunc(c.metrics.ObserveDependency),
		},
	}, c.logger)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	document, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}

	replyHandler, err := c.CreateReplyToMessageQueryHandler()
	if err != nil {
		return nil, err
	}

	level, err := c.config.ZapLevel()
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		replyHandler,
		c.CreateCreateOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.health,
		c.metrics,
		c.logger,
	)

	router, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:   server,
		Document: document,
		Metrics:  c.metrics,
		Gatherer: c.registry,
		Logger:   c.logger,
		LogLevel: level,
	})
	if err != nil {
		return nil, err
	}
	return router, nil
}
