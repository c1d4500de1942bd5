package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kilianp07/evroute/api/routes"
	"github.com/kilianp07/evroute/config"
	corehistory "github.com/kilianp07/evroute/core/history"
	coremetrics "github.com/kilianp07/evroute/core/metrics"
	"github.com/kilianp07/evroute/core/planner"
	"github.com/kilianp07/evroute/core/search"
	infrahistory "github.com/kilianp07/evroute/infra/history"
	"github.com/kilianp07/evroute/infra/logger"
	"github.com/kilianp07/evroute/infra/metrics"
	"github.com/kilianp07/evroute/infra/stations"
	"github.com/kilianp07/evroute/infra/vehicle"
	"github.com/kilianp07/evroute/internal/eventbus"
)

// Service wires the planning engine, its collaborators and the HTTP API.
type Service struct {
	handler     *routes.Handler
	bus         eventbus.EventBus
	sink        coremetrics.Sink
	log         logger.Logger
	listen      string
	promEnabled bool
	promPort    string

	subscriber *vehicle.Subscriber
	sqlite     *infrahistory.SQLiteStore
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var store corehistory.Store
	var sqliteStore *infrahistory.SQLiteStore
	switch cfg.History.Backend {
	case "sqlite":
		var err error
		sqliteStore, err = infrahistory.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		store = sqliteStore
	default:
		store = corehistory.NewMemoryStore()
	}

	statusStore := vehicle.NewStatusStore()
	var sub *vehicle.Subscriber
	if cfg.MQTT.Enabled() {
		var err error
		sub, err = vehicle.NewSubscriber(cfg.MQTT, statusStore)
		if err != nil {
			return nil, fmt.Errorf("telemetry subscriber: %w", err)
		}
	}

	bus := eventbus.New()
	handler := &routes.Handler{
		Assembler: planner.NewAssembler(cfg.Planner),
		Stations:  stations.NewFileSource(cfg.Stations.File),
		Resolver:  search.NewStaticResolver(search.DefaultDestinations()),
		History:   store,
		Status:    statusStore,
		Bus:       bus,
	}

	return &Service{
		handler:     handler,
		bus:         bus,
		sink:        sink,
		log:         logg,
		listen:      cfg.HTTP.Listen,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
		subscriber:  sub,
		sqlite:      sqliteStore,
	}, nil
}

// Run starts the API server and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.listen, Handler: s.handler.NewMux()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	s.log.Infof("api listening on %s", s.listen)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases external resources.
func (s *Service) Close() error {
	if s.subscriber != nil {
		s.subscriber.Close()
	}
	s.bus.Close()
	if s.sqlite != nil {
		return s.sqlite.Close()
	}
	return nil
}
