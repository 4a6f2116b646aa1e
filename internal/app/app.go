package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/cache"
	"github.com/jeffleon2/draftea-dashboard/internal/gateway"
	"github.com/jeffleon2/draftea-dashboard/internal/handler"
	"github.com/jeffleon2/draftea-dashboard/internal/metrics"
	"github.com/jeffleon2/draftea-dashboard/internal/monitor"
	"github.com/jeffleon2/draftea-dashboard/internal/publisher"
	"github.com/jeffleon2/draftea-dashboard/internal/service"
	"github.com/jeffleon2/draftea-dashboard/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	Dashboard *Dashboard
	release   func()
}

// Build wires the dashboard from configuration. The returned release func
// closes the dashboard and the cache backend.
func Build(ctx context.Context, cfg *config.Config) (*Dashboard, func(), error) {
	metrics.RegisterMetrics()

	store, closeStore, err := cache.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening cache: %w", err)
	}

	client := gateway.New(cfg.Services)
	poller := service.NewPoller(cfg.Polling.Interval, cfg.Polling.MaxAttempts)
	merchantService := service.NewMerchantService(client, store)
	paymentService := service.NewPaymentService(client, store, poller)
	mon := monitor.New()

	dashboard := NewDashboard(merchantService, paymentService, client, mon, cfg.APP.SettleRefreshDelay)

	var dlq *publisher.KafkaPublisher
	if cfg.Kafka.Enabled {
		dlq = startBrokerMonitor(cfg, mon)
	}

	release := func() {
		dashboard.Close()
		if dlq != nil {
			if err := dlq.Close(); err != nil {
				logrus.Warnf("Error closing DLQ publisher: %s", err.Error())
			}
		}
		if err := closeStore(); err != nil {
			logrus.Warnf("Error closing cache: %s", err.Error())
		}
	}
	return dashboard, release, nil
}

func startBrokerMonitor(cfg *config.Config, mon *monitor.Monitor) *publisher.KafkaPublisher {
	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	topics := strings.Split(cfg.Kafka.SubscriberTopics, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")

	dlq := publisher.NewKafkaPublisher(brokers, publishTopics, cfg.Kafka.GetRetryConfig())
	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, cfg.Kafka.ConsumerGroup, dlq, cfg.Kafka.GetRetryConfig())
	mon.Start(context.Background(), consumer)
	return dlq
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg

	dashboard, release, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	a.Dashboard = dashboard
	a.release = release
	dashboard.Init(ctx)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(handler.NewDashboardHandler(dashboard))
	return nil
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	defer a.release()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Dashboard listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
