package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clinicore/admin-api/internal/adapter"
	"github.com/clinicore/admin-api/internal/config"
	"github.com/clinicore/admin-api/internal/handler/entity"
	"github.com/clinicore/admin-api/internal/handler/health"
	"github.com/clinicore/admin-api/internal/middleware"
	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/resolve"
	"github.com/clinicore/admin-api/internal/router"
	"github.com/clinicore/admin-api/internal/schema"
	"github.com/clinicore/admin-api/internal/seed"
	notificationService "github.com/clinicore/admin-api/internal/service/notification"
	"github.com/clinicore/admin-api/internal/store"
	filestore "github.com/clinicore/admin-api/internal/store/file"
	pgstore "github.com/clinicore/admin-api/internal/store/postgres"
	"github.com/clinicore/admin-api/pkg/event"
	"github.com/clinicore/admin-api/pkg/logger"
	redisbroker "github.com/clinicore/admin-api/pkg/messaging/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	drv := newDriver(cfg)
	ctx := context.Background()
	if err := drv.Open(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer drv.Close()

	if cfg.Seed.Enabled {
		if err := seed.EnsureSeeded(ctx, drv, appLogger); err != nil {
			// Seeding is a sequence of individual inserts; a partial
			// failure leaves the inserted subset in place.
			log.Fatal().Err(err).Msg("failed to seed store")
		}
	}

	emitter := event.NewEmitter()
	if cfg.Redis.Enabled {
		zl := log.Logger
		broker, err := redisbroker.NewRedisBroker(redisbroker.Config{URL: cfg.Redis.URL}, &zl)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()
		emitter.WithBroker(broker, cfg.Redis.Channel)
	}

	resolver := resolve.New(drv)
	notifSvc := notificationService.NewService(drv, resolver, appLogger)
	emitter.Subscribe(notifSvc.HandleEvent)

	entities := schema.Entities()
	expandRefs := refExpander(resolver)

	patientAdapter := newAdapter[model.Patient](ctx, drv, model.CollectionPatients, emitter)
	doctorAdapter := newAdapter[model.Doctor](ctx, drv, model.CollectionDoctors, emitter)
	appointmentAdapter := newAdapter[model.Appointment](ctx, drv, model.CollectionAppointments, emitter)
	consultationAdapter := newAdapter[model.Consultation](ctx, drv, model.CollectionConsultations, emitter)
	treatmentAdapter := newAdapter[model.Treatment](ctx, drv, model.CollectionTreatments, emitter)
	invoiceAdapter := newAdapter[model.Invoice](ctx, drv, model.CollectionInvoices, emitter)
	paymentAdapter := newAdapter[model.Payment](ctx, drv, model.CollectionPayments, emitter)
	scheduleAdapter := newAdapter[model.Schedule](ctx, drv, model.CollectionSchedules, emitter)
	notificationAdapter := newAdapter[model.Notification](ctx, drv, model.CollectionNotifications, emitter)

	rateLimitRPS := 0.0
	if cfg.RateLimit.Enabled {
		rateLimitRPS = cfg.RateLimit.RequestsPerSecond
	}

	r := router.NewRouter(
		router.Config{
			RateLimitRPS:  rateLimitRPS,
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: cfg.Monitoring.MetricsPrefix,
		},
		health.NewHandler(drv),
		entity.NewHandler(model.CollectionPatients, patientAdapter, entities[model.CollectionPatients]),
		entity.NewHandler(model.CollectionDoctors, doctorAdapter, entities[model.CollectionDoctors]),
		entity.NewHandler(model.CollectionAppointments, appointmentAdapter, entities[model.CollectionAppointments]).WithExpander(expandRefs),
		entity.NewHandler(model.CollectionConsultations, consultationAdapter, entities[model.CollectionConsultations]).WithExpander(expandRefs),
		entity.NewHandler(model.CollectionTreatments, treatmentAdapter, entities[model.CollectionTreatments]).WithExpander(expandRefs),
		entity.NewHandler(model.CollectionInvoices, invoiceAdapter, entities[model.CollectionInvoices]).WithExpander(expandRefs),
		entity.NewHandler(model.CollectionPayments, paymentAdapter, entities[model.CollectionPayments]).WithExpander(expandRefs),
		entity.NewHandler(model.CollectionSchedules, scheduleAdapter, entities[model.CollectionSchedules]).WithExpander(expandRefs),
		entity.NewHandler(model.CollectionNotifications, notificationAdapter, entities[model.CollectionNotifications]),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	appLogger.Info(fmt.Sprintf("listening on :%d with %s store", cfg.Server.Port, cfg.Store.Driver))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newDriver(cfg *config.Config) store.Driver {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return pgstore.New(cfg.Store.Database, model.Collections())
	default:
		return filestore.New(cfg.Store.Path, model.Collections())
	}
}

func newAdapter[T any](ctx context.Context, drv store.Driver, collection string, emitter *event.Emitter) *adapter.Adapter[T] {
	a := adapter.New[T](drv, collection, emitter)
	if err := a.Load(ctx); err != nil {
		log.Fatal().Err(err).Str("collection", collection).Msg("failed to load collection")
	}
	return a
}

// refExpander resolves foreign ids to display names. Orphan references
// resolve to empty strings; integrity is not enforced at the store.
func refExpander(resolver *resolve.Resolver) entity.Expander {
	return func(c *gin.Context, rec store.Record) store.Record {
		ctx := c.Request.Context()
		if id := store.RefID(rec, "patient_id"); id != 0 {
			rec["patient_name"] = resolver.PatientName(ctx, id)
		}
		if id := store.RefID(rec, "doctor_id"); id != 0 {
			rec["doctor_name"] = resolver.DoctorName(ctx, id)
		}
		if id := store.RefID(rec, "invoice_id"); id != 0 {
			rec["invoice_number"] = resolver.InvoiceNumber(ctx, id)
		}
		return rec
	}
}
