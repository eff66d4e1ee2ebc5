// Package app monta os singletons compartilhados pelo servidor HTTP e pelos
// comandos de terminal.
package app

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/oficina-scheduler/internal/audit"
	"github.com/BruksfildServices01/oficina-scheduler/internal/config"
	"github.com/BruksfildServices01/oficina-scheduler/internal/db"
	"github.com/BruksfildServices01/oficina-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/oficina-scheduler/internal/logger"
	"github.com/BruksfildServices01/oficina-scheduler/internal/preference"
	"github.com/BruksfildServices01/oficina-scheduler/internal/routes"
	"github.com/BruksfildServices01/oficina-scheduler/internal/seed"
	"github.com/BruksfildServices01/oficina-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/appointment"
)

type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Location *time.Location

	Store *repository.AppointmentStore
	Prefs *preference.DisplayPreference
	Audit *audit.Dispatcher

	Registry *prometheus.Registry

	redis *redis.Client
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Logger:   log,
		Location: timezone.Location(cfg.ShopTimezone),
	}

	// --------------------------------------------------
	// Agenda (seed lido uma vez)
	// --------------------------------------------------
	src, err := seed.NewSource(cfg.SeedSource, seed.S3Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.AWSEndpointURL,
	})
	if err != nil {
		return nil, err
	}

	ds, err := seed.Load(ctx, src, time.Now().In(a.Location))
	if err != nil {
		return nil, err
	}

	a.Store, err = repository.NewAppointmentStore(ds.Appointments, ds.Branches)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("source", src.Name()).
		Int("appointments", len(ds.Appointments)).
		Int("branches", len(ds.Branches)).
		Msg("appointment store loaded")

	// --------------------------------------------------
	// Preferência de tema
	// --------------------------------------------------
	a.redis, err = db.NewRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var store preference.Store = preference.NewMemoryStore()
	if a.redis != nil {
		store = preference.NewRedisStore(a.redis, preference.DefaultKeyPrefix)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, theme preference kept in memory")
	}

	a.Prefs, err = preference.Load(ctx, store)
	if err != nil {
		a.closeRedis()
		return nil, err
	}

	a.Audit = audit.NewDispatcher(audit.New(log))

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return a, nil
}

func (a *App) Settings() ucAppointment.Settings {
	return ucAppointment.Settings{
		Location:    a.Location,
		FirstSlot:   a.Config.DayFirstSlot,
		LastSlot:    a.Config.DayLastSlot,
		Granularity: a.Config.SlotGranularity,
	}
}

func (a *App) RouteDeps() routes.Deps {
	return routes.Deps{
		Repo:     a.Store,
		Prefs:    a.Prefs,
		Audit:    a.Audit,
		Settings: a.Settings(),
		Logger:   a.Logger,
		Registry: a.Registry,
	}
}

// Close esvazia a fila de auditoria antes de fechar o redis.
func (a *App) Close() {
	if a.Audit != nil {
		a.Audit.Close()
	}
	a.closeRedis()
}

func (a *App) closeRedis() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("redis close")
	}
}
