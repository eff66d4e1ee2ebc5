package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/oficina-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/handlers"
	"github.com/BruksfildServices01/oficina-scheduler/internal/metrics"
	"github.com/BruksfildServices01/oficina-scheduler/internal/middleware"
	"github.com/BruksfildServices01/oficina-scheduler/internal/preference"
	ucAppointment "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/appointment"
	ucPreference "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/preference"
)

// Deps são os singletons montados no bootstrap.
type Deps struct {
	Repo     domain.Repository
	Prefs    *preference.DisplayPreference
	Audit    *audit.Dispatcher
	Settings ucAppointment.Settings
	Logger   zerolog.Logger

	// Registry nil desliga /metrics.
	Registry *prometheus.Registry
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	var httpMetrics *metrics.HTTPMetrics
	if deps.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(deps.Registry)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		gin.Recovery(),
		middleware.CORSMiddleware(),
	)
	if httpMetrics != nil {
		r.Use(middleware.Metrics(httpMetrics))
	}

	// ======================================================
	// USE CASES / AGENDA
	// ======================================================
	listScheduleUC := ucAppointment.NewListSchedule(deps.Repo, deps.Prefs, deps.Settings)
	dayBoardUC := ucAppointment.NewGetDayBoard(deps.Repo, deps.Prefs, deps.Settings)
	navigateUC := ucAppointment.NewNavigateSchedule(deps.Settings)

	listBranchesUC := ucAppointment.NewListBranches(deps.Repo)
	filterOptionsUC := ucAppointment.NewGetFilterOptions(deps.Repo, deps.Prefs)
	listStatusesUC := ucAppointment.NewListStatuses(deps.Prefs)

	// ======================================================
	// USE CASES / PREFERÊNCIAS
	// ======================================================
	getThemeUC := ucPreference.NewGetTheme(deps.Prefs)
	toggleThemeUC := ucPreference.NewToggleTheme(deps.Prefs, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	scheduleHandler := handlers.NewScheduleHandler(
		deps.Settings.Location,
		listScheduleUC,
		dayBoardUC,
		navigateUC,
	)

	catalogHandler := handlers.NewCatalogHandler(
		listBranchesUC,
		filterOptionsUC,
		listStatusesUC,
	)

	preferenceHandler := handlers.NewPreferenceHandler(
		getThemeUC,
		toggleThemeUC,
		httpMetrics,
	)

	r.GET("/health", handlers.Health)
	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AGENDA
		// ------------------------------
		api.GET("/schedule", scheduleHandler.List)
		api.GET("/schedule/day-board", scheduleHandler.DayBoard)
		api.GET("/schedule/navigate", scheduleHandler.Navigate)

		// ------------------------------
		// CATÁLOGO
		// ------------------------------
		api.GET("/branches", catalogHandler.Branches)
		api.GET("/filters/options", catalogHandler.FilterOptions)
		api.GET("/statuses", catalogHandler.Statuses)

		// ------------------------------
		// PREFERÊNCIAS
		// ------------------------------
		api.GET("/preferences/theme", preferenceHandler.GetTheme)
		api.POST("/preferences/theme/toggle", preferenceHandler.ToggleTheme)
	}
}
