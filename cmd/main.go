package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thomas0124/estate-portal/internal/athome"
	"github.com/thomas0124/estate-portal/internal/config"
	"github.com/thomas0124/estate-portal/internal/db"
	"github.com/thomas0124/estate-portal/internal/i18n"
	"github.com/thomas0124/estate-portal/internal/period"
	"github.com/thomas0124/estate-portal/internal/state"
	admin_case "github.com/thomas0124/estate-portal/internal/use-cases/admin-case"
	property_case "github.com/thomas0124/estate-portal/internal/use-cases/property-case"
	task_case "github.com/thomas0124/estate-portal/internal/use-cases/task-case"

	property_dto "github.com/thomas0124/estate-portal/internal/dtos/property-dto"
	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx := context.Background()

	i18nSvc := i18n.NewInitI18nService()
	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("configuration could not be loaded")
	}

	store, err := openDatastore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open datastore")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close datastore")
		}
	}()

	appState, err := state.Load(ctx, store, cfg.UI.OwnedPropertyColor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load application state")
	}

	propertySvc := property_case.NewPropertyService(appState, athome.NewStubPriceSource())
	taskSvc := task_case.NewTaskService(appState)
	adminSvc := admin_case.NewAdminService(appState)

	lang := cfg.APP.Locale

	properties, appErr := propertySvc.ListProperties(ctx, &property_dto.PropertyListFilter{
		SortField: property_dto.SortByPropertyNumber,
		SortOrder: property_dto.SortAsc,
	})
	if appErr != nil {
		log.Fatal().Strs("messages", appErr.Messages(i18nSvc, lang)).Msg("failed to list properties")
	}

	tasks, appErr := taskSvc.ListTasks(ctx, &task_dto.TaskListFilter{})
	if appErr != nil {
		log.Fatal().Strs("messages", appErr.Messages(i18nSvc, lang)).Msg("failed to list tasks")
	}

	handlers, appErr := adminSvc.ListHandlers(ctx)
	if appErr != nil {
		log.Fatal().Strs("messages", appErr.Messages(i18nSvc, lang)).Msg("failed to list handlers")
	}

	periods := period.MonthlyPeriods(time.Now())
	monthly, appErr := taskSvc.MonthlyStatistics(ctx, periods)
	if appErr != nil {
		log.Fatal().Strs("messages", appErr.Messages(i18nSvc, lang)).Msg("failed to compute monthly statistics")
	}
	current := periods[period.CurrentMonthIndex]

	log.Info().
		Str("app", cfg.APP.Name).
		Int("properties", len(properties)).
		Int("open_tasks", len(tasks)).
		Int("handlers", len(handlers)).
		Int("settlements_this_month", monthly[current.Label].Count).
		Int64("sales_this_month", monthly[current.Label].MonthlySales).
		Msg("portal state loaded")

	for _, item := range tasks {
		log.Debug().
			Str("task_id", item.Task.ID).
			Str("property", item.Task.PropertyName).
			Int("progress", item.Progress.Progress).
			Bool("overdue", item.Overdue).
			Time("settlement", item.Task.SettlementDate).
			Msg("open task")
	}
}

func openDatastore(cfg *config.AppConfig) (db.Datastore, error) {
	if cfg.DATASTORE.Driver == "redis" {
		return db.NewRedisStore(cfg.DATASTORE.Redis.Addr, cfg.DATASTORE.Redis.Password, 0)
	}
	return db.NewSQLiteStore(cfg.DATASTORE.SQLite.Path)
}
