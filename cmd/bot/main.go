package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.etcd.io/bbolt"
	"golang.org/x/time/rate"

	"github.com/Roma7-7-7/funnel-bot/internal/config"
	"github.com/Roma7-7-7/funnel-bot/internal/dal"
	"github.com/Roma7-7-7/funnel-bot/internal/dal/migrations"
	"github.com/Roma7-7-7/funnel-bot/internal/events"
	"github.com/Roma7-7-7/funnel-bot/internal/service"
	"github.com/Roma7-7-7/funnel-bot/internal/telegram"
	"github.com/Roma7-7-7/funnel-bot/internal/templates"
	"github.com/Roma7-7-7/funnel-bot/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	db, err := bbolt.Open(conf.DBPath, 0o600, nil)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	if err = migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	store, err := dal.NewBoltDB(db)
	if err != nil {
		log.Error("Failed to init store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	clk := clock.New()

	tmpls, err := templates.NewRepository(conf.TemplatesDir, log)
	if err != nil {
		log.Error("Failed to init templates repository", "error", err)
		os.Exit(1)
	}
	if err = tmpls.Watch(ctx); err != nil {
		log.Warn("Failed to watch templates directory, hot reload disabled", "error", err)
	}

	var eventLookup service.EventLookup = events.Noop{}
	if conf.GoogleCredentialsPath != "" && conf.CalendarID != "" {
		calendar, cErr := events.NewCalendar(ctx, conf.GoogleCredentialsPath, conf.CalendarID, log)
		if cErr != nil {
			log.Error("Failed to init calendar client", "error", cErr)
			os.Exit(1)
		}
		eventLookup = calendar
	}

	registry := telegram.NewRegistry(rate.Limit(conf.SendRatePerSecond), conf.SendRatePerSecond, log)

	allocatorSvc := service.NewAllocator(store, store, log)
	funnelSvc := service.NewFunnel(store, store, tmpls, eventLookup, registry, allocatorSvc, clk, log)
	campaignsSvc := service.NewCampaigns(store, store, store, registry, clk, log)

	if err = bootstrapDefaultBot(store, conf); err != nil {
		log.Error("Failed to bootstrap default bot", "error", err)
		os.Exit(1)
	}

	bots, err := store.GetAllBots()
	if err != nil {
		log.Error("Failed to load bots", "error", err)
		os.Exit(1)
	}
	if len(bots) == 0 {
		log.Error("No bots configured: provide TELEGRAM_TOKEN or add bots to the store")
		os.Exit(1)
	}

	wg := &sync.WaitGroup{}
	started := 0
	for _, botConf := range bots {
		bot, bErr := telegram.NewBot(botConf, funnelSvc, log)
		if bErr != nil {
			log.Error("Failed to create telegram bot", "botID", botConf.ID, "error", bErr)
			continue
		}
		registry.Register(botConf, bot.Telebot())

		wg.Add(1)
		go func() {
			defer wg.Done()
			if sErr := bot.Start(ctx); sErr != nil && !errors.Is(sErr, context.Canceled) {
				log.Error("Bot stopped with error", "botID", botConf.ID, "error", sErr)
			}
		}()
		started++
	}
	if started == 0 {
		log.Error("Failed to start any bot")
		os.Exit(1)
	}

	cronLog := cronLogger{log: log.With("component", "cron")}
	scheduler := cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.SkipIfStillRunning(cronLog)))
	scheduler.Schedule(cron.Every(conf.FunnelInterval), cron.FuncJob(func() {
		if tErr := funnelSvc.RunTick(ctx); tErr != nil && !errors.Is(tErr, context.Canceled) {
			log.Error("Funnel tick failed", "error", tErr)
		}
	}))
	scheduler.Schedule(cron.Every(conf.CampaignInterval), cron.FuncJob(func() {
		if tErr := campaignsSvc.RunTick(ctx); tErr != nil && !errors.Is(tErr, context.Canceled) {
			log.Error("Campaigns tick failed", "error", tErr)
		}
	}))
	scheduler.Start()

	log.Info("Started", "bots", started)
	<-ctx.Done()

	<-scheduler.Stop().Done()
	wg.Wait()
	log.Info("Stopped")
}

// bootstrapDefaultBot seeds a single bot record from the environment on first
// run so the process is usable without manual store edits.
func bootstrapDefaultBot(store *dal.BoltDB, conf *config.Config) error {
	count, err := store.CountBots()
	if err != nil {
		return err
	}
	if count > 0 || conf.TelegramToken == "" {
		return nil
	}

	return store.PutBot(dal.Bot{
		ID:       uuid.NewString(),
		Name:     conf.DefaultBotName,
		Token:    conf.TelegramToken,
		Language: conf.DefaultBotLanguage,
	})
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
