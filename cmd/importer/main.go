package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"article_importer/internal/config"
	"article_importer/internal/domain"
	"article_importer/internal/feed"
	"article_importer/internal/logfile"
	"article_importer/internal/media"
	"article_importer/internal/publisher"
	"article_importer/internal/scheduler"
	"article_importer/internal/service"
	"article_importer/internal/storage/postgres"
	"article_importer/internal/validation"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info", nil)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var importLog *os.File
	if cfg.ImportLog != "" {
		handler, f, err := logfile.Open(cfg.ImportLog, slog.LevelInfo)
		if err != nil {
			logger.Error("failed to open import log", "error", err)
			os.Exit(1)
		}
		importLog = f
		defer importLog.Close()
		logger = setupLogger(cfg.LogLevel, handler)
	} else {
		logger = setupLogger(cfg.LogLevel, nil)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	postStore := postgres.NewPostStore(db, logger)
	categoryStore := postgres.NewCategoryStore(db)
	checkpointStore := postgres.NewCheckpointStore(db, cfg.Import.ID)
	txManager := postgres.NewTransactionManager(db)

	feedClient, err := feed.New(feed.Config{
		BaseURL:   cfg.Feed.BaseURL,
		PublicKey: cfg.Feed.PublicKey,
		SecretKey: cfg.Feed.SecretKey,
		Format:    feed.Format(cfg.Feed.Format),
		Timeout:   cfg.Feed.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to build feed client", "error", err)
		os.Exit(1)
	}

	resolver := media.NewResolver(feedClient, feedClient, media.Config{
		PhotoDir:  cfg.Media.PhotoDir,
		ScaleSize: cfg.Media.ScaleSize,
		ScaleAxis: scaleAxis(cfg.Media.ScaleAxis),
		Players:   players(cfg.Media.Players),
		Timeout:   cfg.Media.Timeout,
	}, logger)

	mode, ok := domain.ParseImportMode(cfg.Import.Mode)
	if !ok {
		logger.Error("unknown import mode", "mode", cfg.Import.Mode)
		os.Exit(1)
	}
	dateSource, ok := domain.ParseDateSource(cfg.Import.DateSource)
	if !ok {
		logger.Error("unknown date source", "date_source", cfg.Import.DateSource)
		os.Exit(1)
	}

	selector := feed.ForFeed(cfg.Import.FeedID)
	if cfg.Import.BriefID != 0 {
		selector = feed.ForBrief(cfg.Import.BriefID)
	}

	importer := service.NewImporter(
		feedClient,
		resolver,
		postStore,
		categoryStore,
		validation.NewPostValidator(),
		txManager,
		rabbitMQ,
		logger,
		service.Config{
			Mode:        mode,
			DateSource:  dateSource,
			Selector:    selector,
			State:       cfg.Import.State,
			PageSize:    cfg.Import.PageSize,
			FeedIndex:   cfg.Import.FeedIndex,
			Author:      cfg.Import.Author,
			LegacySlugs: cfg.Import.LegacySlugs,
			PicsURI:     cfg.Import.PicsURI,
		},
	)

	interval := time.Duration(cfg.Import.IntervalMinutes) * time.Minute
	if err := checkpointStore.SetInterval(context.Background(), interval); err != nil {
		logger.Error("failed to set import interval", "error", err)
		os.Exit(1)
	}

	gate := scheduler.NewGate(importer, checkpointStore, logger, cfg.Import.RunTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting article importer",
		"mode", cfg.Import.Mode,
		"interval", interval,
		"poll_interval", cfg.Import.PollInterval,
	)

	if err := gate.Start(ctx, cfg.Import.PollInterval); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string, importLog slog.Handler) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if importLog != nil {
		handler = logfile.NewFanout(handler, importLog)
	}
	return slog.New(handler)
}

func scaleAxis(s string) domain.ScaleAxis {
	if s == "y" {
		return domain.AxisY
	}
	return domain.AxisX
}

func players(cfg []config.Player) []domain.PlayerPreference {
	prefs := make([]domain.PlayerPreference, 0, len(cfg))
	for _, p := range cfg {
		prefs = append(prefs, domain.PlayerPreference{Player: p.Type, MinVersion: strconv.Itoa(p.MinVersion)})
	}
	return prefs
}
