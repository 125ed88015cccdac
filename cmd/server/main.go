package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/config"
	"github.com/mamadbah2/kolamku/internal/repository"
	"github.com/mamadbah2/kolamku/internal/repository/memory"
	"github.com/mamadbah2/kolamku/internal/repository/mongodb"
	"github.com/mamadbah2/kolamku/internal/repository/sheets"
	"github.com/mamadbah2/kolamku/internal/scheduler"
	"github.com/mamadbah2/kolamku/internal/server/handlers"
	"github.com/mamadbah2/kolamku/internal/server/router"
	"github.com/mamadbah2/kolamku/internal/service/catalog"
	"github.com/mamadbah2/kolamku/internal/service/planning"
	"github.com/mamadbah2/kolamku/pkg/clients/suppliers"
	"github.com/mamadbah2/kolamku/pkg/logger"
)

// Base prices for the mock price history, in rupiah per kg.
var mockBasePrices = map[string]float64{
	"pakan": 11500,
	"lele":  23000,
	"nila":  30000,
}

const mockPriceSwing = 0.03

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var planRepo repository.PlanRepository = memory.NewPlanRepository()
	if cfg.MongoDB.URI != "" {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		planRepo = mongoRepo
		baseLogger.Info("plan sets stored in mongodb", zap.String("db", cfg.MongoDB.DBName))
	} else {
		baseLogger.Warn("mongodb uri missing, plan sets kept in memory")
	}

	var (
		prices   planning.PriceHistoryProvider
		recorder handlers.PriceRecorder
	)
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sheetPrices := planning.NewSheetsPriceHistory(sheetsRepo, cfg.Sheets.PriceRange, logger.Named(baseLogger, "svc.prices"))
		prices, recorder = sheetPrices, sheetPrices
		baseLogger.Info("price history read from google sheets", zap.String("range", cfg.Sheets.PriceRange))
	} else {
		prices = planning.NewRandomWalkPriceHistory(cfg.Planning.PriceSeed, mockBasePrices, cfg.Planning.PricePoints, mockPriceSwing)
		baseLogger.Warn("google sheets not configured, using mock price history")
	}

	var supplierClient suppliers.Client
	if cfg.Suppliers.Enabled() {
		supplierClient = suppliers.NewClient(cfg.Suppliers)
	} else {
		baseLogger.Warn("supplier api base url missing, serving built-in catalog")
	}
	supplierCatalog := catalog.New(catalog.MockSuppliers(), supplierClient, catalog.Options{
		ProductTypes: cfg.Suppliers.ProductTypes,
		JenisIkan:    cfg.Suppliers.JenisIkan,
		Kota:         cfg.Suppliers.Kota,
	}, logger.Named(baseLogger, "svc.catalog"))

	generator := planning.NewGenerator(supplierCatalog, prices, planning.GrowthRateEstimator{}, logger.Named(baseLogger, "svc.planning"))

	engine := router.New(router.Handlers{
		Plans:     handlers.NewPlanHandler(generator, planRepo, logger.Named(baseLogger, "handlers.plans")),
		Suppliers: handlers.NewSupplierHandler(supplierCatalog, logger.Named(baseLogger, "handlers.suppliers")),
		Analysis:  handlers.NewAnalysisHandler(prices, recorder, logger.Named(baseLogger, "handlers.analysis")),
	}, logger.Named(baseLogger, "router"))

	if supplierClient != nil {
		sched := scheduler.NewScheduler(cfg.Suppliers, supplierCatalog, logger.Named(baseLogger, "scheduler"))
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
