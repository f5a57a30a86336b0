package main

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/storage"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/ui"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/pkg/config"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/pkg/logger"
)

func main() {
	// Load configuration (.env is honored when present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting teddystore", appConfig.LogConfig()...)

	// Persistence boundary: one JSON snapshot on local disk
	snapshotFile := storage.NewSnapshotFile(appConfig.Storage.Path, log)
	if appConfig.Storage.Reset {
		if err := snapshotFile.Remove(); err != nil {
			log.Fatal("Failed to reset snapshot", zap.Error(err))
		}
		log.Info("Snapshot reset, reseeding from built-in catalog")
	}

	initial, err := snapshotFile.Load()
	switch {
	case err == nil:
		log.Info("State restored from snapshot",
			zap.String("path", snapshotFile.Path()),
			zap.Int("products", len(initial.Products)),
			zap.Int("orders", len(initial.Orders)))
	case errors.Is(err, storage.ErrNoSnapshot):
		initial, err = storage.SeedSnapshot()
		if err != nil {
			log.Fatal("Failed to load seed catalog", zap.Error(err))
		}
		log.Info("No snapshot found, seeded built-in catalog",
			zap.Int("products", len(initial.Products)))
	default:
		// A corrupt snapshot falls back to the seed catalog rather
		// than blocking startup; the broken file is overwritten on
		// the next mutation.
		log.Warn("Snapshot unreadable, falling back to seed catalog", zap.Error(err))
		initial, err = storage.SeedSnapshot()
		if err != nil {
			log.Fatal("Failed to load seed catalog", zap.Error(err))
		}
	}

	st := store.New(initial, snapshotFile, log)
	ui.New(st, os.Stdin, os.Stdout, log).Run()
}
