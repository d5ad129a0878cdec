package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/righttool/righttool-backend/internal/seed"
	"github.com/righttool/righttool-backend/pkg/config"
	"github.com/righttool/righttool-backend/pkg/db"
	"github.com/righttool/righttool-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "delete all catalog rows before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if *reset {
			if err := seed.Reset(ctx, tx); err != nil {
				return err
			}
			logg.Info(ctx, "catalog reset")
		}
		return seed.Run(ctx, tx, logg)
	})
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
}
