// Command seeder loads demo users and roommate profiles from a YAML fixture
// file. It is meant for local development, not production data.
//
// Flags:
//
//	--fixtures  path to the fixture YAML file (default: fixtures/demo.yaml)
//	--dry-run   validate fixtures without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/campusshare/roommate-backend/internal/adapter/postgres"
	"github.com/campusshare/roommate-backend/internal/adapter/postgres/roommate"
	"github.com/campusshare/roommate-backend/internal/adapter/postgres/user"
	"github.com/campusshare/roommate-backend/internal/app"
	"github.com/campusshare/roommate-backend/internal/app/seeder"
	"github.com/campusshare/roommate-backend/internal/config"
)

func main() {
	fixturesFlag := flag.String("fixtures", "fixtures/demo.yaml", "path to fixture YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate fixtures without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*fixturesFlag)
	if err != nil {
		logger.Error("load fixtures", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, user.New(pool), roommate.New(pool), postgres.NewTxManager(pool), *seederCfg)
	res, err := s.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}
	if res.Invalid > 0 {
		logger.Warn("seeding completed with invalid fixtures", slog.Int("invalid", res.Invalid))
		pool.Close()
		os.Exit(1)
	}
}
