package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mesa-attribution/internal/adapter/memory"
	"mesa-attribution/internal/adapter/postgres"
	"mesa-attribution/internal/adapter/usecase"
	"mesa-attribution/internal/config"
	"mesa-attribution/internal/core/attribution"
	"mesa-attribution/internal/core/port"
	"mesa-attribution/internal/db"
	"mesa-attribution/internal/demo"
	"mesa-attribution/internal/telemetry"
)

type flags struct {
	model    string
	dryRun   bool
	compare  bool
	report   bool
	days     int
	campaign string
	seed     int
	demo     int
	ids      []int64
}

// main is the entry point of the attribution runner. It loads
// configuration, sets up logging and telemetry, optionally migrates and
// seeds the database, then attributes the conversions named on the command
// line. The exit code is non-zero when any conversion failed.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stderr)).With(slog.String("env", cfg.Env))

	f, err := parseFlags(os.Args[1:], cfg.Attribution.Model)
	if err != nil {
		logger.Error("invalid arguments", slog.Any("error", err))
		exitCode = 2
		return
	}

	opts, err := cfg.Attribution.Options()
	if err != nil {
		logger.Error("invalid attribution config", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	providers, err := telemetry.NewProviders(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		return
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	var repo port.AttributionRepository
	if f.demo > 0 {
		store := memory.New()
		ds := demo.Generate(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now(), f.demo)
		f.ids = append(f.ids, store.Load(ds)...)
		logger.Info("demo dataset loaded", slog.Int("visitors", f.demo), slog.Int("conversions", len(f.ids)))
		repo = store
	} else {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if f.seed > 0 {
			ids, err := db.Seed(ctx, pool, f.seed)
			if err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("demo data seeded", slog.Int("visitors", f.seed), slog.Int("conversions", len(ids)))
			f.ids = append(f.ids, ids...)
		}
		repo = postgres.NewAttributionRepository(pool)
	}

	svc := usecase.NewAttributionUseCase(repo, logger,
		usecase.WithLookupConcurrency(cfg.Attribution.LookupConcurrency))

	if err = run(ctx, svc, f, opts, os.Stdout); err != nil {
		logger.Error("run failed", slog.Any("error", err))
		if errors.Is(err, context.Canceled) {
			exitCode = 130
		}
		return
	}
	exitCode = 0
}

func parseFlags(args []string, defaultModel string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("mesa-attribution", flag.ContinueOnError)
	fs.StringVar(&f.model, "model", defaultModel, "attribution model")
	fs.BoolVar(&f.dryRun, "dry-run", false, "compute without persisting")
	fs.BoolVar(&f.compare, "compare", false, "compute every model for each conversion without persisting")
	fs.BoolVar(&f.report, "report", false, "print accumulated campaign credit")
	fs.IntVar(&f.days, "days", 30, "report period in days, ending today")
	fs.StringVar(&f.campaign, "campaign", "", "restrict the report to one campaign")
	fs.IntVar(&f.seed, "seed", 0, "insert demo data for this many visitors and attribute its conversions")
	fs.IntVar(&f.demo, "demo", 0, "run against an in-memory store with demo data for this many visitors")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	for _, a := range fs.Args() {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return f, fmt.Errorf("conversion id %q: %w", a, err)
		}
		f.ids = append(f.ids, id)
	}
	if f.days < 1 {
		return f, fmt.Errorf("days must be positive, got %d", f.days)
	}
	return f, nil
}

// run executes the requested action and writes JSON lines to out.
func run(ctx context.Context, svc port.AttributionUseCase, f flags, opts attribution.Options, out io.Writer) error {
	enc := json.NewEncoder(out)
	var failed int

	switch {
	case f.compare:
		for _, id := range f.ids {
			results, err := svc.CompareModels(ctx, id, opts)
			if err != nil {
				failed++
				_ = enc.Encode(failure{ConversionID: id, Error: err.Error()})
				continue
			}
			for i := range results {
				if err := enc.Encode(newResultView(&results[i])); err != nil {
					return err
				}
			}
		}
	case f.dryRun:
		for _, id := range f.ids {
			r, err := svc.Compute(ctx, id, f.model, opts)
			if err != nil {
				failed++
				_ = enc.Encode(failure{ConversionID: id, Error: err.Error()})
				continue
			}
			if err := enc.Encode(newResultView(r)); err != nil {
				return err
			}
		}
	default:
		for _, item := range svc.AttributeBatch(ctx, f.ids, f.model, opts) {
			if item.Err != nil {
				failed++
				_ = enc.Encode(failure{ConversionID: item.ConversionID, Error: item.Err.Error()})
				continue
			}
			if err := enc.Encode(newResultView(item.Result)); err != nil {
				return err
			}
		}
	}

	if f.report {
		now := time.Now().UTC()
		req := port.CreditsReq{From: now.AddDate(0, 0, -f.days), To: now}
		if f.campaign != "" {
			req.CampaignID = &f.campaign
		}
		resp, err := svc.CampaignCredits(ctx, req)
		if err != nil {
			return fmt.Errorf("campaign credits: %w", err)
		}
		if err := enc.Encode(newCreditsView(resp)); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(f.ids))
	}
	return nil
}
