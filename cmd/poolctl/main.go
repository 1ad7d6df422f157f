// poolctl inspects and maintains the persisted map pool cache.
//
//	poolctl [-backend file|redis|postgres|memory] status [stage]
//	poolctl show <stage>
//	poolctl warm <stage|all>
//	poolctl purge <stage>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ocbs-be/internal/bootstrap"
	"ocbs-be/internal/config"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/repository/contract"
	"ocbs-be/pkg/database"
	pktNats "ocbs-be/pkg/nats"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: poolctl [-backend name] status|show|warm|purge <stage>")
	flag.PrintDefaults()
}

func main() {
	cfg := config.Load()

	backend := flag.String("backend", cfg.Pool.CacheBackend, "pool cache backend")
	flag.Usage = usage
	flag.Parse()
	cfg.Pool.CacheBackend = *backend

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, flag.Arg(0), flag.Args()[1:]); err != nil {
		color.Red("poolctl: %v", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (contract.PoolCacheRepository, error) {
	var db *gorm.DB
	if cfg.Pool.CacheBackend == "postgres" {
		var err error
		db, err = database.NewGormDBFromDSN(cfg.Database.Connection, true)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
	}
	return bootstrap.NewPoolCacheRepository(cfg, db)
}

// stagesArg resolves the stage argument. "all" and a missing argument (when
// allowed) select every stage.
func stagesArg(args []string, allowAll bool) ([]entity.Stage, error) {
	if len(args) == 0 || args[0] == "all" {
		if !allowAll {
			return nil, errors.New("a single stage is required")
		}
		return entity.AllStages(), nil
	}
	stage, err := entity.ParseStageSlug(args[0])
	if err != nil {
		return nil, err
	}
	return []entity.Stage{stage}, nil
}

func run(ctx context.Context, cfg *config.Config, cmd string, args []string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	switch cmd {
	case "status":
		stages, err := stagesArg(args, true)
		if err != nil {
			return err
		}
		infos := make([]*entity.PoolCacheInfo, 0, len(stages))
		for _, s := range stages {
			info, err := store.Describe(ctx, s)
			if err != nil {
				return fmt.Errorf("describe %s: %w", s.Slug(), err)
			}
			infos = append(infos, info)
		}
		renderStatus(os.Stdout, infos, time.Now())

	case "show":
		stages, err := stagesArg(args, false)
		if err != nil {
			return err
		}
		pool, err := store.Load(ctx, stages[0])
		if err != nil {
			return err
		}
		if pool == nil {
			color.Yellow("%s is not cached, run: poolctl warm %s", stages[0].Slug(), stages[0].Slug())
			return nil
		}
		renderPool(os.Stdout, pool)

	case "warm":
		stages, err := stagesArg(args, true)
		if err != nil {
			return err
		}
		log := logger.NewZapLogger(cfg.App.LogFilePath, false)
		defer log.Sync()

		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			color.Yellow("NATS unavailable, events will not be published: %v", err)
			natsPub = nil
		} else {
			defer natsPub.Close()
		}

		svc := bootstrap.NewMapPoolService(cfg, store, log, natsPub)
		var failed int
		for _, s := range stages {
			start := time.Now()
			pool, err := svc.GetPool(ctx, s)
			if err != nil {
				// Stages without a pick list are skipped when warming everything.
				if len(stages) > 1 && errors.Is(err, entity.ErrNoPickList) {
					color.Yellow("%-14s no pick list", s.Slug())
					continue
				}
				color.Red("%-14s %v", s.Slug(), err)
				failed++
				continue
			}
			color.Green("%-14s %d picks in %s", s.Slug(), pool.Count(), time.Since(start).Round(time.Millisecond))
		}
		if failed > 0 {
			return fmt.Errorf("%d stage(s) failed", failed)
		}

	case "purge":
		stages, err := stagesArg(args, false)
		if err != nil {
			return err
		}
		if err := store.Delete(ctx, stages[0]); err != nil {
			return err
		}
		color.Green("purged %s", stages[0].Slug())

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
