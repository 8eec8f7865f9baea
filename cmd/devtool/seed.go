package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/osse101/CharacterCreator_Go/internal/bootstrap"
	"github.com/osse101/CharacterCreator_Go/internal/config"
	"github.com/osse101/CharacterCreator_Go/internal/database"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

func openRepositories(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, *bootstrap.Repositories, error) {
	PrintInfo("Connecting to database: %s", redactPassword(cfg.GetDBConnString()))
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: cfg.DBMaxConns})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, bootstrap.InitializeRepositories(pool), nil
}

func newSeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Sync the class catalog and the configured administrator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Usage: "catalog YAML path; CATALOG_PATH when empty"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if path := c.String("catalog"); path != "" {
				cfg.CatalogPath = path
			}

			pool, repos, err := openRepositories(c.Context, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			PrintInfo("Syncing %s...", cfg.CatalogPath)
			if err := bootstrap.SyncCatalog(c.Context, cfg, repos.Class); err != nil {
				return err
			}
			if cfg.HasAdminSeed() {
				if err := bootstrap.SeedAdmin(c.Context, cfg, user.NewService(repos.User, user.DefaultCacheConfig())); err != nil {
					return err
				}
				PrintSuccess("Administrator %s ensured", cfg.AdminUsername)
			} else {
				PrintWarning("ADMIN_* not set, skipping administrator")
			}
			PrintSuccess("Seed completed successfully")
			return nil
		},
	}
}
