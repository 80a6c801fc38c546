package main

import (
	"context"
	"fmt"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/config"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and seed member types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			observability.InitLogger(cfg.ServiceName)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			db, err := repository.NewDB(ctx, cfg.DatabaseURL, repository.PoolConfig{MaxOpenConns: 1})
			if err != nil {
				return fmt.Errorf("db open failed: %w", err)
			}
			defer db.Close()

			gdb, err := repository.NewGorm(db)
			if err != nil {
				return fmt.Errorf("gorm init failed: %w", err)
			}

			if err := repository.Migrate(ctx, gdb); err != nil {
				return err
			}
			observability.Log.Info("migration complete")
			return nil
		},
	}
}

func migrateOnStart(ctx context.Context, run func(context.Context) error) {
	if err := run(ctx); err != nil {
		observability.Log.Fatal("auto migration failed", zap.Error(err))
	}
	observability.Log.Info("auto migration complete")
}
