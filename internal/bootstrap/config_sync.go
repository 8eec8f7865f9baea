package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CharacterCreator_Go/internal/config"
	"github.com/osse101/CharacterCreator_Go/internal/repository"
	"github.com/osse101/CharacterCreator_Go/internal/rpgclass"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

// SyncCatalog loads, validates and syncs the class catalog. Classes already
// present by name are left alone, so this is safe on every start.
func SyncCatalog(ctx context.Context, cfg *config.Config, classRepo repository.RPGClass) error {
	slog.Info(LogMsgSyncingCatalog, "path", cfg.CatalogPath)

	result, err := rpgclass.LoadAndSync(ctx, rpgclass.NewCatalogLoader(classRepo), cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if result.ClassesInserted > 0 {
		slog.Info(LogMsgCatalogSynced,
			"inserted", result.ClassesInserted,
			"skipped", result.ClassesSkipped,
			"items", result.ItemsInserted)
	} else {
		slog.Info(LogMsgCatalogUnchanged, "skipped", result.ClassesSkipped)
	}
	return nil
}

// SeedAdmin creates the configured administrator if ADMIN_* is set
func SeedAdmin(ctx context.Context, cfg *config.Config, users user.Service) error {
	if !cfg.HasAdminSeed() {
		slog.Debug(LogMsgAdminSeedSkipped)
		return nil
	}

	admin, err := users.EnsureAdmin(ctx, user.RegisterRequest{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedEnsureAdmin, err)
	}
	slog.Info(LogMsgAdminEnsured, "user_id", admin.ID, "username", admin.Username)
	return nil
}
