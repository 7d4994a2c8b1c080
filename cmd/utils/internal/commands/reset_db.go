package commands

import (
	"context"
	"fmt"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/config"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
	repo "github.com/MuammarRizal/Restaurant-web-app-v2/internal/mongo"
)

// ResetDB drops every collection used by the services. Meant for local
// development only, there is no guard.
func ResetDB(ctx context.Context, cfg *config.Config, lgr logger.Logger) error {
	baseRepo := repo.NewBaseRepo(cfg, lgr)
	if err := baseRepo.Start(ctx); err != nil {
		return fmt.Errorf("cannot start base repository: %w", err)
	}
	defer baseRepo.Stop(ctx)

	db := baseRepo.GetDatabase()

	collections := []string{"orders", "menus", "qr_codes"}
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("cannot drop collection %q: %w", name, err)
		}
		lgr.Info("dropped collection", "collection", name)
	}

	return nil
}
