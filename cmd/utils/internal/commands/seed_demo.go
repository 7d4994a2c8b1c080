package commands

import (
	"context"
	"fmt"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/config"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/menu"
	repo "github.com/MuammarRizal/Restaurant-web-app-v2/internal/mongo"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// SeedDemo inserts a small set of menus and a sample order so the
// boards have something to show on a fresh database.
func SeedDemo(ctx context.Context, cfg *config.Config, lgr logger.Logger) error {
	baseRepo := repo.NewBaseRepo(cfg, lgr)
	if err := baseRepo.Start(ctx); err != nil {
		return fmt.Errorf("cannot start base repository: %w", err)
	}
	defer baseRepo.Stop(ctx)

	db := baseRepo.GetDatabase()
	menuRepo := repo.NewMenuRepo(db)
	orderRepo := repo.NewOrderRepo(db)

	dessert := "ice cream"
	label := "iced"

	menus := []*menu.MenuItem{
		{Name: "Nasi Goreng Spesial", Category: menu.CategoryFood, Quantity: 20, Price: 25000, Dessert: &dessert},
		{Name: "Sate Ayam", Category: menu.CategoryFood, Quantity: 15, Price: 20000},
		{Name: "Es Teh Manis", Category: menu.CategoryDrink, Quantity: 50, Price: 5000, Label: &label},
		{Name: "Kopi Susu", Category: menu.CategoryDrink, Quantity: 30, Price: 12000},
	}

	for _, m := range menus {
		existing, err := menuRepo.FindByName(ctx, m.Name)
		if err != nil {
			return fmt.Errorf("cannot check existing menu: %w", err)
		}
		if existing != nil {
			lgr.Info("menu already seeded", "name", m.Name)
			continue
		}
		m.BeforeCreate()
		if err := menuRepo.Create(ctx, m); err != nil {
			return fmt.Errorf("cannot seed menu %q: %w", m.Name, err)
		}
		lgr.Info("seeded menu", "name", m.Name)
	}

	demoOrder := order.NewOrder(
		order.User{Username: "Demo", Table: "1"},
		[]order.CartItem{
			{Name: "Nasi Goreng Spesial", Category: order.CategoryFood, Quantity: 1, Notes: "extra spicy"},
			{Name: "Es Teh Manis", Category: order.CategoryDrink, Quantity: 2},
		},
	)
	demoOrder.BeforeCreate()

	if err := orderRepo.Create(ctx, demoOrder); err != nil {
		return fmt.Errorf("cannot seed demo order: %w", err)
	}
	lgr.Info("seeded demo order", "order_id", demoOrder.ID.String())

	return nil
}
