package cmd

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"campus/internal/adapters/out/postgres/menurepo"
	"campus/internal/adapters/out/postgres/userrepo"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/core/domain/model/menu"
	"campus/internal/core/domain/model/user"
	"campus/internal/pkg/errs"
)

// seedAccount is one demo account created on first boot.
type seedAccount struct {
	username string
	fullName string
	role     user.Role
	scope    user.VendorScope
}

// SeedDemoData creates the demo accounts and the canteen menu on an empty
// database. Re-running against a seeded database is a no-op; accounts are
// matched by username.
func SeedDemoData(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	users := userrepo.NewGormUserRepository(db)

	accounts := []seedAccount{
		{username: "admin", fullName: "Administrator", role: user.RoleAdmin, scope: user.ScopeUnknown},
		{username: "sec1", fullName: "Demo Student", role: user.RoleStudent, scope: user.ScopeUnknown},
		{username: "canteen1", fullName: "Main Canteen", role: user.RoleVendor, scope: user.ScopeCanteen},
		{username: "print1", fullName: "Print Shop", role: user.RoleVendor, scope: user.ScopePrint},
	}

	created := false
	for _, account := range accounts {
		_, err := users.GetByUsername(ctx, account.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		u, err := user.NewUser(kernel.NewUUID(), account.username, account.fullName, account.role, account.scope)
		if err != nil {
			return err
		}
		if err = users.Add(ctx, u); err != nil {
			return err
		}

		created = true
		logger.Info("seeded account", "username", account.username, "role", account.role.String())
	}

	// The menu is seeded only alongside the accounts so that a wiped menu on
	// a live deployment is not silently recreated.
	if !created {
		return nil
	}

	return seedMenu(ctx, db, logger)
}

func seedMenu(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	items := menurepo.NewGormMenuItemRepository(db)

	menuEntries := []struct {
		name   string
		rupees int64
	}{
		{name: "Idli", rupees: 10},
		{name: "Vada", rupees: 12},
		{name: "Tea", rupees: 8},
	}

	for _, entry := range menuEntries {
		price, err := kernel.NewMoneyFromRupees(entry.rupees)
		if err != nil {
			return err
		}

		item, err := menu.NewMenuItem(kernel.NewUUID(), entry.name, price)
		if err != nil {
			return err
		}
		if err = items.Add(ctx, item); err != nil {
			return err
		}

		logger.Info("seeded menu item", "name", entry.name, "price", price.String())
	}

	return nil
}
