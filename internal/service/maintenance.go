package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/pantrypal/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes all user data. It keeps the schema intact so the app can continue running.
// The grocery catalog survives unless includeCatalog is set.
func (s *MaintenanceService) Reset(ctx context.Context, includeCatalog bool) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	tables := []string{
		"recipe_step",
		"recipe_grocery",
		"recipe",
		"shopping_list_grocery",
		"pantry_shelf_grocery",
		"pantry_shelf",
		"users",
	}
	if includeCatalog {
		tables = append(tables, "grocery")
	}
	return database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	})
}
