package migration

import (
	"fmt"
	"strings"

	"foodgram-backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates or updates every table. Order matters: referenced tables first.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"subscription", &entities.Subscription{}},
		{"tag", &entities.Tag{}},
		{"ingredient", &entities.Ingredient{}},
		{"recipe", &entities.Recipe{}},
		{"amount ingredient", &entities.AmountIngredient{}},
		{"favorite", &entities.Favorite{}},
		{"shopping cart", &entities.ShoppingCart{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	if err := backfillIngredientSearchNames(db); err != nil {
		return fmt.Errorf("error backfilling ingredient search names: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}

// backfillIngredientSearchNames fills search_name for rows written before the column existed.
func backfillIngredientSearchNames(db *gorm.DB) error {
	var batch []entities.Ingredient
	return db.Where("search_name = ?", "").FindInBatches(&batch, 500, func(_ *gorm.DB, _ int) error {
		for _, ingredient := range batch {
			if err := db.Model(&entities.Ingredient{}).
				Where("id = ?", ingredient.ID).
				UpdateColumn("search_name", strings.ToLower(ingredient.Name)).Error; err != nil {
				return err
			}
		}
		return nil
	}).Error
}
