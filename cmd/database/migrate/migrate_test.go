package migration

import (
	"testing"

	"foodgram-backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestBackfillIngredientSearchNames(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.Ingredient{}))
	require.NoError(t, db.Exec(
		"INSERT INTO ingredients (name, measurement_unit, search_name) VALUES (?, ?, ''), (?, ?, '')",
		"Мука", "g", "Flour", "g",
	).Error)

	require.NoError(t, backfillIngredientSearchNames(db))

	var got []entities.Ingredient
	require.NoError(t, db.Order("id").Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, "мука", got[0].SearchName)
	assert.Equal(t, "flour", got[1].SearchName)
}
