//go:build integration

package shoppinglist

import (
	"context"
	"testing"
	"time"

	migration "foodgram-backend/cmd/database/migrate"
	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres starts a PostgreSQL container and returns a migrated gorm handle.
func setupPostgres(t *testing.T) *gorm.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("foodgram"),
		postgres.WithUsername("foodgram"),
		postgres.WithPassword("foodgram"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func TestShoppingListOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	chef := testutil.CreateUser(t, db, "Chef")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "Flour", "g")
	salt := testutil.CreateIngredient(t, db, "Salt", "pinch")

	a := testutil.CreateRecipe(t, db, chef, "Bread", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 200, salt: 1})
	b := testutil.CreateRecipe(t, db, chef, "Pizza", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 300, salt: 2})

	svc := newTestService(t, db, &testutil.FakeMailer{})
	_, err := svc.BuildShoppingList(ctx, chef.ID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	addToCart(t, db, chef, a, b)
	file, err := svc.BuildShoppingList(ctx, chef.ID)
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "Flour: 500 g\nSalt: 3 pinch\n")

	t.Run("duplicate cart row is a conflict", func(t *testing.T) {
		var cart entities.ShoppingCart
		require.NoError(t, db.Where("user_id = ?", chef.ID).First(&cart).Error)
		err := db.Table("shopping_cart_recipes").Create(map[string]any{
			"shopping_cart_id": cart.ID,
			"recipe_id":        a.ID,
		}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}
