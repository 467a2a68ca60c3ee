// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"strings"
	"testing"

	migration "foodgram-backend/cmd/database/migrate"
	"foodgram-backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory SQLite database. A single connection keeps
// every query on the same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{
		Email:     strings.ToLower(username) + "@example.com",
		Username:  username,
		FirstName: "First" + username,
		LastName:  "Last" + username,
		Password:  string(hash),
		Role:      "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateTag(t *testing.T, db *gorm.DB, name, slug string) *entities.Tag {
	t.Helper()

	tag := &entities.Tag{Name: name, Color: "#E26C2D", Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *entities.Ingredient {
	t.Helper()

	ingredient := &entities.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// CreateRecipe inserts a recipe with its links directly, bypassing the composition service.
func CreateRecipe(t *testing.T, db *gorm.DB, author *entities.User, name string, tags []*entities.Tag, amounts map[*entities.Ingredient]int) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{
		Name:        name,
		AuthorID:    author.ID,
		Image:       "https://cdn.example.com/recipe_images/" + name + ".png",
		Text:        "Cook " + name,
		CookingTime: 30,
		Tags:        tags,
	}
	require.NoError(t, db.Omit("Tags.*").Create(recipe).Error)

	for ingredient, amount := range amounts {
		require.NoError(t, db.Create(&entities.AmountIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       amount,
		}).Error)
	}
	return recipe
}
