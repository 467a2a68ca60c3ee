package shoppinglist

import (
	"context"

	"foodgram-backend/domain"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		CountCartRecipes(ctx context.Context, userID uint) (int64, error)
		// GetCartItems sums ingredient amounts over every recipe in the user's cart,
		// grouped by (name, unit) and ordered by name.
		GetCartItems(ctx context.Context, userID uint) ([]domain.ShoppingListItem, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) CountCartRecipes(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shopping_cart_recipes").
		Joins("JOIN shopping_carts ON shopping_carts.id = shopping_cart_recipes.shopping_cart_id").
		Where("shopping_carts.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *shoppingListRepository) GetCartItems(ctx context.Context, userID uint) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Table("amount_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(amount_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = amount_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_recipes ON shopping_cart_recipes.recipe_id = amount_ingredients.recipe_id").
		Joins("JOIN shopping_carts ON shopping_carts.id = shopping_cart_recipes.shopping_cart_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.measurement_unit ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
