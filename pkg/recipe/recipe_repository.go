package recipe

import (
	"context"
	"errors"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, pagination domain.PaginationRequest) ([]*entities.Recipe, int64, error)
		GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]*entities.Recipe, int64, error)
		CheckNameExists(ctx context.Context, authorID uint, name string, excludeID uint) (bool, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, amounts []*entities.AmountIngredient) error
		DeleteRecipe(ctx context.Context, id uint) error
		GetViewerFlags(ctx context.Context, userID uint, recipeIDs []uint) (favorited map[uint]bool, inCart map[uint]bool, err error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

const (
	favoritedSubquery = `recipes.id IN (SELECT favorite_recipes.recipe_id FROM favorite_recipes
		JOIN favorites ON favorites.id = favorite_recipes.favorite_id WHERE favorites.user_id = ?)`
	inCartSubquery = `recipes.id IN (SELECT shopping_cart_recipes.recipe_id FROM shopping_cart_recipes
		JOIN shopping_carts ON shopping_carts.id = shopping_cart_recipes.shopping_cart_id WHERE shopping_carts.user_id = ?)`
	tagSlugSubquery = `recipes.id IN (SELECT recipe_tags.recipe_id FROM recipe_tags
		JOIN tags ON tags.id = recipe_tags.tag_id WHERE tags.slug IN ?)`
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Preload("AmountIngredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("amount_ingredients.id ASC")
		}).
		Preload("AmountIngredients.Ingredient")
}

// applyFilter narrows the recipe query. Tag slugs are OR-ed; the favorite and cart
// flags only apply to an authenticated viewer.
func applyFilter(query *gorm.DB, filter domain.RecipeFilter) *gorm.DB {
	if len(filter.Tags) > 0 {
		query = query.Where(tagSlugSubquery, filter.Tags)
	}
	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.ViewerID != 0 && filter.IsFavorited {
		query = query.Where(favoritedSubquery, filter.ViewerID)
	}
	if filter.ViewerID != 0 && filter.IsInShoppingCart {
		query = query.Where(inCartSubquery, filter.ViewerID)
	}
	return query
}

func translateRecipeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateRecipeName
	}
	return err
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withRelations(r.db.WithContext(ctx)).Where("recipes.id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, pagination domain.PaginationRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := applyFilter(r.db.WithContext(ctx).Model(&entities.Recipe{}), filter).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := withRelations(applyFilter(r.db.WithContext(ctx), filter)).
		Order("recipes.pub_date DESC").
		Order("recipes.id DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id DESC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) CheckNameExists(ctx context.Context, authorID uint, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("author_id = ? AND name = ?", authorID, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateRecipe inserts the recipe together with its tag links and ingredient amounts.
// Tags must already exist; only the join rows are written.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags.*", "Author").Create(recipe).Error; err != nil {
			return translateRecipeError(err)
		}
		return nil
	})
}

// UpdateRecipe rewrites the scalar fields and replaces the tag set and ingredient amounts
// in one transaction: existing links are cleared, then the new ones are inserted.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, amounts []*entities.AmountIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{ID: recipe.ID}).Updates(map[string]any{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"image":        recipe.Image,
			"cooking_time": recipe.CookingTime,
		}).Error; err != nil {
			return translateRecipeError(err)
		}

		if err := tx.Model(&entities.Recipe{ID: recipe.ID}).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.AmountIngredient{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Recipe{ID: recipe.ID}).Omit("Tags.*").Association("Tags").Append(tags); err != nil {
			return err
		}
		for _, a := range amounts {
			a.ID = 0
			a.RecipeID = recipe.ID
		}
		if err := tx.Omit("Ingredient").Create(&amounts).Error; err != nil {
			return err
		}

		recipe.Tags = tags
		recipe.AmountIngredients = amounts
		return nil
	})
}

// DeleteRecipe removes the recipe and every row that references it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM favorite_recipes WHERE recipe_id = ?",
			"DELETE FROM shopping_cart_recipes WHERE recipe_id = ?",
			"DELETE FROM recipe_tags WHERE recipe_id = ?",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.AmountIngredient{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&entities.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetViewerFlags(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, map[uint]bool, error) {
	favorited := make(map[uint]bool, len(recipeIDs))
	inCart := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return favorited, inCart, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Table("favorite_recipes").
		Joins("JOIN favorites ON favorites.id = favorite_recipes.favorite_id").
		Where("favorites.user_id = ? AND favorite_recipes.recipe_id IN ?", userID, recipeIDs).
		Pluck("favorite_recipes.recipe_id", &ids).Error; err != nil {
		return nil, nil, err
	}
	for _, id := range ids {
		favorited[id] = true
	}

	ids = nil
	if err := r.db.WithContext(ctx).
		Table("shopping_cart_recipes").
		Joins("JOIN shopping_carts ON shopping_carts.id = shopping_cart_recipes.shopping_cart_id").
		Where("shopping_carts.user_id = ? AND shopping_cart_recipes.recipe_id IN ?", userID, recipeIDs).
		Pluck("shopping_cart_recipes.recipe_id", &ids).Error; err != nil {
		return nil, nil, err
	}
	for _, id := range ids {
		inCart[id] = true
	}
	return favorited, inCart, nil
}
