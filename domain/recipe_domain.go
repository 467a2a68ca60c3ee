package domain

import (
	"time"
)

const (
	MaxRecipeNameLength = 200
	MaxRecipeTextLength = 5000
	MinCookingTime      = 1
	MaxCookingTime      = 600
	MinIngredientAmount = 1
	MaxIngredientAmount = 10000
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = NewNotFoundError("recipe not found")
	ErrUnauthorizedRecipeAccess = newError(KindForbidden, "", "only the author or staff can change this recipe")
	ErrInvalidCookingTime       = NewValidationError("cooking_time", "cooking time must be between 1 and 600 minutes")
	ErrMissingTags              = NewValidationError("tags", "at least one tag is required")
	ErrDuplicateTag             = NewValidationError("tags", "tags must not repeat")
	ErrMissingIngredients       = NewValidationError("ingredients", "at least one ingredient is required")
	ErrInvalidAmount            = NewValidationError("amount", "amount must be between 1 and 10000")
	ErrDuplicateIngredient      = NewValidationError("ingredients", "ingredients must not repeat")
	ErrMissingImage             = NewValidationError("image", "image is required")
	ErrInvalidImage             = NewValidationError("image", "image must be a base64 encoded jpeg, png, gif or webp")
	ErrDuplicateRecipeName      = NewConflictError("name", "you already have a recipe with this name")
)

type (
	IngredientAmountRequest struct {
		ID     uint `json:"id"`
		Amount int  `json:"amount"`
	}

	// RecipeRequest is the body of both create and update calls.
	// Tags, ingredients and cooking time are checked by the composition service in a fixed order.
	RecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required,max=5000"`
		Image       string                    `json:"image"`
		CookingTime int                       `json:"cooking_time"`
		Tags        []uint                    `json:"tags"`
		Ingredients []IngredientAmountRequest `json:"ingredients"`
	}

	RecipeFilter struct {
		Tags             []string
		AuthorID         uint
		IsFavorited      bool
		IsInShoppingCart bool
		// ViewerID is zero for anonymous requests; the favorite/cart flags are ignored then.
		ViewerID uint
	}

	RecipeIngredientResponse struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               uint                       `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		PubDate          time.Time                  `json:"pub_date"`
	}

	ShortRecipeResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}
)
