package recipe

import (
	"slices"

	"foodgram-backend/domain"
	"foodgram-backend/internal/utils"
)

func ingredientID(item domain.IngredientAmountRequest) uint {
	return item.ID
}

// ValidateRecipeRequest runs the composite checks in a fixed order; the first failing rule wins.
// Name and text limits are enforced by the request struct tags.
func ValidateRecipeRequest(req domain.RecipeRequest) error {
	if req.CookingTime < domain.MinCookingTime || req.CookingTime > domain.MaxCookingTime {
		return domain.ErrInvalidCookingTime
	}
	if len(req.Tags) == 0 {
		return domain.ErrMissingTags
	}
	if len(req.Ingredients) == 0 {
		return domain.ErrMissingIngredients
	}
	for _, item := range req.Ingredients {
		if item.Amount < domain.MinIngredientAmount || item.Amount > domain.MaxIngredientAmount {
			return domain.ErrInvalidAmount
		}
	}
	for i, item := range req.Ingredients {
		if utils.FindDuplicateByKey(req.Ingredients[:i], ingredientID, item.ID) {
			return domain.ErrDuplicateIngredient
		}
	}
	for i, id := range req.Tags {
		if slices.Contains(req.Tags[:i], id) {
			return domain.ErrDuplicateTag
		}
	}
	return nil
}
