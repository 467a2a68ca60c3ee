package recipe

import (
	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/pkg/tag"
	"foodgram-backend/pkg/user"
)

// ViewerFlags are the per-viewer booleans of the recipe read model.
type ViewerFlags struct {
	IsFavorited      bool
	IsInShoppingCart bool
	IsSubscribed     bool
}

func ToRecipeResponse(r *entities.Recipe, flags ViewerFlags) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(r.AmountIngredients))
	for _, a := range r.AmountIngredients {
		item := domain.RecipeIngredientResponse{ID: a.IngredientID, Amount: a.Amount}
		if a.Ingredient != nil {
			item.Name = a.Ingredient.Name
			item.MeasurementUnit = a.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, item)
	}

	return domain.RecipeResponse{
		ID:               r.ID,
		Tags:             tag.ToTagResponses(r.Tags),
		Author:           user.ToUserResponse(r.Author, flags.IsSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      flags.IsFavorited,
		IsInShoppingCart: flags.IsInShoppingCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		PubDate:          r.PubDate,
	}
}

func ToShortRecipeResponse(r *entities.Recipe) domain.ShortRecipeResponse {
	return domain.ShortRecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

func ToShortRecipeResponses(recipes []*entities.Recipe) []domain.ShortRecipeResponse {
	res := make([]domain.ShortRecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, ToShortRecipeResponse(r))
	}
	return res
}
