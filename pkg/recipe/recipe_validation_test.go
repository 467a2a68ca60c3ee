package recipe

import (
	"testing"

	"foodgram-backend/domain"

	"github.com/stretchr/testify/assert"
)

func validRequest() domain.RecipeRequest {
	return domain.RecipeRequest{
		Name:        "Borscht",
		Text:        "Boil everything.",
		CookingTime: 90,
		Tags:        []uint{1, 2},
		Ingredients: []domain.IngredientAmountRequest{{ID: 1, Amount: 300}, {ID: 2, Amount: 2}},
	}
}

func TestValidateRecipeRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.RecipeRequest)
		want   error
	}{
		{"valid", func(r *domain.RecipeRequest) {}, nil},
		{"cooking time zero", func(r *domain.RecipeRequest) { r.CookingTime = 0 }, domain.ErrInvalidCookingTime},
		{"cooking time above max", func(r *domain.RecipeRequest) { r.CookingTime = 601 }, domain.ErrInvalidCookingTime},
		{"cooking time lower bound", func(r *domain.RecipeRequest) { r.CookingTime = 1 }, nil},
		{"cooking time upper bound", func(r *domain.RecipeRequest) { r.CookingTime = 600 }, nil},
		{"no tags", func(r *domain.RecipeRequest) { r.Tags = nil }, domain.ErrMissingTags},
		{"no ingredients", func(r *domain.RecipeRequest) { r.Ingredients = nil }, domain.ErrMissingIngredients},
		{"zero amount", func(r *domain.RecipeRequest) { r.Ingredients[1].Amount = 0 }, domain.ErrInvalidAmount},
		{"amount above max", func(r *domain.RecipeRequest) { r.Ingredients[0].Amount = 10001 }, domain.ErrInvalidAmount},
		{"amount bounds", func(r *domain.RecipeRequest) { r.Ingredients[0].Amount = 1; r.Ingredients[1].Amount = 10000 }, nil},
		{"duplicate ingredient", func(r *domain.RecipeRequest) { r.Ingredients[1].ID = 1 }, domain.ErrDuplicateIngredient},
		{"duplicate tag", func(r *domain.RecipeRequest) { r.Tags = []uint{2, 2} }, domain.ErrDuplicateTag},
		// the first failing rule decides the error
		{"cooking time before tags", func(r *domain.RecipeRequest) { r.CookingTime = 0; r.Tags = nil }, domain.ErrInvalidCookingTime},
		{"tags before ingredients", func(r *domain.RecipeRequest) { r.Tags = nil; r.Ingredients = nil }, domain.ErrMissingTags},
		{"amount before duplicates", func(r *domain.RecipeRequest) {
			r.Ingredients = []domain.IngredientAmountRequest{{ID: 1, Amount: 5}, {ID: 1, Amount: 0}}
		}, domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := ValidateRecipeRequest(req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
