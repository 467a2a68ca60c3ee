package collection

import (
	"context"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/testutil"
	"foodgram-backend/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "Author")
	reader := testutil.CreateUser(t, db, "Reader")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	bread := testutil.CreateRecipe(t, db, author, "Bread", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 500})

	svc := NewCollectionService(NewCollectionRepository(db), recipe.NewRecipeRepository(db))

	for _, kind := range []domain.CollectionKind{domain.CollectionFavorite, domain.CollectionShoppingCart} {
		t.Run(kind.String(), func(t *testing.T) {
			short, err := svc.Toggle(ctx, kind, reader.ID, bread.ID, domain.ActionAdd)
			require.NoError(t, err)
			require.NotNil(t, short)
			assert.Equal(t, domain.ShortRecipeResponse{
				ID:          bread.ID,
				Name:        "Bread",
				Image:       bread.Image,
				CookingTime: bread.CookingTime,
			}, *short)

			_, err = svc.Toggle(ctx, kind, reader.ID, bread.ID, domain.ActionAdd)
			assert.ErrorIs(t, err, domain.ErrAlreadyInCollection)

			short, err = svc.Toggle(ctx, kind, reader.ID, bread.ID, domain.ActionRemove)
			require.NoError(t, err)
			assert.Nil(t, short)

			_, err = svc.Toggle(ctx, kind, reader.ID, bread.ID, domain.ActionRemove)
			assert.ErrorIs(t, err, domain.ErrNotInCollection)
		})
	}

	t.Run("remove from a never used collection", func(t *testing.T) {
		_, err := svc.Toggle(ctx, domain.CollectionFavorite, author.ID, bread.ID, domain.ActionRemove)
		assert.ErrorIs(t, err, domain.ErrNotInCollection)
	})

	t.Run("missing recipe", func(t *testing.T) {
		_, err := svc.Toggle(ctx, domain.CollectionFavorite, reader.ID, 9999, domain.ActionAdd)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.Toggle(ctx, domain.CollectionKind(42), reader.ID, bread.ID, domain.ActionAdd)
		assert.ErrorIs(t, err, domain.ErrUnknownCollectionKind)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := svc.Toggle(ctx, domain.CollectionFavorite, reader.ID, bread.ID, domain.CollectionAction(0))
		assert.ErrorIs(t, err, domain.ErrUnknownAction)
	})
}

func TestGetOrCreateCollectionIsSingleton(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "Owner")
	repo := NewCollectionRepository(db)

	first, err := repo.GetOrCreateCollection(ctx, domain.CollectionShoppingCart, user.ID)
	require.NoError(t, err)
	second, err := repo.GetOrCreateCollection(ctx, domain.CollectionShoppingCart, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&entities.ShoppingCart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	favorite, err := repo.GetOrCreateCollection(ctx, domain.CollectionFavorite, user.ID)
	require.NoError(t, err)
	assert.NotZero(t, favorite)
}

func TestAddRecipeDuplicateRowMapsToConflict(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, db, "Author")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	bread := testutil.CreateRecipe(t, db, author, "Bread", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 500})

	repo := NewCollectionRepository(db)
	id, err := repo.GetOrCreateCollection(ctx, domain.CollectionFavorite, author.ID)
	require.NoError(t, err)

	require.NoError(t, repo.AddRecipe(ctx, domain.CollectionFavorite, id, bread.ID))
	// skips the pre-check, as a concurrent request would
	err = repo.AddRecipe(ctx, domain.CollectionFavorite, id, bread.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyInCollection)
}
