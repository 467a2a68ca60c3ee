package subscription

import (
	"context"
	"fmt"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/testutil"
	"foodgram-backend/pkg/recipe"
	"foodgram-backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (SubscriptionService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewSubscriptionService(
		NewSubscriptionRepository(db),
		user.NewUserRepository(db),
		recipe.NewRecipeRepository(db),
	), db
}

func TestSubscriptionLifecycle(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	u1 := testutil.CreateUser(t, db, "Follower")
	u2 := testutil.CreateUser(t, db, "Author")

	summary, err := svc.Subscribe(ctx, u1.ID, u2.ID, domain.DefaultRecipesLimit)
	require.NoError(t, err)
	assert.Equal(t, u2.ID, summary.ID)
	assert.True(t, summary.IsSubscribed)
	assert.Empty(t, summary.Recipes)
	assert.Equal(t, int64(0), summary.RecipesCount)

	_, err = svc.Subscribe(ctx, u1.ID, u2.ID, domain.DefaultRecipesLimit)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)

	require.NoError(t, svc.Unsubscribe(ctx, u1.ID, u2.ID))

	err = svc.Unsubscribe(ctx, u1.ID, u2.ID)
	assert.ErrorIs(t, err, domain.ErrNotSubscribed)
}

func TestSelfSubscription(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "Narcissus")
	other := testutil.CreateUser(t, db, "Echo")

	_, err := svc.Subscribe(ctx, u.ID, u.ID, 3)
	assert.ErrorIs(t, err, domain.ErrSelfSubscription)

	_, err = svc.Subscribe(ctx, u.ID, other.ID, 3)
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, u.ID, u.ID, 3)
	assert.ErrorIs(t, err, domain.ErrSelfSubscription)

	err = svc.Unsubscribe(ctx, u.ID, u.ID)
	assert.ErrorIs(t, err, domain.ErrSelfSubscription)

	t.Run("check constraint backs the rule", func(t *testing.T) {
		err := NewSubscriptionRepository(db).CreateSubscription(ctx, &entities.Subscription{UserID: u.ID, AuthorID: u.ID})
		assert.Error(t, err)
	})
}

func TestSubscribeMissingAuthor(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "Lonely")

	_, err := svc.Subscribe(ctx, u.ID, 404, 3)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = svc.Unsubscribe(ctx, u.ID, 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetSubscriptions(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	follower := testutil.CreateUser(t, db, "Follower")
	busy := testutil.CreateUser(t, db, "Busy")
	quiet := testutil.CreateUser(t, db, "Quiet")
	testutil.CreateUser(t, db, "Ignored")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "flour", "g")

	var busyRecipes []*entities.Recipe
	for i := 1; i <= 5; i++ {
		busyRecipes = append(busyRecipes, testutil.CreateRecipe(t, db, busy, fmt.Sprintf("Dish %d", i),
			[]*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 10 * i}))
	}

	_, err := svc.Subscribe(ctx, follower.ID, busy.ID, 3)
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, follower.ID, quiet.ID, 3)
	require.NoError(t, err)

	page, err := svc.GetSubscriptions(ctx, follower.ID, domain.PaginationRequest{Page: 1, Limit: 6}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Pagination.Total)
	require.Len(t, page.Results, 2)

	// newest subscription first
	assert.Equal(t, quiet.ID, page.Results[0].ID)
	assert.Equal(t, int64(0), page.Results[0].RecipesCount)
	assert.NotNil(t, page.Results[0].Recipes)

	busySummary := page.Results[1]
	assert.Equal(t, busy.ID, busySummary.ID)
	assert.True(t, busySummary.IsSubscribed)
	assert.Equal(t, int64(5), busySummary.RecipesCount)
	require.Len(t, busySummary.Recipes, 2)
	assert.Equal(t, busyRecipes[4].ID, busySummary.Recipes[0].ID)
	assert.Equal(t, busyRecipes[3].ID, busySummary.Recipes[1].ID)

	t.Run("non positive limit falls back to default", func(t *testing.T) {
		page, err := svc.GetSubscriptions(ctx, follower.ID, domain.PaginationRequest{Page: 1, Limit: 6}, 0)
		require.NoError(t, err)
		assert.Len(t, page.Results[1].Recipes, domain.DefaultRecipesLimit)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.GetSubscriptions(ctx, follower.ID, domain.PaginationRequest{Page: 2, Limit: 1}, 3)
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, busy.ID, page.Results[0].ID)
	})
}
