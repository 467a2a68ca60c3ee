package shoppinglist

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/testutil"
	"foodgram-backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, time.March, 8, 9, 5, 0, 0, time.UTC)

func newTestService(t *testing.T, db *gorm.DB, mailer *testutil.FakeMailer) *shoppingListService {
	t.Helper()
	svc := NewShoppingListService(NewShoppingListRepository(db), user.NewUserRepository(db), mailer).(*shoppingListService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func addToCart(t *testing.T, db *gorm.DB, u *entities.User, recipes ...*entities.Recipe) {
	t.Helper()
	cart := entities.ShoppingCart{UserID: u.ID}
	require.NoError(t, db.Where(entities.ShoppingCart{UserID: u.ID}).FirstOrCreate(&cart).Error)
	for _, r := range recipes {
		require.NoError(t, db.Table("shopping_cart_recipes").Create(map[string]any{
			"shopping_cart_id": cart.ID,
			"recipe_id":        r.ID,
		}).Error)
	}
}

func TestBuildShoppingListAggregates(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	chef := testutil.CreateUser(t, db, "Chef")
	buyer := testutil.CreateUser(t, db, "Buyer")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "Flour", "g")
	milk := testutil.CreateIngredient(t, db, "Milk", "ml")
	milkCups := testutil.CreateIngredient(t, db, "Milk", "cup")
	apples := testutil.CreateIngredient(t, db, "Apples", "pcs")

	a := testutil.CreateRecipe(t, db, chef, "Bread", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 200, milk: 100})
	b := testutil.CreateRecipe(t, db, chef, "Pie", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 300, apples: 4, milkCups: 1})
	notInCart := testutil.CreateRecipe(t, db, chef, "Cake", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 1000})
	addToCart(t, db, buyer, a, b)
	addToCart(t, db, chef, notInCart)

	svc := newTestService(t, db, &testutil.FakeMailer{})
	file, err := svc.BuildShoppingList(ctx, buyer.ID)
	require.NoError(t, err)

	assert.Equal(t, "Buyer_shopping_list.txt", file.FileName)
	want := "Shopping list for:\n\n" +
		"Buyer (FirstBuyer LastBuyer)\n\n" +
		"08/03/2024 09:05\n\n" +
		"Apples: 4 pcs\n" +
		"Flour: 500 g\n" +
		"Milk: 1 cup\n" +
		"Milk: 100 ml\n" +
		"\n\nCounted in Foodgram"
	assert.Equal(t, want, string(file.Content))
}

func TestBuildShoppingListEmptyCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "Empty")
	svc := newTestService(t, db, &testutil.FakeMailer{})

	_, err := svc.BuildShoppingList(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	// a cart row with no recipes is still empty
	addToCart(t, db, u)
	_, err = svc.BuildShoppingList(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestRender(t *testing.T) {
	u := &entities.User{Username: "Anna", FirstName: "Anna", LastName: "Ivanova"}
	got := Render(u, nil, fixedNow)
	assert.Equal(t, "Shopping list for:\n\nAnna (Anna Ivanova)\n\n08/03/2024 09:05\n\n\n\nCounted in Foodgram", got)
}

func TestSendShoppingList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "Mailer")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "Flour", "g")
	r := testutil.CreateRecipe(t, db, u, "Bread", []*entities.Tag{lunch}, map[*entities.Ingredient]int{flour: 250})
	addToCart(t, db, u, r)

	mailer := &testutil.FakeMailer{}
	svc := newTestService(t, db, mailer)
	require.NoError(t, svc.SendShoppingList(ctx, u.ID))

	require.Len(t, mailer.Sent, 1)
	sent := mailer.Sent[0]
	assert.Equal(t, "mailer@example.com", sent.To)
	assert.Equal(t, mailSubject, sent.Subject)
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "Mailer_shopping_list.txt", sent.Attachments[0].Name)
	assert.Contains(t, string(sent.Attachments[0].Content), "Flour: 250 g\n")

	t.Run("mailer failure", func(t *testing.T) {
		mailer.Err = errors.New("smtp down")
		err := svc.SendShoppingList(ctx, u.ID)
		assert.ErrorContains(t, err, "smtp down")
	})
}
