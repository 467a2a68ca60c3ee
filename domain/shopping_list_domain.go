package domain

var (
	MessageSuccessSendShoppingList = "shopping list sent"

	ShoppingListDateFormat = "02/01/2006 15:04"

	MessageFailedDownloadShoppingList = "failed to download shopping list"
	MessageFailedSendShoppingList     = "failed to send shopping list"

	ErrEmptyCart = newError(KindEmptyCollection, "shopping_cart", "shopping cart is empty")
)

type (
	// ShoppingListItem is one aggregated (ingredient name, unit) group.
	ShoppingListItem struct {
		Name            string
		MeasurementUnit string
		Amount          int64
	}

	ShoppingListFile struct {
		FileName string
		Content  []byte
	}
)
