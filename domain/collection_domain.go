package domain

import "fmt"

// CollectionKind selects which per-user recipe collection an operation targets.
type CollectionKind int

const (
	CollectionFavorite CollectionKind = iota + 1
	CollectionShoppingCart
)

func (k CollectionKind) String() string {
	switch k {
	case CollectionFavorite:
		return "favorite"
	case CollectionShoppingCart:
		return "shopping_cart"
	default:
		return fmt.Sprintf("CollectionKind(%d)", int(k))
	}
}

// CollectionAction is the toggle direction.
type CollectionAction int

const (
	ActionAdd CollectionAction = iota + 1
	ActionRemove
)

var (
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"
	MessageSuccessAddCart        = "recipe added to shopping cart"
	MessageSuccessRemoveCart     = "recipe removed from shopping cart"

	MessageFailedAddFavorite    = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite = "failed to remove recipe from favorites"
	MessageFailedAddCart        = "failed to add recipe to shopping cart"
	MessageFailedRemoveCart     = "failed to remove recipe from shopping cart"

	ErrAlreadyInCollection   = NewConflictError("recipe", "recipe is already in the collection")
	ErrNotInCollection       = NewValidationError("recipe", "recipe is not in the collection")
	ErrUnknownCollectionKind = NewValidationError("kind", "unknown collection kind")
	ErrUnknownAction         = NewValidationError("action", "unknown collection action")
)
