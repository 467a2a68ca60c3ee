package collection

import (
	"context"
	"errors"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		// GetOrCreateCollection returns the id of the user's singleton collection row, creating it on first use.
		GetOrCreateCollection(ctx context.Context, kind domain.CollectionKind, userID uint) (uint, error)
		HasRecipe(ctx context.Context, kind domain.CollectionKind, collectionID, recipeID uint) (bool, error)
		AddRecipe(ctx context.Context, kind domain.CollectionKind, collectionID, recipeID uint) error
		RemoveRecipe(ctx context.Context, kind domain.CollectionKind, collectionID, recipeID uint) error
	}

	collectionRepository struct {
		db *gorm.DB
	}

	// table names the join table holding one collection kind's memberships.
	table struct {
		joinTable string
		ownerKey  string
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func tableFor(kind domain.CollectionKind) (table, error) {
	switch kind {
	case domain.CollectionFavorite:
		return table{joinTable: "favorite_recipes", ownerKey: "favorite_id"}, nil
	case domain.CollectionShoppingCart:
		return table{joinTable: "shopping_cart_recipes", ownerKey: "shopping_cart_id"}, nil
	default:
		return table{}, domain.ErrUnknownCollectionKind
	}
}

func (r *collectionRepository) GetOrCreateCollection(ctx context.Context, kind domain.CollectionKind, userID uint) (uint, error) {
	switch kind {
	case domain.CollectionFavorite:
		row := entities.Favorite{UserID: userID}
		if err := r.firstOrCreate(ctx, &row, entities.Favorite{UserID: userID}); err != nil {
			return 0, err
		}
		return row.ID, nil
	case domain.CollectionShoppingCart:
		row := entities.ShoppingCart{UserID: userID}
		if err := r.firstOrCreate(ctx, &row, entities.ShoppingCart{UserID: userID}); err != nil {
			return 0, err
		}
		return row.ID, nil
	default:
		return 0, domain.ErrUnknownCollectionKind
	}
}

// firstOrCreate tolerates a concurrent create for the same user: the unique index on user_id
// makes the loser re-read the winner's row.
func (r *collectionRepository) firstOrCreate(ctx context.Context, dest any, where any) error {
	err := r.db.WithContext(ctx).Where(where).FirstOrCreate(dest).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.WithContext(ctx).Where(where).First(dest).Error
	}
	return err
}

func (r *collectionRepository) HasRecipe(ctx context.Context, kind domain.CollectionKind, collectionID, recipeID uint) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Table(t.joinTable).
		Where(t.ownerKey+" = ? AND recipe_id = ?", collectionID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) AddRecipe(ctx context.Context, kind domain.CollectionKind, collectionID, recipeID uint) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Table(t.joinTable).
		Create(map[string]any{t.ownerKey: collectionID, "recipe_id": recipeID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyInCollection
	}
	return err
}

func (r *collectionRepository) RemoveRecipe(ctx context.Context, kind domain.CollectionKind, collectionID, recipeID uint) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Exec("DELETE FROM "+t.joinTable+" WHERE "+t.ownerKey+" = ? AND recipe_id = ?", collectionID, recipeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotInCollection
	}
	return nil
}
